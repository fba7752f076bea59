/*
Copyright © 2020 Mars Galactic <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
	"github.com/xoviat/jlcparty/lib"
)

var (
	limit int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search the generated libraries.",
	Long: `Search the components of the last build by part number, name, value,
package or manufacturer. Without text, search interactively.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fail("failed to load config: %s", err)
		}

		index, err := lib.OpenComponentIndex(cfg.IndexDir)
		if err != nil {
			fail("failed to open index: %s", err)
		}
		defer index.Close()

		if len(args) > 0 {
			printResults(index, strings.Join(args, " "))
			return
		}

		fmt.Println("Enter a search, or an empty line to quit")
		for {
			text := prompt.Input("> ", func(d prompt.Document) []prompt.Suggest {
				text := strings.TrimSpace(d.TextBeforeCursor())
				if text == "" {
					return []prompt.Suggest{}
				}

				components, err := index.Find(text, 10)
				if err != nil {
					return []prompt.Suggest{}
				}

				suggestions := []prompt.Suggest{}
				for _, component := range components {
					suggestions = append(suggestions, prompt.Suggest{
						Text:        component.LCSCPart,
						Description: component.DeviceName + " " + component.Package,
					})
				}

				return suggestions
			})

			text = strings.TrimSpace(text)
			if text == "" {
				return
			}
			printResults(index, text)
		}
	},
}

func printResults(index *lib.ComponentIndex, text string) {
	components, err := index.Find(text, limit)
	if err != nil {
		fmt.Printf("failed to search: %s\n", err)
		return
	}

	if len(components) == 0 {
		fmt.Printf("no components match %q\n", text)
		return
	}

	for _, component := range components {
		tier := "expanded"
		if component.Basic {
			tier = "basic"
		}

		fmt.Printf("%-10s %-30s %-24s %-10s %s (%s)\n",
			component.LCSCPart, component.DeviceName, component.Package,
			component.Value, component.Manufacturer, tier)
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&limit, "limit", "n", 25, "maximum number of results")
}
