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
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/xoviat/jlcparty/lib"
)

var (
	ifStale bool
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the parts catalog",
	Long:  `Download the parts catalog spreadsheet from the JLCPCB website.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fail("failed to load config: %s", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fetcher := lib.NewFetcher(cfg.SheetURL, cfg.SheetPath(), cfg.MaxAge)
		if ifStale && !fetcher.Stale() {
			fmt.Printf("%s is up to date\n", cfg.SheetPath())
			return
		}

		fmt.Printf("fetching parts catalog from %s\n", cfg.SheetURL)
		if err := fetcher.Fetch(ctx); err != nil {
			fail("failed to fetch parts catalog: %s", err)
		}
		fmt.Printf("saved %s\n", cfg.SheetPath())
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().BoolVar(&ifStale, "if-stale", false, "only fetch when the local copy is missing or older than max_age")
}
