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

	"github.com/spf13/cobra"
	"github.com/xoviat/jlcparty/lib"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <library.lbr>",
	Short: "List the symbols and packages of a library.",
	Long: `List the symbols and packages of an Eagle library with their pin and pad
counts. A component can only use a symbol and package whose counts equal its
solder joint count.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		elibrary, err := lib.OpenEagleLibrary(args[0])
		if err != nil {
			fail("failed to open library: %s", err)
		}

		if err := lib.CheckTemplateVersion(elibrary.Version, lib.MinTemplateVersion); err != nil {
			fmt.Printf("warning: %s\n", err)
		}

		for _, symbol := range elibrary.Symbols {
			fmt.Printf("symbol: %s (%d pins)\n", symbol.Name, symbol.PinCount())
		}

		for _, pkg := range elibrary.Packages {
			fmt.Printf("package: %s (%d pads)\n", pkg.Name, pkg.PadCount())
		}

		fmt.Printf("%d symbols, %d packages, %d device-sets\n",
			len(elibrary.Symbols), len(elibrary.Packages), len(elibrary.DeviceSets))
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
