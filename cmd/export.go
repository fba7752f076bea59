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

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <dst.zip>",
	Short: "Bundle the generated libraries.",
	Long:  `Bundle the generated libraries, the diagnostic log and the rejection report into a zip file.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fail("failed to load config: %s", err)
		}

		n, err := lib.Bundle(args[0], cfg.OutputDir, cfg.LogFile, cfg.ReportFile)
		if err != nil {
			fail("failed to export libraries: %s", err)
		}

		fmt.Printf("exported %d libraries to %s\n", n, args[0])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
