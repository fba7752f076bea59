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
	"github.com/spf13/viper"
	"github.com/xoviat/jlcparty/lib"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build Eagle libraries from the parts catalog.",
	Long: `Build one Eagle library per catalog category and stock tier.

	The catalog is downloaded first when the local copy is missing or older
	than max_age. Every component is checked against the reference library:
	its symbol pin count and package pad count must match the catalog's
	solder joint count. Rejected components are logged and listed in the
	rejection report.
	`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fail("failed to load config: %s", err)
		}

		l, err := lib.NewLog(os.Stdout, cfg.LogFile)
		if err != nil {
			fail("failed to open log: %s", err)
		}
		defer l.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		summary, err := lib.Build(ctx, cfg, l)
		if err != nil {
			l.Close()
			fail("failed to build libraries: %s", err)
		}

		fmt.Printf("Generated %d parts in %d libraries.\n\n", summary.Accepted, summary.Groups)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().Bool("offline", false, "use the local catalog even if it is stale")
	buildCmd.Flags().Bool("strict", false, "abort on the first malformed row")
	buildCmd.Flags().String("report", lib.DefaultConfig().ReportFile, "rejection report spreadsheet")

	viper.BindPFlag("offline", buildCmd.Flags().Lookup("offline"))
	viper.BindPFlag("strict", buildCmd.Flags().Lookup("strict"))
	viper.BindPFlag("report_file", buildCmd.Flags().Lookup("report"))
}
