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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xoviat/jlcparty/lib"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jlcparty",
	Short: "Generate Eagle libraries from the JLCPCB parts catalog.",
	Long: `jlcparty turns the JLCPCB SMT parts spreadsheet into Eagle libraries,
one per category and stock tier, using the symbols and packages of a
reference library.

	Example:
		- jlcparty build                 : fetch the catalog if stale and build all libraries
		- jlcparty inspect assets/empty.lbr : list template symbols and packages
		- jlcparty search 10k 0402       : search the generated libraries
		- jlcparty export libraries.zip  : bundle the generated libraries
	`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := lib.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./jlcparty.yaml)")
	flags.String("template", defaults.Template, "reference library with the known symbols and packages")
	flags.String("output", defaults.OutputDir, "directory for the generated libraries")
	flags.String("cache", defaults.CacheDir, "directory for the downloaded catalog and caches")
	flags.String("log", defaults.LogFile, "diagnostic log file")

	viper.BindPFlag("template", flags.Lookup("template"))
	viper.BindPFlag("output_dir", flags.Lookup("output"))
	viper.BindPFlag("cache_dir", flags.Lookup("cache"))
	viper.BindPFlag("log_file", flags.Lookup("log"))

	viper.SetDefault("sheet_url", defaults.SheetURL)
	viper.SetDefault("sheet_file", defaults.SheetFile)
	viper.SetDefault("max_age", defaults.MaxAge)
	viper.SetDefault("offline", defaults.Offline)
	viper.SetDefault("min_template_version", defaults.MinTemplateVersion)
	viper.SetDefault("report_file", defaults.ReportFile)
	viper.SetDefault("strict", defaults.Strict)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("jlcparty")
		viper.AddConfigPath(".")
		viper.AddConfigPath(lib.DataDir())
	}

	viper.SetEnvPrefix("JLCPARTY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Printf("failed to read config: %s\n", err)
			os.Exit(1)
		}
	}
}

// loadConfig returns the merged configuration of defaults, config file, environment and flags.
// index_dir and translations_db follow cache_dir unless set.
func loadConfig() (*lib.Config, error) {
	cfg := &lib.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.ApplyCacheDefaults(viper.IsSet)

	return cfg, nil
}

// fail prints a failure and exits with a non-zero status.
func fail(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	os.Exit(1)
}
