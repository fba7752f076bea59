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

	"github.com/spf13/cobra"
	"github.com/xoviat/jlcparty/lib"
)

var (
	ifile string
	efile string
)

// translationsCmd represents the translations command
var translationsCmd = &cobra.Command{
	Use:   "translations",
	Short: "Import or export translations of Chinese part names.",
	Long: `Manufacturer part names containing Chinese text are named with the
English translations in the translation cache; text without a translation
becomes CN.

	Example:
		- jlcparty translations --export <file.xlsx> : export translations and untranslated text
		- jlcparty translations --import <file.xlsx> : import translations
	`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if (ifile == "") == (efile == "") {
			fail("exactly one of --import or --export is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			fail("failed to load config: %s", err)
		}
		if cfg.TranslationsDB == "" {
			fail("translations_db is not configured")
		}

		cache, err := lib.OpenTranslationCache(cfg.TranslationsDB)
		if err != nil {
			fail("failed to open translation cache: %s", err)
		}
		defer cache.Close()

		if efile != "" {
			translations, err := cache.Export()
			if err != nil {
				fail("failed to read translations: %s", err)
			}
			if err := lib.ExportTranslations(efile, translations); err != nil {
				fail("failed to export translations: %s", err)
			}
			fmt.Printf("exported %d translations to %s\n", len(translations), efile)
			return
		}

		if !strings.HasSuffix(strings.ToLower(ifile), ".xls") &&
			!strings.HasSuffix(strings.ToLower(ifile), ".xlsx") {
			fail("translation file must be an excel spreadsheet")
		}

		translations, err := lib.ImportTranslations(ifile)
		if err != nil {
			fail("failed to import translations: %s", err)
		}
		if err := cache.Put(translations...); err != nil {
			fail("failed to store translations: %s", err)
		}
		fmt.Printf("imported %d translations from %s\n", len(translations), ifile)
	},
}

func init() {
	rootCmd.AddCommand(translationsCmd)

	translationsCmd.Flags().StringVarP(&ifile, "import", "i", "", "file to import")
	translationsCmd.Flags().StringVarP(&efile, "export", "e", "", "file to export")
}
