package lib

import (
	"errors"
	"path/filepath"
	"time"
)

const (
	IndexDirName       = "index.bleve"
	TranslationsDBName = "translations.db"
)

/*
	Config holds the settings of a build
*/
type Config struct {
	// SheetURL is where the catalog spreadsheet is downloaded from.
	SheetURL string `mapstructure:"sheet_url"`

	// CacheDir holds the downloaded spreadsheet, the translation cache and
	// the search index.
	CacheDir string `mapstructure:"cache_dir"`

	// SheetFile is the spreadsheet name inside CacheDir. An absolute path is
	// used as is.
	SheetFile string `mapstructure:"sheet_file"`

	// MaxAge is how old the local spreadsheet may get before it is fetched
	// again. Zero never refetches an existing copy.
	MaxAge time.Duration `mapstructure:"max_age"`

	// Offline skips fetching even when the spreadsheet is stale.
	Offline bool `mapstructure:"offline"`

	// Template is the reference .lbr holding the known symbols and packages.
	Template string `mapstructure:"template"`

	// MinTemplateVersion is the oldest accepted Eagle version of Template.
	MinTemplateVersion string `mapstructure:"min_template_version"`

	// OutputDir receives one .lbr per category and tier.
	OutputDir string `mapstructure:"output_dir"`

	// LogFile is the append-only diagnostic log. Empty disables it.
	LogFile string `mapstructure:"log_file"`

	// ReportFile is the rejection spreadsheet. Empty disables it.
	ReportFile string `mapstructure:"report_file"`

	// IndexDir is the component search index. Empty disables indexing.
	// Unset, it is IndexDirName inside CacheDir.
	IndexDir string `mapstructure:"index_dir"`

	// TranslationsDB is the translation cache. Empty disables translations.
	// Unset, it is TranslationsDBName inside CacheDir.
	TranslationsDB string `mapstructure:"translations_db"`

	// Strict aborts the build on the first malformed row instead of
	// reporting it and continuing.
	Strict bool `mapstructure:"strict"`
}

/*
	DataDir is the per-user directory for downloaded and cached data
*/
func DataDir() string {
	dir, err := localAppData()
	if err != nil || dir == "" {
		return ".jlcparty"
	}

	return filepath.Join(dir, "jlcparty")
}

func DefaultConfig() *Config {
	data := DataDir()

	return &Config{
		SheetURL:           DefaultSheetURL,
		CacheDir:           data,
		SheetFile:          DefaultSheetFile,
		MaxAge:             24 * time.Hour,
		Template:           filepath.Join("assets", "empty.lbr"),
		MinTemplateVersion: MinTemplateVersion,
		OutputDir:          "lbr",
		LogFile:            "validation.log",
		ReportFile:         "rejections.xlsx",
		IndexDir:           filepath.Join(data, IndexDirName),
		TranslationsDB:     filepath.Join(data, TranslationsDBName),
	}
}

/*
	ApplyCacheDefaults places the index and the translation cache inside
	CacheDir unless isSet reports that the key was configured explicitly
*/
func (c *Config) ApplyCacheDefaults(isSet func(key string) bool) {
	if !isSet("index_dir") {
		c.IndexDir = filepath.Join(c.CacheDir, IndexDirName)
	}
	if !isSet("translations_db") {
		c.TranslationsDB = filepath.Join(c.CacheDir, TranslationsDBName)
	}
}

func (c *Config) SheetPath() string {
	if filepath.IsAbs(c.SheetFile) {
		return c.SheetFile
	}

	return filepath.Join(c.CacheDir, c.SheetFile)
}

/*
	Validate checks the settings a build cannot run without
*/
func (c *Config) Validate() error {
	if c.Template == "" {
		return errors.New("template is required")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}
	if c.SheetFile == "" {
		return errors.New("sheet_file is required")
	}
	if !c.Offline && c.SheetURL == "" {
		return errors.New("sheet_url is required unless offline")
	}

	return nil
}
