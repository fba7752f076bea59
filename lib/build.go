package lib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

/*
	Summary reports the outcome of a build
*/
type Summary struct {
	RunID     string
	Rows      int
	RowErrors int
	Accepted  int
	Rejected  int
	Groups    int
	Libraries []string
}

/*
	Build runs one batch: refresh the spreadsheet if needed, parse it, assemble
	one library per category and tier, then write the libraries, the index and
	the rejection report.
*/
func Build(ctx context.Context, cfg *Config, l *Log) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	summary := &Summary{RunID: l.RunID}
	l.Infof("Building EAGLE libraries ...")

	if !cfg.Offline {
		fetcher := NewFetcher(cfg.SheetURL, cfg.SheetPath(), cfg.MaxAge)
		fetched, err := fetcher.FetchIfStale(ctx)
		if err != nil {
			return nil, err
		}
		if fetched {
			l.Infof("Fetched %s", cfg.SheetPath())
		}
	}

	template, err := LoadTemplate(cfg.Template, cfg.MinTemplateVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	l.Infof("Loading in components from %s ... ", cfg.SheetPath())
	sheet, err := ReadSheet(cfg.SheetPath(), cfg.Strict)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	for _, e := range sheet.RowErrors {
		l.RowError(e)
	}
	summary.Rows = sheet.Rows
	summary.RowErrors = len(sheet.RowErrors)
	l.Infof("%d components found.", len(sheet.Components))

	normalizer := NewNormalizer(nil)
	var translations *TranslationCache
	if cfg.TranslationsDB != "" {
		translations, err = OpenTranslationCache(cfg.TranslationsDB)
		if err != nil {
			return nil, err
		}
		defer translations.Close()
		normalizer.Translations = translations
	}

	var index *ComponentIndex
	if cfg.IndexDir != "" {
		index, err = CreateComponentIndex(cfg.IndexDir)
		if err != nil {
			return nil, err
		}
		defer index.Close()
	}

	if err := clearOutputs(cfg); err != nil {
		return nil, err
	}

	assembler := &Assembler{Template: template, Normalizer: normalizer, Log: l}
	rejections := []*Rejection{}
	for _, group := range GroupComponents(sheet.Components) {
		assembly := assembler.Assemble(group.Name, group.Components)
		summary.Accepted += assembly.Accepted
		summary.Rejected += len(assembly.Rejections)
		rejections = append(rejections, assembly.Rejections...)

		dst, written, err := assembly.Write(cfg.OutputDir, l)
		if err != nil {
			return nil, err
		}
		if !written {
			continue
		}
		summary.Groups++
		summary.Libraries = append(summary.Libraries, dst)

		if index != nil {
			if err := index.Add(assembly); err != nil {
				return nil, fmt.Errorf("failed to index %s: %w", group.Name, err)
			}
		}
	}

	if translations != nil {
		if err := translations.MarkUntranslated(normalizer.Untranslated()); err != nil {
			return nil, err
		}
	}

	if cfg.ReportFile != "" && (len(rejections) > 0 || len(sheet.RowErrors) > 0) {
		if err := WriteRejectionReport(cfg.ReportFile, l.RunID, sheet.RowErrors, rejections); err != nil {
			return nil, err
		}
		l.Infof("Wrote %d rejections to %s", len(rejections)+len(sheet.RowErrors), cfg.ReportFile)
	}

	l.Infof("Read %d rows, accepted %d, rejected %d, %d malformed, wrote %d libraries.",
		summary.Rows, summary.Accepted, summary.Rejected, summary.RowErrors, summary.Groups)

	return summary, nil
}

/*
	clearOutputs removes the libraries and the report of a previous run, so
	that groups without accepted components leave no file behind
*/
func clearOutputs(cfg *Config) error {
	libraries, err := filepath.Glob(filepath.Join(cfg.OutputDir, "*.lbr"))
	if err != nil {
		return err
	}

	stale := libraries
	if cfg.ReportFile != "" {
		stale = append(stale, cfg.ReportFile)
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return nil
}
