package lib

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	TRANSLATIONS_SHEET = "translations"
	REJECTIONS_SHEET   = "rejections"
)

/*
	writeSheet saves rows to a new workbook holding a single sheet
*/
func writeSheet(dst, sheet string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(dst); err != nil {
		return fmt.Errorf("failed to save %s: %w", dst, err)
	}

	return nil
}

/*
	ExportTranslations writes translations as source/english rows
*/
func ExportTranslations(dst string, translations []Translation) error {
	rows := [][]interface{}{{"Source", "English"}}
	for _, translation := range translations {
		rows = append(rows, []interface{}{translation.Source, translation.English})
	}

	return writeSheet(dst, TRANSLATIONS_SHEET, rows)
}

/*
	ImportTranslations reads a sheet written by ExportTranslations. Rows
	with an empty English column are ignored.
*/
func ImportTranslations(src string) ([]Translation, error) {
	f, err := excelize.OpenFile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	if f.GetSheetName(0) != TRANSLATIONS_SHEET {
		return nil, fmt.Errorf("%s sheet must be present", TRANSLATIONS_SHEET)
	}

	rows, err := f.Rows(TRANSLATIONS_SHEET)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	translations := []Translation{}
	for n := 1; rows.Next(); n++ {
		row, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		if n == 1 || len(row) < 2 {
			continue
		}

		source, english := strings.TrimSpace(row[0]), strings.TrimSpace(row[1])
		if source == "" || english == "" {
			continue
		}
		translations = append(translations, Translation{Source: source, English: english})
	}

	return translations, nil
}

/*
	WriteRejectionReport lists every row error and rejected component of a
	run, one per row
*/
func WriteRejectionReport(dst string, runID string, rowErrors []*RowError, rejections []*Rejection) error {
	rows := [][]interface{}{{"Run", "Row", "LCSC Part", "Group", "Reason", "Detail"}}
	for _, e := range rowErrors {
		rows = append(rows, []interface{}{runID, e.Row, e.LCSC, "", "ROW_ERROR", e.Error()})
	}
	for _, r := range rejections {
		component := r.Candidate.Component
		rows = append(rows, []interface{}{
			runID, "", component.LCSCPart, component.GroupName(), string(r.Reason), r.Message,
		})
	}

	return writeSheet(dst, REJECTIONS_SHEET, rows)
}
