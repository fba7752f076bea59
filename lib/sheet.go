package lib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

/*
	Sheet is the parsed catalog
*/
type Sheet struct {
	Components []*Component
	RowErrors  []*RowError
	Rows       int
}

/*
	ReadSheet parses every worksheet of a catalog spreadsheet. Row 1 of each
	worksheet names the columns. Rows without an LCSC part number are skipped.
	Rows that cannot be parsed are collected in RowErrors, unless strict is
	set, in which case the first one aborts the read.
*/
func ReadSheet(src string, strict bool) (*Sheet, error) {
	f, err := excelize.OpenFile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheet := &Sheet{}
	for _, name := range f.GetSheetList() {
		if err := sheet.readWorksheet(f, name, strict); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	return sheet, nil
}

func (s *Sheet) readWorksheet(f *excelize.File, name string, strict bool) error {
	rows, err := f.Rows(name)
	if err != nil {
		return err
	}
	defer rows.Close()

	columns := []string{}
	for n := 1; rows.Next(); n++ {
		cells, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("row %d: %w", n, err)
		}

		if n == 1 {
			columns = cells
			if err := checkColumns(columns); err != nil {
				return err
			}
			continue
		}

		row := make(Row, len(columns))
		for i, column := range columns {
			if i < len(cells) {
				row[strings.TrimSpace(column)] = cells[i]
			}
		}

		if strings.TrimSpace(row[ColumnLCSCPart]) == "" {
			continue
		}
		s.Rows++

		component, err := NewComponent(n, row)
		if err != nil {
			var rerr *RowError
			if strict || !errors.As(err, &rerr) {
				return err
			}
			s.RowErrors = append(s.RowErrors, rerr)
			continue
		}

		s.Components = append(s.Components, component)
	}

	return nil
}

func checkColumns(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, column := range columns {
		present[strings.TrimSpace(column)] = true
	}

	missing := []string{}
	for _, column := range RequiredColumns {
		if !present[column] {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	return nil
}
