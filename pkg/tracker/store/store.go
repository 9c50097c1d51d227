// Package store persists workbooks to and from xlsx files. A load
// produces one in-memory snapshot of every sheet; a save rewrites the
// whole file through an atomic temp-file replace so it is observed
// either in its prior state or its new state, never partial.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/models"
)

// Load reads every sheet from the file at path into one workbook
// snapshot. Each sheet's first row is its column header; remaining rows
// become value maps keyed by column name.
func Load(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &StoreError{Op: "load", Path: path, Err: ErrNotFound}
		}
		return nil, &StoreError{Op: "load", Path: path, Err: fmt.Errorf("%w: %v", ErrCorrupt, err)}
	}
	defer f.Close()

	wb := &models.Workbook{
		BookName: filepath.Base(path),
		Sheets:   make(map[string]*models.Table),
	}
	for _, name := range f.GetSheetList() {
		table, err := readTable(f, name)
		if err != nil {
			return nil, &StoreError{Op: "load", Path: path, Err: fmt.Errorf("%w: sheet %q: %v", ErrCorrupt, name, err)}
		}
		wb.Order = append(wb.Order, name)
		wb.Sheets[name] = table
	}
	return wb, nil
}

// Save persists table under name together with every other sheet in
// preserve, replacing the file at path. The resulting file holds the
// union {name: table} plus (preserve minus name); a save of one logical
// table never discards the others. The new content is written to a temp
// file in the destination directory and renamed over the destination,
// so a failed save leaves the prior file intact.
func Save(path, name string, table *models.Table, preserve *models.Workbook) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &StoreError{Op: "save", Path: path, Err: fmt.Errorf("%w: directory %q", ErrNotFound, dir)}
		}
		return &StoreError{Op: "save", Path: path, Err: err}
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheetOrder(name, preserve) {
		if i == 0 {
			// Rename the default sheet rather than leaving an empty Sheet1.
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return &StoreError{Op: "save", Path: path, Err: err}
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return &StoreError{Op: "save", Path: path, Err: err}
		}

		t := preserve.Table(sheet)
		if sheet == name {
			t = table
		}
		if err := writeTable(f, sheet, t); err != nil {
			return &StoreError{Op: "save", Path: path, Err: err}
		}
	}

	tmp, err := os.CreateTemp(dir, ".workbook-*.xlsx")
	if err != nil {
		return &StoreError{Op: "save", Path: path, Err: classify(err)}
	}
	tmpName := tmp.Name()
	tmp.Close()

	if err := f.SaveAs(tmpName); err != nil {
		os.Remove(tmpName)
		return &StoreError{Op: "save", Path: path, Err: classify(err)}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &StoreError{Op: "save", Path: path, Err: classify(err)}
	}
	return nil
}

// sheetOrder replays preserve's sheet order, with name appended when it
// is a new sheet, so untouched sheets keep their position in the file.
func sheetOrder(name string, preserve *models.Workbook) []string {
	var order []string
	seen := false
	if preserve != nil {
		for _, sheet := range preserve.Order {
			if sheet == name {
				seen = true
			} else if preserve.Table(sheet) == nil {
				continue
			}
			order = append(order, sheet)
		}
	}
	if !seen {
		order = append(order, name)
	}
	return order
}

// classify maps permission failures to ErrLocked: on every target
// platform a destination held open exclusively by another application
// surfaces as a permission error on the temp write or the rename.
func classify(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %v", ErrLocked, err)
	}
	return err
}

func readTable(f *excelize.File, sheet string) (*models.Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	t := &models.Table{}
	if len(rows) == 0 {
		return t, nil
	}
	t.Columns = append(t.Columns, rows[0]...)
	for _, raw := range rows[1:] {
		row := make(models.Row, len(t.Columns))
		for i, col := range t.Columns {
			if i >= len(raw) || raw[i] == "" {
				continue
			}
			row[col] = parseValue(raw[i])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func writeTable(f *excelize.File, sheet string, t *models.Table) error {
	if t == nil || len(t.Columns) == 0 {
		return nil
	}
	header := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		cells := make([]any, len(t.Columns))
		for j, col := range t.Columns {
			cells[j] = row[col]
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &cells); err != nil {
			return err
		}
	}
	return nil
}

// parseValue attempts to parse a cell's string form as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
