package models

// Workbook is the full named collection of tables loaded from one file.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Order lists sheet names as they appear in the file. Saves replay
	// this order so untouched sheets round-trip in place.
	Order []string `json:"order"`
	// Sheets maps sheet name to its table.
	Sheets map[string]*Table `json:"sheets"`
}

// Table returns the named table, or nil if the sheet is absent.
func (w *Workbook) Table(name string) *Table {
	if w == nil {
		return nil
	}
	return w.Sheets[name]
}
