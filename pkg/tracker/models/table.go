// Package models defines the data structures shared by the tracker packages.
package models

import "strings"

// Sheet and column names used by the tracker workbook layout.
const (
	SheetMembers    = "members"
	SheetAttendance = "event_attendance"

	ColID     = "id"
	ColName   = "name"
	ColPoints = "points"
	ColEvent  = "event"
)

// Row is a single table row keyed by column name. Values carry the
// typing assigned at load time: int64 for integers, float64 for
// decimals, string for everything else.
type Row map[string]any

// Table is an ordered sequence of rows sharing a column schema.
type Table struct {
	// Columns is the header order as it appears in the sheet.
	Columns []string `json:"columns"`
	// Rows holds the data rows in sheet order.
	Rows []Row `json:"rows"`
}

// ColumnKey returns the stored header matching name case-insensitively,
// so workbooks using "Points" or "ID" headers still resolve.
func (t *Table) ColumnKey(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, c := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(c), name) {
			return c, true
		}
	}
	return "", false
}

// Clone returns a deep copy of the table. Mutation operations work on
// clones so callers keep an unchanged snapshot to preserve on save.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	if t.Rows != nil {
		out.Rows = make([]Row, len(t.Rows))
		for i, r := range t.Rows {
			nr := make(Row, len(r))
			for k, v := range r {
				nr[k] = v
			}
			out.Rows[i] = nr
		}
	}
	return out
}
