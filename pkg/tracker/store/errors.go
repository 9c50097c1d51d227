package store

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the workbook file, or the directory a save
// targets, does not exist.
var ErrNotFound = errors.New("workbook not found")

// ErrCorrupt indicates the workbook file is not a valid xlsx format.
var ErrCorrupt = errors.New("invalid workbook format")

// ErrLocked indicates the workbook is held by another process, such as
// a spreadsheet application with the file open.
var ErrLocked = errors.New("workbook locked by another process")

// StoreError wraps a load or save failure with the path and operation,
// so callers can tell a lock from a missing file when reporting it.
type StoreError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
