// Package roster holds the pure mutation operations over the member
// and attendance tables. Operations validate their inputs, never touch
// the filesystem, and return new tables; callers persist the result
// through the store afterward.
package roster

import (
	"errors"

	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/models"
)

// ErrDuplicateID indicates a member insertion collides with an
// existing normalized id.
var ErrDuplicateID = errors.New("duplicate member id")

// ErrNoAttendees indicates an attendance insertion resolved to no ids.
var ErrNoAttendees = errors.New("no attendees to record")

// ErrValidation indicates a blank or out-of-policy input value.
var ErrValidation = errors.New("validation failed")

// ensureColumn resolves name against the table's headers, appending the
// canonical name when the column does not exist yet.
func ensureColumn(t *models.Table, name string) string {
	if col, ok := t.ColumnKey(name); ok {
		return col
	}
	t.Columns = append(t.Columns, name)
	return name
}
