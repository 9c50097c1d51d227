package roster

import (
	"fmt"
	"strings"

	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/models"
)

// InsertAttendance appends one (event, id) row per given id. Resolving
// display names to ids happens before this call; blank ids are dropped,
// and an empty remainder fails with ErrNoAttendees. Duplicate pairs are
// permitted: recording the same member twice simply counts twice. A nil
// attendance table starts a fresh one.
func InsertAttendance(attendance *models.Table, event string, ids []string) (*models.Table, error) {
	event = strings.TrimSpace(event)
	if event == "" {
		return nil, fmt.Errorf("%w: event name is required", ErrValidation)
	}

	var resolved []string
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			resolved = append(resolved, id)
		}
	}
	if len(resolved) == 0 {
		return nil, fmt.Errorf("%w: event %q", ErrNoAttendees, event)
	}

	out := attendance.Clone()
	if out == nil {
		out = &models.Table{Columns: []string{models.ColEvent, models.ColID}}
	}
	eventCol := ensureColumn(out, models.ColEvent)
	idCol := ensureColumn(out, models.ColID)

	for _, id := range resolved {
		out.Rows = append(out.Rows, models.Row{eventCol: event, idCol: id})
	}
	return out, nil
}
