package roster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/models"
	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/records"
)

// InsertMember appends one member row. A blank id is auto-generated:
// one past the highest existing integer id, or the row count when no id
// parses as an integer. Insertion is the single place uniqueness is
// checked; an id that normalizes equal to an existing row's id fails
// with ErrDuplicateID. basePoints is clamped to a non-negative integer.
// Returns the updated table and the (possibly generated) id.
func InsertMember(members *models.Table, id, name string, basePoints any) (*models.Table, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", fmt.Errorf("%w: member name is required", ErrValidation)
	}
	if strings.ContainsAny(name, "\r\n") {
		return nil, "", fmt.Errorf("%w: member name must be a single line", ErrValidation)
	}

	out := members.Clone()
	if out == nil {
		out = &models.Table{Columns: []string{models.ColID, models.ColName, models.ColPoints}}
	}
	idCol := ensureColumn(out, models.ColID)
	nameCol := ensureColumn(out, models.ColName)
	pointsCol := ensureColumn(out, models.ColPoints)

	id = strings.TrimSpace(id)
	if id == "" {
		id = nextID(out, idCol)
	}
	norm := records.NormalizeID(id)
	for _, row := range out.Rows {
		if records.NormalizeID(row[idCol]) == norm {
			return nil, "", fmt.Errorf("%w: %s", ErrDuplicateID, norm)
		}
	}

	out.Rows = append(out.Rows, models.Row{
		idCol:     norm,
		nameCol:   name,
		pointsCol: int64(records.ClampValue(basePoints)),
	})
	return out, norm, nil
}

func nextID(t *models.Table, idCol string) string {
	highest := int64(-1)
	found := false
	for _, row := range t.Rows {
		n, err := strconv.ParseInt(records.NormalizeID(row[idCol]), 10, 64)
		if err != nil {
			continue
		}
		found = true
		if n > highest {
			highest = n
		}
	}
	if !found {
		return strconv.Itoa(len(t.Rows))
	}
	return strconv.FormatInt(highest+1, 10)
}
