package roster

import (
	"fmt"

	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/models"
	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/records"
)

// MaxReasonableDelta bounds a single point adjustment before CheckDelta
// starts warning the caller.
const MaxReasonableDelta = 1000

// ApplyPointsDelta adds delta to every member row whose id normalizes
// equal to id. Delta may be negative. When no row matches, the original
// table is returned unchanged with applied=false. When several rows
// share the id, all of them are updated; uniqueness is not enforced at
// the storage level, so which row the caller meant is unknowable here.
func ApplyPointsDelta(members *models.Table, id string, delta int) (*models.Table, bool) {
	idCol, ok := members.ColumnKey(models.ColID)
	if !ok {
		return members, false
	}
	pointsCol, ok := members.ColumnKey(models.ColPoints)
	if !ok {
		return members, false
	}

	want := records.NormalizeID(id)
	if want == "" {
		// A blank id would match rows whose id cell is missing.
		return members, false
	}
	var matches []int
	for i, row := range members.Rows {
		if records.NormalizeID(row[idCol]) == want {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return members, false
	}

	out := members.Clone()
	for _, i := range matches {
		row := out.Rows[i]
		row[pointsCol] = int64(records.Numeric(row[pointsCol]) + delta)
	}
	return out, true
}

// CheckDelta flags point adjustments outside the typical range. The
// result is advisory: callers may warn and proceed rather than block.
func CheckDelta(delta int) error {
	if delta > MaxReasonableDelta || delta < -MaxReasonableDelta {
		return fmt.Errorf("%w: point delta %d exceeds the typical range of ±%d", ErrValidation, delta, MaxReasonableDelta)
	}
	return nil
}
