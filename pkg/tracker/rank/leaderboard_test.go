package rank

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/models"
)

func membersTable(rows ...models.Row) *models.Table {
	return &models.Table{Columns: []string{"id", "name", "points"}, Rows: rows}
}

func attendanceTable(rows ...models.Row) *models.Table {
	return &models.Table{Columns: []string{"event", "id"}, Rows: rows}
}

func TestComputeOrderingAndRanks(t *testing.T) {
	members := membersTable(
		models.Row{"id": int64(1), "name": "Ada", "points": int64(10)},
		models.Row{"id": int64(2), "name": "Grace", "points": int64(25)},
		models.Row{"id": int64(3), "name": "Linus", "points": int64(10)},
		models.Row{"id": int64(4), "name": "Betty", "points": "garbage"},
	)

	got := Compute(members, nil)
	require.Len(t, got, 4)

	// Dense 1-based ranks, no gaps even on tied points.
	for i, e := range got {
		require.Equal(t, i+1, e.Rank)
	}

	require.Equal(t, "Grace", got[0].Name)
	require.Equal(t, 25, got[0].Points)
	// Ada and Linus tie on 10 points; name ascending breaks the tie.
	require.Equal(t, "Ada", got[1].Name)
	require.Equal(t, "Linus", got[2].Name)
	// Malformed points clamp to 0 rather than dropping the row.
	require.Equal(t, "Betty", got[3].Name)
	require.Equal(t, 0, got[3].Points)
}

func TestComputeAttendanceCounts(t *testing.T) {
	members := membersTable(
		models.Row{"id": int64(1), "name": "Ada", "points": int64(5)},
		models.Row{"id": "2", "name": "Grace", "points": int64(3)},
	)
	// Numeric and string id forms join through normalization, and
	// duplicate pairs each count.
	attendance := attendanceTable(
		models.Row{"event": "Field Trip", "id": "1"},
		models.Row{"event": "Field Trip", "id": int64(1)},
		models.Row{"event": "Workshop", "id": 2.0},
		models.Row{"event": "Workshop", "id": "999"},
	)

	got := Compute(members, attendance)
	require.Len(t, got, 2)
	require.Equal(t, "1", got[0].ID)
	require.Equal(t, 2, got[0].EventsAttended)
	require.Equal(t, "2", got[1].ID)
	require.Equal(t, 1, got[1].EventsAttended)
}

func TestComputeMissingAttendanceDefaultsToZero(t *testing.T) {
	members := membersTable(models.Row{"id": int64(1), "name": "Ada", "points": int64(5)})

	got := Compute(members, attendanceTable())
	require.Len(t, got, 1)
	require.Zero(t, got[0].EventsAttended)
}

func TestComputeEmptyOrUnusableMembers(t *testing.T) {
	require.Nil(t, Compute(nil, nil))
	require.Nil(t, Compute(membersTable(), nil))

	noPoints := &models.Table{
		Columns: []string{"id", "name"},
		Rows:    []models.Row{{"id": int64(1), "name": "Ada"}},
	}
	require.Nil(t, Compute(noPoints, nil))
}

func TestComputeDuplicateIDsRankedIndependently(t *testing.T) {
	members := membersTable(
		models.Row{"id": int64(5), "name": "Ada", "points": int64(10)},
		models.Row{"id": int64(5), "name": "Ada Clone", "points": int64(4)},
	)
	attendance := attendanceTable(models.Row{"event": "Workshop", "id": "5"})

	got := Compute(members, attendance)
	require.Len(t, got, 2)
	require.Equal(t, []int{1, 2}, []int{got[0].Rank, got[1].Rank})
	// Both duplicate rows join the same attendance count.
	require.Equal(t, 1, got[0].EventsAttended)
	require.Equal(t, 1, got[1].EventsAttended)
}

func TestComputeDoesNotMutateInputs(t *testing.T) {
	members := membersTable(models.Row{"id": int64(1), "name": "Ada", "points": "-3"})
	attendance := attendanceTable(models.Row{"event": "Workshop", "id": "1"})

	Compute(members, attendance)

	require.Equal(t, "-3", members.Rows[0]["points"])
	require.Len(t, attendance.Rows, 1)
}

func TestComputeCaseInsensitiveHeaders(t *testing.T) {
	members := &models.Table{
		Columns: []string{"ID", "Name", "Points"},
		Rows: []models.Row{
			{"ID": "7", "Name": "Ada", "Points": int64(3)},
		},
	}

	got := Compute(members, nil)
	require.Len(t, got, 1)
	require.Equal(t, "7", got[0].ID)
	require.Equal(t, 3, got[0].Points)
}
