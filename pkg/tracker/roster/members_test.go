package roster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/models"
)

func TestInsertMemberGeneratedID(t *testing.T) {
	members := membersTable(
		models.Row{"id": "1", "name": "Ada", "points": int64(1)},
		models.Row{"id": "2", "name": "Grace", "points": int64(2)},
		models.Row{"id": "7", "name": "Linus", "points": int64(3)},
	)

	got, id, err := InsertMember(members, "", "Betty", 5)
	require.NoError(t, err)
	require.Equal(t, "8", id)
	require.Len(t, got.Rows, 4)
	require.Equal(t, models.Row{"id": "8", "name": "Betty", "points": int64(5)}, got.Rows[3])
	// The input table keeps its prior state.
	require.Len(t, members.Rows, 3)

	// Repeating with a blank id does not collide with the fresh row.
	got, id, err = InsertMember(got, "", "Margaret", 0)
	require.NoError(t, err)
	require.Equal(t, "9", id)
	require.Len(t, got.Rows, 5)
}

func TestInsertMemberRowCountFallback(t *testing.T) {
	members := membersTable(
		models.Row{"id": "alpha", "name": "Ada", "points": int64(1)},
		models.Row{"id": "beta", "name": "Grace", "points": int64(2)},
	)

	_, id, err := InsertMember(members, "", "Betty", 0)
	require.NoError(t, err)
	require.Equal(t, "2", id)
}

func TestInsertMemberDuplicateID(t *testing.T) {
	members := membersTable(models.Row{"id": int64(5), "name": "Ada", "points": int64(1)})

	// Normalized forms collide even when the representations differ.
	_, _, err := InsertMember(members, " 5 ", "Grace", 0)
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestInsertMemberValidation(t *testing.T) {
	members := membersTable()

	_, _, err := InsertMember(members, "", "   ", 0)
	require.ErrorIs(t, err, ErrValidation)

	_, _, err = InsertMember(members, "", "Ada\nLovelace", 0)
	require.ErrorIs(t, err, ErrValidation)
}

func TestInsertMemberClampsBasePoints(t *testing.T) {
	got, _, err := InsertMember(membersTable(), "x1", "Ada", -10)
	require.NoError(t, err)
	require.Equal(t, int64(0), got.Rows[0]["points"])

	got, _, err = InsertMember(membersTable(), "x2", "Grace", "7.9")
	require.NoError(t, err)
	require.Equal(t, int64(7), got.Rows[0]["points"])
}

func TestInsertMemberIntoNilTable(t *testing.T) {
	got, id, err := InsertMember(nil, "", "Ada", 3)
	require.NoError(t, err)
	require.Equal(t, "0", id)
	require.Equal(t, []string{"id", "name", "points"}, got.Columns)
	require.Len(t, got.Rows, 1)
}
