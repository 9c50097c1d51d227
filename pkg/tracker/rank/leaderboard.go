// Package rank derives leaderboard views from member and attendance
// tables. The view is computed on demand and never persisted.
package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/models"
	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/records"
)

// Compute builds the ranked leaderboard for members, optionally joining
// attendance counts per normalized id. Neither input table is modified.
//
// Ordering is points descending with name ascending as the tie-break,
// and ranks are dense 1-based positions in that order: equal points
// still get distinct consecutive ranks. Rows with duplicate ids are
// both included and ranked independently. An empty members table, or
// one without a points column, yields an empty leaderboard.
func Compute(members, attendance *models.Table) []models.LeaderboardEntry {
	if members == nil || len(members.Rows) == 0 {
		return nil
	}
	pointsCol, ok := members.ColumnKey(models.ColPoints)
	if !ok {
		return nil
	}
	idCol, _ := members.ColumnKey(models.ColID)
	nameCol, _ := members.ColumnKey(models.ColName)

	raw := make([]any, len(members.Rows))
	for i, row := range members.Rows {
		raw[i] = row[pointsCol]
	}
	points := records.ClampPoints(raw)

	counts := attendanceCounts(attendance)

	entries := make([]models.LeaderboardEntry, len(members.Rows))
	for i, row := range members.Rows {
		id := records.NormalizeID(row[idCol])
		entries[i] = models.LeaderboardEntry{
			ID:             id,
			Name:           asText(row[nameCol]),
			Points:         points[i],
			EventsAttended: counts[id],
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points == entries[j].Points {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Points > entries[j].Points
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func attendanceCounts(attendance *models.Table) map[string]int {
	if attendance == nil {
		return nil
	}
	idCol, ok := attendance.ColumnKey(models.ColID)
	if !ok {
		return nil
	}
	counts := make(map[string]int, len(attendance.Rows))
	for _, row := range attendance.Rows {
		if id := records.NormalizeID(row[idCol]); id != "" {
			counts[id]++
		}
	}
	return counts
}

func asText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
