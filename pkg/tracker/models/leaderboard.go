package models

// LeaderboardEntry is one derived leaderboard row. Entries are computed
// on demand from the members and attendance tables and never written
// back to the workbook.
type LeaderboardEntry struct {
	// Rank is the 1-based position under (points desc, name asc).
	Rank int `json:"rank"`
	// ID is the normalized member identifier.
	ID string `json:"id"`
	// Name is the member display name.
	Name string `json:"name"`
	// Points is the clamped, display-ready point total.
	Points int `json:"points"`
	// EventsAttended counts attendance rows joined on the normalized id.
	EventsAttended int `json:"events_attended"`
}
