// Package chart renders leaderboard views as PNG images.
package chart

import (
	"bytes"
	"errors"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/models"
)

// DefaultTopN is the number of members drawn when the caller does not
// pick one.
const DefaultTopN = 10

// ErrNoData indicates there are no leaderboard entries to draw.
var ErrNoData = errors.New("no leaderboard data to chart")

// TopMembers renders a bar chart of the highest-ranked members by
// points. Entries are assumed already ranked; at most topN bars are
// drawn. Returns the encoded PNG bytes.
func TopMembers(entries []models.LeaderboardEntry, topN int) ([]byte, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(entries) > topN {
		entries = entries[:topN]
	}
	if len(entries) == 0 {
		return nil, ErrNoData
	}

	maxPoints := 1
	bars := make([]chart.Value, len(entries))
	for i, e := range entries {
		label := e.Name
		if label == "" {
			label = e.ID
		}
		bars[i] = chart.Value{Label: label, Value: float64(e.Points)}
		if e.Points > maxPoints {
			maxPoints = e.Points
		}
	}

	graph := chart.BarChart{
		Title:    "Top Members by Points",
		Width:    800,
		Height:   400,
		BarWidth: 40,
		Bars:     bars,
		YAxis: chart.YAxis{
			// A fixed range keeps the render valid when points tie at 0.
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxPoints)},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
