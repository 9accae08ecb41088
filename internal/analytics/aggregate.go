// Package analytics reduces raw mood observations into dashboard data.
// Every builder is a pure function over an already-fetched window and is
// recomputed in full after each mutation, never patched incrementally.
package analytics

import (
	"time"

	"github.com/mindhaven/mindhaven/internal/classifier"
	"github.com/mindhaven/mindhaven/internal/types"
)

const dayLayout = "2006-01-02"

// DayKey formats a timestamp as its local calendar day. All builders share
// this key so an observation lands on the same day everywhere.
func DayKey(t time.Time) string {
	return t.Local().Format(dayLayout)
}

// Aggregate counts observations per sentiment category. Labels outside the
// closed set are excluded from both the category counts and the total.
func Aggregate(observations []types.MoodObservation) types.AggregateStats {
	var stats types.AggregateStats
	for _, obs := range observations {
		switch obs.Label {
		case classifier.LabelPositive:
			stats.Positive++
		case classifier.LabelNegative:
			stats.Negative++
		case classifier.LabelNeutral:
			stats.Neutral++
		default:
			continue
		}
		stats.Total++
	}
	if stats.Total > 0 {
		stats.NegativeRatio = float64(stats.Negative) / float64(stats.Total) * 100
	}
	return stats
}
