package analytics

import (
	"sort"

	"github.com/mindhaven/mindhaven/internal/classifier"
	"github.com/mindhaven/mindhaven/internal/types"
)

// Mood score weights per sentiment category.
const (
	weightPositive = 3
	weightNeutral  = 2
	weightNegative = 1
)

// BuildTrend groups observations into per-day buckets with a weighted mood
// score. Days without observations are omitted; the result is sorted ascending
// by date regardless of input order.
func BuildTrend(observations []types.MoodObservation) []types.DailyBucket {
	buckets := make(map[string]*types.DailyBucket)
	for _, obs := range observations {
		key := DayKey(obs.CreatedAt)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &types.DailyBucket{Date: key}
			buckets[key] = bucket
		}
		switch obs.Label {
		case classifier.LabelPositive:
			bucket.Positive++
		case classifier.LabelNeutral:
			bucket.Neutral++
		case classifier.LabelNegative:
			bucket.Negative++
		}
	}

	series := make([]types.DailyBucket, 0, len(buckets))
	for _, bucket := range buckets {
		count := bucket.Positive + bucket.Neutral + bucket.Negative
		if count == 0 {
			continue
		}
		bucket.MoodScore = float64(weightPositive*bucket.Positive+weightNeutral*bucket.Neutral+weightNegative*bucket.Negative) / float64(count)
		series = append(series, *bucket)
	}

	// The day key sorts lexicographically in date order.
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}
