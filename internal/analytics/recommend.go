package analytics

import "github.com/mindhaven/mindhaven/internal/types"

// Recommendation tier thresholds, inclusive lower bounds on the negative
// ratio. A ratio of exactly 70 is urgent and exactly 50 is moderate.
const (
	urgentRatio   = 70
	moderateRatio = 50
)

// Recommend maps aggregate stats to a guidance tier, first match wins.
func Recommend(stats types.AggregateStats) types.Recommendation {
	switch {
	case stats.Total == 0:
		return types.Recommendation{
			Tier:    types.TierNone,
			Title:   "No Mood Data Yet",
			Message: "Log your mood to get personalized recommendations.",
			Color:   "gray",
		}
	case stats.NegativeRatio >= urgentRatio:
		return types.Recommendation{
			Tier:    types.TierUrgent,
			Title:   "Consider Professional Support",
			Message: "Your recent mood patterns suggest you might benefit from speaking with a mental health professional. Remember, seeking help is a sign of strength.",
			Color:   "red",
		}
	case stats.NegativeRatio >= moderateRatio:
		return types.Recommendation{
			Tier:    types.TierModerate,
			Title:   "Focus on Self-Care",
			Message: "Your mood has been fluctuating. Try our breathing exercises, meditation, or journaling tools to help improve your well-being.",
			Color:   "orange",
		}
	default:
		return types.Recommendation{
			Tier:    types.TierPositive,
			Title:   "Keep Up the Great Work!",
			Message: "Your mood patterns look healthy. Continue with your current self-care routine and consider sharing your positivity with the community.",
			Color:   "green",
		}
	}
}
