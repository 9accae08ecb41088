package analytics

import (
	"testing"
	"time"

	"github.com/mindhaven/mindhaven/internal/classifier"
	"github.com/mindhaven/mindhaven/internal/types"
)

func obs(label classifier.Label, at time.Time) types.MoodObservation {
	return types.MoodObservation{Label: label, CreatedAt: at}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	if stats != (types.AggregateStats{}) {
		t.Fatalf("expected zero stats, got %#v", stats)
	}
}

func TestAggregateCountsAndRatio(t *testing.T) {
	now := time.Now()
	stats := Aggregate([]types.MoodObservation{
		obs(classifier.LabelPositive, now),
		obs(classifier.LabelNegative, now),
		obs(classifier.LabelNegative, now),
		obs(classifier.LabelNeutral, now),
	})

	if stats.Positive != 1 || stats.Negative != 2 || stats.Neutral != 1 {
		t.Fatalf("unexpected counts: %#v", stats)
	}
	if stats.Total != stats.Positive+stats.Negative+stats.Neutral {
		t.Fatalf("total invariant broken: %#v", stats)
	}
	if stats.NegativeRatio != 50 {
		t.Fatalf("expected ratio 50, got %v", stats.NegativeRatio)
	}
}

func TestAggregateExcludesUnknownLabels(t *testing.T) {
	now := time.Now()
	stats := Aggregate([]types.MoodObservation{
		obs(classifier.LabelPositive, now),
		obs(classifier.Label("angry"), now),
	})

	if stats.Total != 1 || stats.Positive != 1 {
		t.Fatalf("unknown label leaked into counts: %#v", stats)
	}
}

func TestAggregateRatioBounds(t *testing.T) {
	now := time.Now()
	allNegative := Aggregate([]types.MoodObservation{
		obs(classifier.LabelNegative, now),
		obs(classifier.LabelNegative, now),
	})
	if allNegative.NegativeRatio != 100 {
		t.Fatalf("expected ratio 100, got %v", allNegative.NegativeRatio)
	}

	allPositive := Aggregate([]types.MoodObservation{obs(classifier.LabelPositive, now)})
	if allPositive.NegativeRatio != 0 {
		t.Fatalf("expected ratio 0, got %v", allPositive.NegativeRatio)
	}
}
