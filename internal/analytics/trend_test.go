package analytics

import (
	"testing"
	"time"

	"github.com/mindhaven/mindhaven/internal/classifier"
	"github.com/mindhaven/mindhaven/internal/types"
)

func TestBuildTrendBucketsAndScores(t *testing.T) {
	day1 := time.Date(2026, 8, 10, 12, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 8, 11, 12, 0, 0, 0, time.Local)

	// Input deliberately out of chronological order.
	series := BuildTrend([]types.MoodObservation{
		obs(classifier.LabelPositive, day2),
		obs(classifier.LabelNegative, day1),
		obs(classifier.LabelPositive, day1),
	})

	if len(series) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(series))
	}
	if series[0].Date != "2026-08-10" || series[1].Date != "2026-08-11" {
		t.Fatalf("buckets not sorted ascending: %#v", series)
	}
	if series[0].MoodScore != 2.0 {
		t.Fatalf("day1 score = %v, want 2.0", series[0].MoodScore)
	}
	if series[1].MoodScore != 3.0 {
		t.Fatalf("day2 score = %v, want 3.0", series[1].MoodScore)
	}
}

func TestBuildTrendMergesSameDayRegardlessOfTime(t *testing.T) {
	morning := time.Date(2026, 8, 10, 1, 0, 0, 0, time.Local)
	evening := time.Date(2026, 8, 10, 23, 0, 0, 0, time.Local)

	series := BuildTrend([]types.MoodObservation{
		obs(classifier.LabelNeutral, morning),
		obs(classifier.LabelNeutral, evening),
	})

	if len(series) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(series))
	}
	if series[0].Neutral != 2 || series[0].MoodScore != 2.0 {
		t.Fatalf("unexpected bucket: %#v", series[0])
	}
}

func TestBuildTrendSparseAndEmpty(t *testing.T) {
	if got := BuildTrend(nil); len(got) != 0 {
		t.Fatalf("expected empty series, got %#v", got)
	}

	day1 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.Local)
	day5 := time.Date(2026, 8, 5, 12, 0, 0, 0, time.Local)
	series := BuildTrend([]types.MoodObservation{
		obs(classifier.LabelPositive, day1),
		obs(classifier.LabelNegative, day5),
	})
	if len(series) != 2 {
		t.Fatalf("expected sparse series without zero-fill, got %#v", series)
	}
}

func TestBuildTrendSortsManyDays(t *testing.T) {
	var input []types.MoodObservation
	for day := 28; day >= 1; day-- {
		input = append(input, obs(classifier.LabelPositive, time.Date(2026, 8, day, 12, 0, 0, 0, time.Local)))
	}

	series := BuildTrend(input)
	if len(series) != 28 {
		t.Fatalf("expected 28 buckets, got %d", len(series))
	}
	for i := 1; i < len(series); i++ {
		if series[i-1].Date >= series[i].Date {
			t.Fatalf("series not strictly ascending at %d: %s >= %s", i, series[i-1].Date, series[i].Date)
		}
	}
}
