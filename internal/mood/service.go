// Package mood orchestrates submission and dashboard recompute over the
// record store and the external classifier.
package mood

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mindhaven/mindhaven/internal/analytics"
	"github.com/mindhaven/mindhaven/internal/classifier"
	"github.com/mindhaven/mindhaven/internal/types"
)

// EntryRepo defines record-store access for mood observations.
type EntryRepo interface {
	Append(ctx context.Context, userID, text string, label classifier.Label, confidence float64, at time.Time) (string, error)
	RecentWindow(ctx context.Context, userID string, windowDays int) ([]types.MoodObservation, error)
}

// Lookback in days per history period selector.
const (
	periodDayDays   = 1
	periodWeekDays  = 7
	periodMonthDays = 30
)

// Service wires the classifier and record store behind the mood operations.
type Service struct {
	classifier classifier.Classifier
	entries    EntryRepo
	windowDays int
}

// NewService returns a mood service over the given collaborators.
func NewService(c classifier.Classifier, entries EntryRepo, windowDays int) *Service {
	if windowDays <= 0 {
		windowDays = periodMonthDays
	}
	return &Service{
		classifier: c,
		entries:    entries,
		windowDays: windowDays,
	}
}

// Submit classifies the combined emoji+text submission and appends the
// resulting observation. Classification failures propagate without a local
// fallback; persistence failures propagate without retrying classification.
func (s *Service) Submit(ctx context.Context, userID, text, emoji string) (types.MoodEntryResult, error) {
	moodText := strings.TrimSpace(strings.TrimSpace(emoji) + " " + strings.TrimSpace(text))
	if moodText == "" {
		return types.MoodEntryResult{}, ErrEmptyMood
	}

	result, err := s.classifier.Classify(ctx, moodText)
	if err != nil {
		return types.MoodEntryResult{}, fmt.Errorf("%w: %w", ErrClassification, err)
	}

	id, err := s.entries.Append(ctx, userID, moodText, result.Label, result.Confidence, time.Now().UTC())
	if err != nil {
		return types.MoodEntryResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	slog.Info("mood recorded", "user_id", userID, "label", result.Label)
	return types.MoodEntryResult{
		EntryID:    id,
		Label:      result.Label,
		Confidence: result.Confidence,
	}, nil
}

// History returns the observations for a period selector. Unknown selectors
// clamp to a week.
func (s *Service) History(ctx context.Context, userID, period string) ([]types.MoodObservation, error) {
	days := periodWeekDays
	switch period {
	case "day":
		days = periodDayDays
	case "month":
		days = periodMonthDays
	case "week", "":
	}

	observations, err := s.entries.RecentWindow(ctx, userID, days)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return observations, nil
}

// Dashboard recomputes all analytics from the full observation window. A
// failed fetch degrades to empty-window analytics so the rest of the
// dashboard still renders.
func (s *Service) Dashboard(ctx context.Context, userID string) (types.Dashboard, error) {
	observations, err := s.entries.RecentWindow(ctx, userID, s.windowDays)
	if err != nil {
		slog.Warn("mood window fetch failed, rendering empty dashboard", "user_id", userID, "error", err)
		observations = nil
	}

	stats := analytics.Aggregate(observations)
	return types.Dashboard{
		Stats:          stats,
		Trend:          analytics.BuildTrend(observations),
		Heatmap:        analytics.CollapseDominant(analytics.BuildHeatmap(observations)),
		Recommendation: analytics.Recommend(stats),
	}, nil
}
