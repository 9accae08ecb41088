// Package types holds the shared domain types of the wellness engine.
package types

import (
	"time"

	"github.com/mindhaven/mindhaven/internal/classifier"
)

// MoodObservation is one classified mood record, immutable once stored.
type MoodObservation struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	Text       string           `json:"mood_text"`
	Label      classifier.Label `json:"mood_label"`
	Confidence float64          `json:"confidence"`
	CreatedAt  time.Time        `json:"created_at"`
}

// AggregateStats are category counts over the observation window.
type AggregateStats struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
	Total    int `json:"total"`
	// NegativeRatio is negative/total as a percentage in [0,100].
	NegativeRatio float64 `json:"negativeRatio"`
}

// DailyBucket aggregates one calendar day of observations.
type DailyBucket struct {
	Date      string  `json:"date"`
	Positive  int     `json:"positive"`
	Neutral   int     `json:"neutral"`
	Negative  int     `json:"negative"`
	MoodScore float64 `json:"moodScore"`
}

// HeatmapCell is one calendar-grid entry consumed by the heat-map renderer.
// Count mirrors Level, which is what the renderer contract expects.
type HeatmapCell struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// Tier is a recommendation category.
type Tier string

const (
	TierNone     Tier = "none"
	TierUrgent   Tier = "urgent"
	TierModerate Tier = "moderate"
	TierPositive Tier = "positive"
)

// Recommendation is the guidance shown on the dashboard.
type Recommendation struct {
	Tier    Tier   `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

// Dashboard is the full recomputed analytics payload.
type Dashboard struct {
	Stats          AggregateStats `json:"stats"`
	Trend          []DailyBucket  `json:"chartData"`
	Heatmap        []HeatmapCell  `json:"heatmapData"`
	Recommendation Recommendation `json:"recommendation"`
}

// MoodEntryResult is returned after a successful mood submission.
type MoodEntryResult struct {
	EntryID    string           `json:"entry_id"`
	Label      classifier.Label `json:"label"`
	Confidence float64          `json:"confidence"`
}
