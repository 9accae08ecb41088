package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindhaven/mindhaven/internal/classifier"
	"github.com/mindhaven/mindhaven/internal/types"
)

// moodEntryModel maps to the mood_entries table.
type moodEntryModel struct {
	ID         string
	UserID     string
	MoodText   string
	MoodLabel  string
	Confidence float64
	CreatedAt  time.Time
}

func (moodEntryModel) TableName() string {
	return "mood_entries"
}

// MoodEntryRepo accesses mood observation data.
type MoodEntryRepo struct {
	db *gorm.DB
}

// NewMoodEntryRepo returns a MoodEntryRepo.
func NewMoodEntryRepo(db *gorm.DB) *MoodEntryRepo {
	return &MoodEntryRepo{db: db}
}

// Append inserts a new observation and returns its id. Observations are
// immutable once written.
func (r *MoodEntryRepo) Append(ctx context.Context, userID, text string, label classifier.Label, confidence float64, at time.Time) (string, error) {
	record := moodEntryModel{
		ID:         uuid.NewString(),
		UserID:     userID,
		MoodText:   text,
		MoodLabel:  string(label),
		Confidence: confidence,
		CreatedAt:  at,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to insert mood entry: %w", err)
	}
	return record.ID, nil
}

// RecentWindow returns the observations of the last windowDays days ordered
// ascending by time. The window is a query-time filter; older rows stay put.
func (r *MoodEntryRepo) RecentWindow(ctx context.Context, userID string, windowDays int) ([]types.MoodObservation, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -windowDays)

	var records []moodEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, cutoff).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}

	observations := make([]types.MoodObservation, 0, len(records))
	for _, record := range records {
		observations = append(observations, observationFromModel(record))
	}
	return observations, nil
}

func observationFromModel(model moodEntryModel) types.MoodObservation {
	return types.MoodObservation{
		ID:     model.ID,
		UserID: model.UserID,
		Text:   model.MoodText,
		// Stored labels predate the closed set in old rows; coerce at the
		// boundary instead of dropping them.
		Label:      classifier.CoerceLabel(model.MoodLabel),
		Confidence: model.Confidence,
		CreatedAt:  model.CreatedAt,
	}
}
