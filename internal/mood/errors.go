package mood

import "errors"

// Failure categories surfaced to callers. All are recoverable by resubmitting.
var (
	// ErrEmptyMood marks a submission with no text and no emoji.
	ErrEmptyMood = errors.New("mood text cannot be empty")
	// ErrClassification marks an unreachable or malformed classifier response.
	ErrClassification = errors.New("sentiment analysis failed")
	// ErrPersistence marks a failed append or fetch against the record store.
	ErrPersistence = errors.New("mood persistence failed")
)
