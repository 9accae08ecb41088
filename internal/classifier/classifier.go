package classifier

import "context"

// Result is a classified sentiment with an optional confidence score.
type Result struct {
	Label      Label
	Confidence float64
}

// Classifier maps free text to a sentiment label.
type Classifier interface {
	Classify(ctx context.Context, text string) (Result, error)
}

const systemPrompt = `You are a sentiment classifier for mood journal entries. ` +
	`Reply with exactly one of the following labels and nothing else: positive, negative, neutral.`
