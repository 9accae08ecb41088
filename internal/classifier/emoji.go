package classifier

import "context"

// emojiSentiments maps well-known mood emojis to a fixed classification so a
// submission that leads with one never needs a remote call.
var emojiSentiments = map[rune]Result{
	'😊': {Label: LabelPositive, Confidence: 1.0},
	'😀': {Label: LabelPositive, Confidence: 1.0},
	'😃': {Label: LabelPositive, Confidence: 1.0},
	'😄': {Label: LabelPositive, Confidence: 1.0},
	'😍': {Label: LabelPositive, Confidence: 1.0},
	'🥰': {Label: LabelPositive, Confidence: 1.0},
	'😂': {Label: LabelPositive, Confidence: 0.8},
	'😭': {Label: LabelNegative, Confidence: 0.8},
	'😢': {Label: LabelNegative, Confidence: 0.8},
	'😞': {Label: LabelNegative, Confidence: 1.0},
	'😡': {Label: LabelNegative, Confidence: 1.0},
	'😠': {Label: LabelNegative, Confidence: 1.0},
	'😔': {Label: LabelNegative, Confidence: 0.8},
	'😐': {Label: LabelNeutral, Confidence: 0.7},
	'😶': {Label: LabelNeutral, Confidence: 0.7},
}

// EmojiShortcut wraps a classifier and answers from the emoji table when the
// text contains a known mood emoji, delegating everything else.
type EmojiShortcut struct {
	next Classifier
}

// NewEmojiShortcut returns a classifier with the emoji fast path.
func NewEmojiShortcut(next Classifier) *EmojiShortcut {
	return &EmojiShortcut{next: next}
}

// Classify returns the sentiment label for text.
func (c *EmojiShortcut) Classify(ctx context.Context, text string) (Result, error) {
	for _, r := range text {
		if result, ok := emojiSentiments[r]; ok {
			return result, nil
		}
	}
	return c.next.Classify(ctx, text)
}
