// Package classifier turns free-form mood text into a sentiment label.
package classifier

import (
	"fmt"
	"strings"
)

// Label is a sentiment category.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// ParseLabel validates a raw label string at the classifier boundary.
func ParseLabel(raw string) (Label, error) {
	switch Label(strings.ToLower(strings.TrimSpace(raw))) {
	case LabelPositive:
		return LabelPositive, nil
	case LabelNegative:
		return LabelNegative, nil
	case LabelNeutral:
		return LabelNeutral, nil
	default:
		return LabelNeutral, fmt.Errorf("unrecognized sentiment label %q", raw)
	}
}

// CoerceLabel maps anything outside the closed set to neutral.
func CoerceLabel(raw string) Label {
	label, err := ParseLabel(raw)
	if err != nil {
		return LabelNeutral
	}
	return label
}
