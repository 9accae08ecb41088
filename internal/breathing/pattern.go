// Package breathing drives timed guided-breathing sessions.
package breathing

import "fmt"

// Pattern selects one of the supported breathing exercises.
type Pattern string

const (
	PatternBox     Pattern = "box"
	Pattern478     Pattern = "478"
	PatternMindful Pattern = "mindful"
)

// Phase is a named segment of a breathing cycle.
type Phase string

const (
	PhaseInhale Phase = "inhale"
	PhaseHold1  Phase = "hold1"
	PhaseExhale Phase = "exhale"
	PhaseHold2  Phase = "hold2"
)

type phaseStep struct {
	Phase   Phase
	Seconds int
}

// patternSteps holds the cyclic phase sequence and per-phase duration of each
// pattern.
var patternSteps = map[Pattern][]phaseStep{
	PatternBox: {
		{PhaseInhale, 4},
		{PhaseHold1, 4},
		{PhaseExhale, 4},
		{PhaseHold2, 4},
	},
	Pattern478: {
		{PhaseInhale, 4},
		{PhaseHold1, 7},
		{PhaseExhale, 8},
	},
	PatternMindful: {
		{PhaseInhale, 4},
		{PhaseExhale, 4},
	},
}

// Info describes a pattern for the exercise picker.
type Info struct {
	ID          Pattern `json:"id"`
	Name        string  `json:"name"`
	Timing      string  `json:"pattern"`
	Description string  `json:"description"`
}

var patternInfos = []Info{
	{
		ID:          PatternBox,
		Name:        "Box Breathing",
		Timing:      "4-4-4-4",
		Description: "Inhale, hold, exhale, hold for four counts each",
	},
	{
		ID:          Pattern478,
		Name:        "4-7-8 Breathing",
		Timing:      "4-7-8",
		Description: "Inhale for 4, hold for 7, exhale for 8",
	},
	{
		ID:          PatternMindful,
		Name:        "Mindful Breathing",
		Timing:      "Natural",
		Description: "Focus on natural breath rhythm",
	},
}

// Patterns lists the supported exercises.
func Patterns() []Info {
	out := make([]Info, len(patternInfos))
	copy(out, patternInfos)
	return out
}

// ParsePattern validates a pattern selector.
func ParsePattern(raw string) (Pattern, error) {
	p := Pattern(raw)
	if _, ok := patternSteps[p]; !ok {
		return "", fmt.Errorf("unrecognized breathing pattern %q", raw)
	}
	return p, nil
}
