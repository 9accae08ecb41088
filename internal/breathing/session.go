package breathing

import "fmt"

// Session is one in-memory breathing exercise, owned by its caller. Start,
// Tick and Stop are plain state transitions; nothing is persisted and no
// partial-phase progress survives a stop.
type Session struct {
	pattern          Pattern
	steps            []phaseStep
	index            int
	secondsRemaining int
	active           bool
}

// NewSession returns an inactive session positioned at the pattern's first
// phase.
func NewSession(pattern Pattern) (*Session, error) {
	steps, ok := patternSteps[pattern]
	if !ok {
		return nil, fmt.Errorf("unrecognized breathing pattern %q", pattern)
	}
	s := &Session{pattern: pattern, steps: steps}
	s.reset()
	return s, nil
}

// SetPattern switches the exercise. Switching while active is rejected; the
// caller must stop first so two timing configurations never overlap.
func (s *Session) SetPattern(pattern Pattern) error {
	if s.active {
		return fmt.Errorf("cannot switch pattern while session is active")
	}
	steps, ok := patternSteps[pattern]
	if !ok {
		return fmt.Errorf("unrecognized breathing pattern %q", pattern)
	}
	s.pattern = pattern
	s.steps = steps
	s.reset()
	return nil
}

// Start activates the session from the first phase.
func (s *Session) Start() {
	s.reset()
	s.active = true
}

// Tick consumes one second. When the current phase runs out it advances to
// the next phase in the cycle and resets the countdown to that phase's
// duration. Ticking an inactive session is a no-op.
func (s *Session) Tick() {
	if !s.active {
		return
	}
	s.secondsRemaining--
	if s.secondsRemaining > 0 {
		return
	}
	s.index++
	if s.index >= len(s.steps) {
		s.index = 0
	}
	s.secondsRemaining = s.steps[s.index].Seconds
}

// Stop deactivates the session and resets it to the initial state.
func (s *Session) Stop() {
	s.active = false
	s.reset()
}

func (s *Session) reset() {
	s.index = 0
	s.secondsRemaining = s.steps[0].Seconds
}

// Pattern returns the selected exercise.
func (s *Session) Pattern() Pattern {
	return s.pattern
}

// Phase returns the current phase name.
func (s *Session) Phase() Phase {
	if s.index < 0 || s.index >= len(s.steps) {
		return s.steps[0].Phase
	}
	return s.steps[s.index].Phase
}

// SecondsRemaining returns the countdown within the current phase.
func (s *Session) SecondsRemaining() int {
	return s.secondsRemaining
}

// Active reports whether the session is running.
func (s *Session) Active() bool {
	return s.active
}
