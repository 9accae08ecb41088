package breathing

import "testing"

func mustSession(t *testing.T, pattern Pattern) *Session {
	t.Helper()
	s, err := NewSession(pattern)
	if err != nil {
		t.Fatalf("NewSession(%q): %v", pattern, err)
	}
	return s
}

func tick(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

func TestNewSessionUnknownPattern(t *testing.T) {
	if _, err := NewSession(Pattern("circle")); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}

func TestBoxPhaseAdvance(t *testing.T) {
	s := mustSession(t, PatternBox)
	s.Start()

	if s.Phase() != PhaseInhale || s.SecondsRemaining() != 4 {
		t.Fatalf("unexpected initial state: %s/%d", s.Phase(), s.SecondsRemaining())
	}

	tick(s, 4)
	if s.Phase() != PhaseHold1 || s.SecondsRemaining() != 4 {
		t.Fatalf("after 4 ticks: %s/%d, want hold1/4", s.Phase(), s.SecondsRemaining())
	}
}

func TestBoxFullCycle(t *testing.T) {
	s := mustSession(t, PatternBox)
	s.Start()

	tick(s, 16)
	if s.Phase() != PhaseInhale || s.SecondsRemaining() != 4 {
		t.Fatalf("after full cycle: %s/%d, want inhale/4", s.Phase(), s.SecondsRemaining())
	}
}

func Test478Durations(t *testing.T) {
	s := mustSession(t, Pattern478)
	s.Start()

	tick(s, 4)
	if s.Phase() != PhaseHold1 || s.SecondsRemaining() != 7 {
		t.Fatalf("after inhale: %s/%d, want hold1/7", s.Phase(), s.SecondsRemaining())
	}

	tick(s, 7)
	if s.Phase() != PhaseExhale || s.SecondsRemaining() != 8 {
		t.Fatalf("after hold: %s/%d, want exhale/8", s.Phase(), s.SecondsRemaining())
	}

	tick(s, 8)
	if s.Phase() != PhaseInhale || s.SecondsRemaining() != 4 {
		t.Fatalf("after 19 total ticks: %s/%d, want inhale/4", s.Phase(), s.SecondsRemaining())
	}
}

func TestMindfulAlternates(t *testing.T) {
	s := mustSession(t, PatternMindful)
	s.Start()

	tick(s, 4)
	if s.Phase() != PhaseExhale || s.SecondsRemaining() != 4 {
		t.Fatalf("after 4 ticks: %s/%d, want exhale/4", s.Phase(), s.SecondsRemaining())
	}
	tick(s, 4)
	if s.Phase() != PhaseInhale {
		t.Fatalf("after 8 ticks: %s, want inhale", s.Phase())
	}
}

func TestStopResetsMidPhase(t *testing.T) {
	s := mustSession(t, Pattern478)
	s.Start()
	tick(s, 9) // somewhere inside hold1

	s.Stop()
	if s.Active() {
		t.Fatal("expected inactive after stop")
	}
	if s.Phase() != PhaseInhale || s.SecondsRemaining() != 4 {
		t.Fatalf("stop did not reset: %s/%d", s.Phase(), s.SecondsRemaining())
	}
}

func TestTickInactiveIsNoop(t *testing.T) {
	s := mustSession(t, PatternBox)
	tick(s, 10)
	if s.Phase() != PhaseInhale || s.SecondsRemaining() != 4 {
		t.Fatalf("inactive session mutated: %s/%d", s.Phase(), s.SecondsRemaining())
	}
}

func TestStartDiscardsPriorProgress(t *testing.T) {
	s := mustSession(t, PatternBox)
	s.Start()
	tick(s, 6)
	s.Stop()

	s.Start()
	if s.Phase() != PhaseInhale || s.SecondsRemaining() != 4 || !s.Active() {
		t.Fatalf("restart kept partial-phase state: %s/%d", s.Phase(), s.SecondsRemaining())
	}
}

func TestSetPatternWhileActiveRejected(t *testing.T) {
	s := mustSession(t, PatternBox)
	s.Start()

	if err := s.SetPattern(Pattern478); err == nil {
		t.Fatal("expected error switching pattern while active")
	}

	s.Stop()
	if err := s.SetPattern(Pattern478); err != nil {
		t.Fatalf("expected switch after stop to succeed, got %v", err)
	}
	if s.Pattern() != Pattern478 || s.SecondsRemaining() != 4 {
		t.Fatalf("switch did not reinitialize: %s/%d", s.Pattern(), s.SecondsRemaining())
	}
}

func TestParsePattern(t *testing.T) {
	for _, raw := range []string{"box", "478", "mindful"} {
		if _, err := ParsePattern(raw); err != nil {
			t.Fatalf("ParsePattern(%q): %v", raw, err)
		}
	}
	if _, err := ParsePattern("deep"); err == nil {
		t.Fatal("expected error for unknown selector")
	}
}

func TestPatternsMetadata(t *testing.T) {
	infos := Patterns()
	if len(infos) != 3 {
		t.Fatalf("expected 3 patterns, got %d", len(infos))
	}
	for _, info := range infos {
		if _, err := ParsePattern(string(info.ID)); err != nil {
			t.Fatalf("metadata lists unknown pattern %q", info.ID)
		}
	}
}
