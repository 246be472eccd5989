package transcriber

import "testing"

func TestRunHappyPathChunked(t *testing.T) {
	run := NewRun()
	for _, next := range []State{StateDeciding, StateChunked, StateAssembled, StateDone} {
		if err := run.To(next); err != nil {
			t.Fatalf("To(%s) error = %v", next, err)
		}
	}
	if run.State() != StateDone {
		t.Errorf("State() = %s, want DONE", run.State())
	}
}

func TestRunHappyPathSingleShot(t *testing.T) {
	run := NewRun()
	for _, next := range []State{StateDeciding, StateSingleShot, StateAssembled, StateDone} {
		if err := run.To(next); err != nil {
			t.Fatalf("To(%s) error = %v", next, err)
		}
	}
}

func TestRunInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		path []State
		next State
	}{
		{"idle to chunked", nil, StateChunked},
		{"idle to done", nil, StateDone},
		{"deciding to assembled", []State{StateDeciding}, StateAssembled},
		{"single shot to chunked", []State{StateDeciding, StateSingleShot}, StateChunked},
		{"done is terminal", []State{StateDeciding, StateChunked, StateAssembled, StateDone}, StateDeciding},
		{"backwards", []State{StateDeciding, StateChunked}, StateDeciding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := NewRun()
			for _, s := range tt.path {
				if err := run.To(s); err != nil {
					t.Fatalf("setup To(%s) error = %v", s, err)
				}
			}
			if err := run.To(tt.next); err == nil {
				t.Errorf("To(%s) from %s expected error", tt.next, run.State())
			}
		})
	}
}

func TestRunFail(t *testing.T) {
	// Failed is reachable from any non-terminal state.
	paths := [][]State{
		nil,
		{StateDeciding},
		{StateDeciding, StateSingleShot},
		{StateDeciding, StateChunked},
		{StateDeciding, StateChunked, StateAssembled},
	}

	for _, path := range paths {
		run := NewRun()
		for _, s := range path {
			if err := run.To(s); err != nil {
				t.Fatalf("setup To(%s) error = %v", s, err)
			}
		}
		if !run.Fail() {
			t.Errorf("Fail() from %s = false, want true", run.State())
		}
		if run.State() != StateFailed {
			t.Errorf("State() = %s, want FAILED", run.State())
		}
	}
}

func TestRunFailOnTerminal(t *testing.T) {
	run := NewRun()
	for _, s := range []State{StateDeciding, StateSingleShot, StateAssembled, StateDone} {
		if err := run.To(s); err != nil {
			t.Fatalf("setup To(%s) error = %v", s, err)
		}
	}
	if run.Fail() {
		t.Error("Fail() on DONE = true, want false")
	}
	if run.State() != StateDone {
		t.Errorf("State() = %s, want DONE", run.State())
	}

	failed := NewRun()
	failed.Fail()
	if failed.Fail() {
		t.Error("Fail() on FAILED = true, want false")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "IDLE"},
		{StateDeciding, "DECIDING"},
		{StateSingleShot, "SINGLE_SHOT"},
		{StateChunked, "CHUNKED"},
		{StateAssembled, "ASSEMBLED"},
		{StateDone, "DONE"},
		{StateFailed, "FAILED"},
		{State(42), "UNKNOWN(42)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []State{StateIdle, StateDeciding, StateSingleShot, StateChunked, StateAssembled} {
		if s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = true, want false", s)
		}
	}
	for _, s := range []State{StateDone, StateFailed} {
		if !s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = false, want true", s)
		}
	}
}
