package transcriber

import (
	"fmt"
	"sync"
)

// State represents the lifecycle state of one transcription run.
type State int

const (
	// StateIdle - run created, nothing decided yet.
	StateIdle State = iota
	// StateDeciding - comparing audio duration against the chunking limit.
	StateDeciding
	// StateSingleShot - one whole-file remote call in flight.
	StateSingleShot
	// StateChunked - sequential per-chunk remote calls in flight.
	StateChunked
	// StateAssembled - chunk results joined into the final transcript.
	StateAssembled
	// StateDone - transcript published to the caller.
	StateDone
	// StateFailed - run aborted; no transcript is published.
	StateFailed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateDeciding:
		return "DECIDING"
	case StateSingleShot:
		return "SINGLE_SHOT"
	case StateChunked:
		return "CHUNKED"
	case StateAssembled:
		return "ASSEMBLED"
	case StateDone:
		return "DONE"
	case StateFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", s)
	}
}

// IsTerminal returns true for DONE and FAILED.
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// validTransitions holds the allowed forward transitions. FAILED is
// reachable from any non-terminal state via Fail.
var validTransitions = map[State][]State{
	StateIdle:       {StateDeciding},
	StateDeciding:   {StateSingleShot, StateChunked},
	StateSingleShot: {StateAssembled},
	StateChunked:    {StateAssembled},
	StateAssembled:  {StateDone},
}

// Run tracks the state machine for a single transcription run:
//
//	IDLE → DECIDING → {SINGLE_SHOT | CHUNKED} → ASSEMBLED → DONE
//
// with FAILED reachable from any non-terminal state.
type Run struct {
	mu    sync.Mutex
	state State
}

// NewRun creates a run in IDLE state.
func NewRun() *Run {
	return &Run{state: StateIdle}
}

// State returns the current state.
func (r *Run) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// To advances the run to next, rejecting transitions the machine does
// not allow.
func (r *Run) To(next State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, allowed := range validTransitions[r.state] {
		if next == allowed {
			r.state = next
			return nil
		}
	}
	return fmt.Errorf("invalid run transition %s -> %s", r.state, next)
}

// Fail moves the run to FAILED. Returns false if the run was already in
// a terminal state.
func (r *Run) Fail() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.IsTerminal() {
		return false
	}
	r.state = StateFailed
	return true
}
