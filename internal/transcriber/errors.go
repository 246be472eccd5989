package transcriber

import "fmt"

// ConfigError indicates invalid chunking parameters. Fatal, surfaced
// before any remote call is made.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "chunking configuration: " + e.Reason
}

// TranscriptionError indicates a chunk's remote call failed on every
// attempt. It aborts the whole run: an incomplete middle chunk would
// corrupt the context hand-off and final ordering.
type TranscriptionError struct {
	ChunkIndex int
	Attempts   int
	Cause      error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcribe chunk %d failed after %d attempts: %v", e.ChunkIndex, e.Attempts, e.Cause)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Cause
}
