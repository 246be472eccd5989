package transcriber

import (
	"context"

	"github.com/scribeflow/scribeflow/internal/audio"
)

// RunRequest describes one end-to-end transcription run over prepared audio.
type RunRequest struct {
	Audio       audio.Handle
	Description string
	Language    string // language code; empty or "auto" sends no hint
	Model       string

	// OnDelta, when set, observes streamed text on the single-shot path.
	OnDelta func(text string)
}

// Transcriber turns prepared audio into one final transcript.
type Transcriber interface {
	Run(ctx context.Context, req RunRequest) (string, error)
}
