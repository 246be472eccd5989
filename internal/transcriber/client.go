package transcriber

import "context"

// Request describes one remote speech-to-text call.
type Request struct {
	Audio    []byte
	FileName string
	Model    string
	Language string // empty means no language hint is sent
	Prompt   string

	// OnDelta, when set, receives incremental text as it arrives. The
	// concatenation of all deltas equals the returned text; a client
	// without streaming support delivers the full text as one delta.
	OnDelta func(text string)
}

// Client is a remote speech-to-text service.
type Client interface {
	Transcribe(ctx context.Context, req Request) (string, error)
}
