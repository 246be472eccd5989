package summarizer

import "context"

// Request carries the (possibly user-edited) transcript plus metadata.
type Request struct {
	Transcript   string
	Description  string
	LanguageName string // display name, e.g. "Italian"
}

// Summarizer turns a transcript into one structured markdown summary.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (string, error)
}
