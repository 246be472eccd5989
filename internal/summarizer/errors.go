package summarizer

import "fmt"

// SummaryError indicates the summarization call failed. Independent of
// transcription: an already-produced transcript stays intact.
type SummaryError struct {
	Cause error
}

func (e *SummaryError) Error() string {
	return fmt.Sprintf("generate summary: %v", e.Cause)
}

func (e *SummaryError) Unwrap() error {
	return e.Cause
}
