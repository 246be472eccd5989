package processor

import "fmt"

// exportTranscript renders the transcript in the given format.
func exportTranscript(transcript, format string) ([]byte, error) {
	switch format {
	case "txt":
		return []byte(transcript), nil
	case "md":
		return []byte(fmt.Sprintf("# Transcript\n\n%s", transcript)), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}
