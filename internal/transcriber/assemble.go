package transcriber

import (
	"sort"
	"strings"
)

// ChunkResult is the transcribed text of one chunk. Set once by a
// successful remote call, never by a failed attempt.
type ChunkResult struct {
	Index int
	Text  string
}

// Assemble joins chunk texts in ascending index order with a single
// space and trims leading/trailing whitespace. It adds no content: a
// single-result assembly equals that result's trimmed text.
func Assemble(results []ChunkResult) string {
	sorted := make([]ChunkResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	parts := make([]string, len(sorted))
	for i, r := range sorted {
		parts[i] = r.Text
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
