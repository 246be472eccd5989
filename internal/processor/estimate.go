package processor

import "fmt"

// estimateProcessingTime gives a rough human-readable estimate from the
// audio duration. Very rough: ~10% of the duration plus a flat per-chunk
// overhead, floored at ten seconds.
func estimateProcessingTime(durationSeconds float64, maxChunkSeconds int) string {
	baseTime := durationSeconds * 0.1
	chunkOverhead := durationSeconds / float64(maxChunkSeconds) * 5

	totalSeconds := baseTime + chunkOverhead
	if totalSeconds < 10 {
		totalSeconds = 10
	}

	if totalSeconds < 60 {
		return fmt.Sprintf("~%d seconds", int(totalSeconds))
	}
	minutes := int(totalSeconds / 60)
	if minutes == 1 {
		return "~1 minute"
	}
	return fmt.Sprintf("~%d minutes", minutes)
}
