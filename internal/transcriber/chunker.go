package transcriber

import "fmt"

// ChunkSpec describes one time-bounded slice of the source audio.
type ChunkSpec struct {
	Index   int
	StartMs int64
	EndMs   int64
}

// Chunk partitions durationMs into ordered, possibly overlapping slices
// no longer than maxDurationMs. Audio that fits returns a single spec
// covering [0, durationMs). Longer audio is partitioned greedily: each
// chunk starts overlapMs before the previous one ended, so coverage is
// contiguous and the remote model sees the boundary twice.
func Chunk(durationMs, maxDurationMs, overlapMs int64) ([]ChunkSpec, error) {
	if durationMs <= 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("audio duration must be positive, got %dms", durationMs)}
	}
	if maxDurationMs <= 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("max chunk duration must be positive, got %dms", maxDurationMs)}
	}
	if overlapMs < 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("chunk overlap must not be negative, got %dms", overlapMs)}
	}
	if overlapMs >= maxDurationMs {
		return nil, &ConfigError{Reason: fmt.Sprintf(
			"chunk overlap %dms must be smaller than max chunk duration %dms", overlapMs, maxDurationMs)}
	}

	if durationMs <= maxDurationMs {
		return []ChunkSpec{{Index: 0, StartMs: 0, EndMs: durationMs}}, nil
	}

	var chunks []ChunkSpec
	start := int64(0)
	for index := 0; ; index++ {
		end := min(start+maxDurationMs, durationMs)
		chunks = append(chunks, ChunkSpec{Index: index, StartMs: start, EndMs: end})
		if end == durationMs {
			break
		}
		start = end - overlapMs
	}

	return chunks, nil
}
