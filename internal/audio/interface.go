package audio

import "context"

// Source decodes, slices and re-encodes audio. Every operation that
// returns a Handle produces a new independent file-backed handle; the
// caller owns it and releases it with Remove.
type Source interface {
	// Decode normalizes raw uploaded bytes into the working format.
	Decode(ctx context.Context, raw []byte) (Handle, error)

	// Silence produces a handle containing only silence.
	Silence(ctx context.Context, durationMs int64, channels int) (Handle, error)

	// Concat appends b after a.
	Concat(ctx context.Context, a, b Handle) (Handle, error)

	// Slice extracts [startMs, endMs) from h.
	Slice(ctx context.Context, h Handle, startMs, endMs int64) (Handle, error)

	// Encode renders h into the given container format (e.g. "mp3").
	Encode(ctx context.Context, h Handle, format string) ([]byte, error)

	// Remove releases the file backing h.
	Remove(ctx context.Context, h Handle)
}
