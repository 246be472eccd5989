package audio

import (
	"context"
	"fmt"

	"github.com/scribeflow/scribeflow/internal/logger"
)

// Preprocessor decodes raw uploads and prepends a short silence lead-in.
// The leading silence improves the remote model's boundary detection for
// the very first word.
type Preprocessor struct {
	source Source
	logger logger.Logger
}

// NewPreprocessor creates a Preprocessor over the given Source.
func NewPreprocessor(source Source, log logger.Logger) *Preprocessor {
	return &Preprocessor{
		source: source,
		logger: log,
	}
}

// Prepare decodes raw and prepends silencePaddingMs of silence. The
// returned handle's duration is the decoded duration plus the padding.
// Decode failures are fatal and carried as DecodeError.
func (p *Preprocessor) Prepare(ctx context.Context, raw []byte, silencePaddingMs int64) (Handle, error) {
	decoded, err := p.source.Decode(ctx, raw)
	if err != nil {
		return Handle{}, err
	}

	if silencePaddingMs <= 0 {
		return decoded, nil
	}

	silence, err := p.source.Silence(ctx, silencePaddingMs, decoded.Channels)
	if err != nil {
		p.source.Remove(ctx, decoded)
		return Handle{}, fmt.Errorf("silence padding: %w", err)
	}

	padded, err := p.source.Concat(ctx, silence, decoded)
	p.source.Remove(ctx, silence)
	p.source.Remove(ctx, decoded)
	if err != nil {
		return Handle{}, fmt.Errorf("prepend silence padding: %w", err)
	}

	p.logger.Info(ctx, "Preprocessed audio: duration=%.2fs, channels=%d",
		float64(padded.DurationMs)/1000, padded.Channels)
	return padded, nil
}
