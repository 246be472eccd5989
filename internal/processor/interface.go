package processor

import "context"

// Processor defines the interface for audio processing operations
type Processor interface {
	Process(ctx context.Context, audioPath string) error
}
