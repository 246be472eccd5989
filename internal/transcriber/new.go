package transcriber

import (
	"time"

	"github.com/scribeflow/scribeflow/internal/audio"
	"github.com/scribeflow/scribeflow/internal/config"
	"github.com/scribeflow/scribeflow/internal/logger"
)

type implTranscriber struct {
	cfg    *config.Config
	source audio.Source
	client Client
	retry  *retryPolicy
	logger logger.Logger
}

// New creates a new Transcriber instance
func New(cfg *config.Config, source audio.Source, client Client, log logger.Logger) Transcriber {
	tc := cfg.Transcription
	return &implTranscriber{
		cfg:    cfg,
		source: source,
		client: client,
		retry: newRetryPolicy(
			tc.MaxRetries,
			time.Duration(tc.InitialDelaySeconds*float64(time.Second)),
			tc.BackoffBase,
		),
		logger: log,
	}
}
