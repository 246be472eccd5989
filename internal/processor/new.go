package processor

import (
	"github.com/scribeflow/scribeflow/internal/audio"
	"github.com/scribeflow/scribeflow/internal/config"
	"github.com/scribeflow/scribeflow/internal/logger"
	"github.com/scribeflow/scribeflow/internal/summarizer"
	"github.com/scribeflow/scribeflow/internal/transcriber"
)

type implProcessor struct {
	cfg          *config.Config
	source       audio.Source
	preprocessor *audio.Preprocessor
	transcriber  transcriber.Transcriber
	summarizer   summarizer.Summarizer
	logger       logger.Logger
}

// New creates a new Processor instance
func New(
	cfg *config.Config,
	source audio.Source,
	preprocessor *audio.Preprocessor,
	trans transcriber.Transcriber,
	summ summarizer.Summarizer,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:          cfg,
		source:       source,
		preprocessor: preprocessor,
		transcriber:  trans,
		summarizer:   summ,
		logger:       log,
	}
}
