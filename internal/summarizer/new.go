package summarizer

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/scribeflow/scribeflow/internal/config"
	"github.com/scribeflow/scribeflow/internal/logger"
)

// New creates a Summarizer for the configured provider.
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	switch cfg.Summary.Provider {
	case "openai":
		return &implOpenAI{
			client:      openai.NewClient(cfg.OpenAIAPIKey),
			model:       cfg.Summary.Model,
			temperature: cfg.Summary.Temperature,
			logger:      log,
		}, nil
	case "gemini":
		return &implGemini{
			apiKeys: cfg.GeminiAPIKeys,
			model:   cfg.Summary.GeminiModel,
			logger:  log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown summary provider: %s", cfg.Summary.Provider)
	}
}
