package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/scribeflow/scribeflow/internal/logger"
)

type implGemini struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// Summarize sends the transcript to Gemini. Rotates API keys on
// 429 / quota errors.
func (s *implGemini) Summarize(ctx context.Context, req Request) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", &SummaryError{Cause: fmt.Errorf("no Gemini API keys configured")}
	}
	if strings.TrimSpace(req.Transcript) == "" {
		return "", &SummaryError{Cause: fmt.Errorf("transcript is empty")}
	}

	prompt := buildSystemPrompt(req) + "\n\n" + userMessage

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", &SummaryError{Cause: err}
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			s.logger.Info(ctx, "Summary generated: %d characters", len(text))
			return text, nil
		}

		return "", &SummaryError{Cause: fmt.Errorf("empty response from Gemini")}
	}

	return "", &SummaryError{Cause: fmt.Errorf("all API keys exhausted: %w", lastErr)}
}

func (s *implGemini) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
