package summarizer

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/scribeflow/scribeflow/internal/logger"
)

// chatCompleter is the slice of the OpenAI client the summarizer needs.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type implOpenAI struct {
	client      chatCompleter
	model       string
	temperature float32
	logger      logger.Logger
}

func (s *implOpenAI) Summarize(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return "", &SummaryError{Cause: fmt.Errorf("transcript is empty")}
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: s.temperature,
	})
	if err != nil {
		return "", &SummaryError{Cause: err}
	}

	if len(resp.Choices) == 0 {
		return "", &SummaryError{Cause: fmt.Errorf("empty response from model %s", s.model)}
	}

	summary := resp.Choices[0].Message.Content
	s.logger.Info(ctx, "Summary generated: %d characters", len(summary))
	return summary, nil
}
