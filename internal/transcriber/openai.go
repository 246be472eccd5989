package transcriber

import (
	"bytes"
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type openAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a Client over the OpenAI audio transcriptions API.
func NewOpenAIClient(apiKey string) Client {
	return &openAIClient{client: openai.NewClient(apiKey)}
}

func (c *openAIClient) Transcribe(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    req.Model,
		Reader:   bytes.NewReader(req.Audio),
		FilePath: req.FileName,
		Format:   openai.AudioResponseFormatText,
		Language: req.Language,
		Prompt:   req.Prompt,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}

	if req.OnDelta != nil {
		req.OnDelta(resp.Text)
	}

	return resp.Text, nil
}
