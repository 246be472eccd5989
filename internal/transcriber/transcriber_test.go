package transcriber

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/scribeflow/scribeflow/internal/audio"
	"github.com/scribeflow/scribeflow/internal/config"
	"github.com/scribeflow/scribeflow/internal/logger"
)

// fakeSource hands out path-tagged handles without touching ffmpeg.
type fakeSource struct {
	sliced  []ChunkSpec
	removed int
}

func (f *fakeSource) Decode(ctx context.Context, raw []byte) (audio.Handle, error) {
	return audio.Handle{}, errors.New("not used")
}

func (f *fakeSource) Silence(ctx context.Context, durationMs int64, channels int) (audio.Handle, error) {
	return audio.Handle{}, errors.New("not used")
}

func (f *fakeSource) Concat(ctx context.Context, a, b audio.Handle) (audio.Handle, error) {
	return audio.Handle{}, errors.New("not used")
}

func (f *fakeSource) Slice(ctx context.Context, h audio.Handle, startMs, endMs int64) (audio.Handle, error) {
	f.sliced = append(f.sliced, ChunkSpec{Index: len(f.sliced), StartMs: startMs, EndMs: endMs})
	return audio.Handle{
		Path:       fmt.Sprintf("slice-%d-%d.wav", startMs, endMs),
		DurationMs: endMs - startMs,
		Channels:   h.Channels,
	}, nil
}

func (f *fakeSource) Encode(ctx context.Context, h audio.Handle, format string) ([]byte, error) {
	return []byte(h.Path), nil
}

func (f *fakeSource) Remove(ctx context.Context, h audio.Handle) {
	f.removed++
}

// fakeClient scripts per-call outcomes and records every request.
type fakeClient struct {
	requests  []Request
	responses []string
	errs      []error
}

func (f *fakeClient) Transcribe(ctx context.Context, req Request) (string, error) {
	call := len(f.requests)
	f.requests = append(f.requests, req)
	if call < len(f.errs) && f.errs[call] != nil {
		return "", f.errs[call]
	}
	text := fmt.Sprintf("text for call %d", call)
	if call < len(f.responses) {
		text = f.responses[call]
	}
	if req.OnDelta != nil {
		req.OnDelta(text)
	}
	return text, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Transcription: config.TranscriptionConfig{
			Model:               "gpt-4o-transcribe",
			Language:            "en",
			MaxDurationSeconds:  600,
			ChunkOverlapSeconds: 5,
			MaxRetries:          3,
			InitialDelaySeconds: 1.0,
			BackoffBase:         2.0,
		},
	}
}

func newTestTranscriber(cfg *config.Config, source audio.Source, client Client) *implTranscriber {
	tr := New(cfg, source, client, logger.New("error", "json")).(*implTranscriber)
	tr.retry.jitter = func() float64 { return 0.5 }
	tr.retry.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	return tr
}

func TestRunSingleShot(t *testing.T) {
	source := &fakeSource{}
	client := &fakeClient{responses: []string{"  hello from a short file  "}}
	tr := newTestTranscriber(testConfig(), source, client)

	var deltas []string
	transcript, err := tr.Run(context.Background(), RunRequest{
		Audio:       audio.Handle{Path: "audio.wav", DurationMs: 300_000, Channels: 1},
		Description: "A short meeting",
		Language:    "en",
		Model:       "gpt-4o-transcribe",
		OnDelta:     func(text string) { deltas = append(deltas, text) },
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if transcript != "hello from a short file" {
		t.Errorf("transcript = %q", transcript)
	}
	if len(client.requests) != 1 {
		t.Fatalf("remote calls = %d, want 1", len(client.requests))
	}

	req := client.requests[0]
	if req.Prompt != "You are listening to: A short meeting." {
		t.Errorf("prompt = %q", req.Prompt)
	}
	if strings.Contains(req.Prompt, "part") {
		t.Errorf("single-shot prompt should have no part clause: %q", req.Prompt)
	}
	if req.Language != "en" {
		t.Errorf("language = %q, want en", req.Language)
	}

	// Streamed deltas concatenate to the raw (untrimmed) service output.
	if strings.Join(deltas, "") != "  hello from a short file  " {
		t.Errorf("deltas = %v", deltas)
	}

	if len(source.sliced) != 0 {
		t.Errorf("single-shot path sliced %d times, want 0", len(source.sliced))
	}
}

func TestRunChunked(t *testing.T) {
	source := &fakeSource{}
	client := &fakeClient{responses: []string{"first part text", "second part text", "third part text"}}
	tr := newTestTranscriber(testConfig(), source, client)

	transcript, err := tr.Run(context.Background(), RunRequest{
		Audio:       audio.Handle{Path: "audio.wav", DurationMs: 1_500_000, Channels: 1},
		Description: "A long meeting",
		Language:    "en",
		Model:       "gpt-4o-transcribe",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if transcript != "first part text second part text third part text" {
		t.Errorf("transcript = %q", transcript)
	}

	// Slices issued sequentially in chunker order.
	wantSlices := []ChunkSpec{
		{0, 0, 600_000},
		{1, 595_000, 1_195_000},
		{2, 1_190_000, 1_500_000},
	}
	if len(source.sliced) != len(wantSlices) {
		t.Fatalf("slices = %d, want %d", len(source.sliced), len(wantSlices))
	}
	for i, want := range wantSlices {
		if source.sliced[i] != want {
			t.Errorf("slice[%d] = %+v, want %+v", i, source.sliced[i], want)
		}
	}
	if source.removed != len(wantSlices) {
		t.Errorf("removed %d slice handles, want %d", source.removed, len(wantSlices))
	}

	if len(client.requests) != 3 {
		t.Fatalf("remote calls = %d, want 3", len(client.requests))
	}

	for i, req := range client.requests {
		wantName := fmt.Sprintf("chunk_%d.mp3", i+1)
		if req.FileName != wantName {
			t.Errorf("call %d file name = %q, want %q", i, req.FileName, wantName)
		}
		wantPart := fmt.Sprintf("This is part %d of 3.", i+1)
		if !strings.Contains(req.Prompt, wantPart) {
			t.Errorf("call %d prompt %q missing %q", i, req.Prompt, wantPart)
		}
	}

	// Context hand-off: each prompt after the first carries the previous
	// chunk's text.
	if strings.Contains(client.requests[0].Prompt, "previous part") {
		t.Errorf("first prompt must have no hand-off: %q", client.requests[0].Prompt)
	}
	if !strings.Contains(client.requests[1].Prompt, "The previous part ended with: 'first part text'") {
		t.Errorf("second prompt missing hand-off: %q", client.requests[1].Prompt)
	}
	if !strings.Contains(client.requests[2].Prompt, "The previous part ended with: 'second part text'") {
		t.Errorf("third prompt missing hand-off: %q", client.requests[2].Prompt)
	}
}

func TestRunChunkedRetriesThenSucceeds(t *testing.T) {
	source := &fakeSource{}
	client := &fakeClient{
		responses: []string{"", "", "part one", "part two"},
		errs:      []error{errors.New("rate limited"), errors.New("rate limited"), nil, nil},
	}
	tr := newTestTranscriber(testConfig(), source, client)

	transcript, err := tr.Run(context.Background(), RunRequest{
		Audio:       audio.Handle{Path: "audio.wav", DurationMs: 700_000, Channels: 1},
		Description: "A meeting",
		Language:    "en",
		Model:       "gpt-4o-transcribe",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// First chunk took 3 attempts, second took 1.
	if len(client.requests) != 4 {
		t.Errorf("remote calls = %d, want 4", len(client.requests))
	}
	if transcript != "part one part two" {
		t.Errorf("transcript = %q", transcript)
	}
}

func TestRunChunkedAbortsAfterExhaustedRetries(t *testing.T) {
	boom := errors.New("service down")
	source := &fakeSource{}
	client := &fakeClient{errs: []error{boom, boom, boom, boom}}
	tr := newTestTranscriber(testConfig(), source, client)

	transcript, err := tr.Run(context.Background(), RunRequest{
		Audio:       audio.Handle{Path: "audio.wav", DurationMs: 700_000, Channels: 1},
		Description: "A meeting",
		Language:    "en",
		Model:       "gpt-4o-transcribe",
	})
	if err == nil {
		t.Fatal("Run() expected error")
	}
	if transcript != "" {
		t.Errorf("failed run published transcript %q", transcript)
	}

	var trErr *TranscriptionError
	if !errors.As(err, &trErr) {
		t.Fatalf("err = %T, want *TranscriptionError", err)
	}
	if trErr.ChunkIndex != 0 || trErr.Attempts != 4 {
		t.Errorf("TranscriptionError = %+v, want chunk 0 after 4 attempts", trErr)
	}

	// maxRetries+1 attempts for the failing chunk, then the run aborts:
	// the second chunk is never requested.
	if len(client.requests) != 4 {
		t.Errorf("remote calls = %d, want 4", len(client.requests))
	}
}

func TestRunDegenerateOverlapFailsBeforeRemoteCalls(t *testing.T) {
	cfg := testConfig()
	cfg.Transcription.ChunkOverlapSeconds = 700
	source := &fakeSource{}
	client := &fakeClient{}
	tr := newTestTranscriber(cfg, source, client)

	_, err := tr.Run(context.Background(), RunRequest{
		Audio:       audio.Handle{Path: "audio.wav", DurationMs: 1_500_000, Channels: 1},
		Description: "A meeting",
		Language:    "en",
		Model:       "gpt-4o-transcribe",
	})

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
	if len(client.requests) != 0 {
		t.Errorf("remote calls = %d, want 0", len(client.requests))
	}
}

func TestRunAutoLanguageSendsNoHint(t *testing.T) {
	source := &fakeSource{}
	client := &fakeClient{}
	tr := newTestTranscriber(testConfig(), source, client)

	_, err := tr.Run(context.Background(), RunRequest{
		Audio:       audio.Handle{Path: "audio.wav", DurationMs: 1000, Channels: 1},
		Description: "A meeting",
		Language:    "auto",
		Model:       "gpt-4o-transcribe",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if client.requests[0].Language != "" {
		t.Errorf("language = %q, want empty for auto", client.requests[0].Language)
	}
}

func TestRunSingleChunkEquivalence(t *testing.T) {
	// Identical service text must produce identical transcripts on the
	// single-shot path and a one-chunk assembled run.
	text := "  same text either way  "

	single := &fakeClient{responses: []string{text}}
	tr := newTestTranscriber(testConfig(), &fakeSource{}, single)
	got, err := tr.Run(context.Background(), RunRequest{
		Audio: audio.Handle{Path: "a.wav", DurationMs: 1000, Channels: 1},
		Model: "gpt-4o-transcribe",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := Assemble([]ChunkResult{{Index: 0, Text: text}})
	if got != want {
		t.Errorf("single-shot = %q, assembled = %q", got, want)
	}
}
