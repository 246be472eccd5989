package transcriber

import (
	"context"
	"fmt"
	"strings"
)

// Run decides between one whole-file call and sequential chunked calls,
// then returns the final trimmed transcript. Any unrecovered error moves
// the run to FAILED and no transcript is published.
func (t *implTranscriber) Run(ctx context.Context, req RunRequest) (string, error) {
	run := NewRun()

	transcript, err := t.run(ctx, run, req)
	if err != nil {
		run.Fail()
		return "", err
	}

	if terr := run.To(StateDone); terr != nil {
		run.Fail()
		return "", terr
	}
	return transcript, nil
}

func (t *implTranscriber) run(ctx context.Context, run *Run, req RunRequest) (string, error) {
	if err := run.To(StateDeciding); err != nil {
		return "", err
	}

	maxDurationMs := int64(t.cfg.Transcription.MaxDurationSeconds) * 1000
	overlapMs := int64(t.cfg.Transcription.ChunkOverlapSeconds) * 1000

	if req.Audio.DurationMs <= maxDurationMs {
		return t.runSingleShot(ctx, run, req)
	}
	return t.runChunked(ctx, run, req, maxDurationMs, overlapMs)
}

// runSingleShot transcribes the whole audio in one remote call,
// forwarding streamed deltas to the caller's observer when present.
func (t *implTranscriber) runSingleShot(ctx context.Context, run *Run, req RunRequest) (string, error) {
	if err := run.To(StateSingleShot); err != nil {
		return "", err
	}

	t.logger.Info(ctx, "Transcribing %.1fs audio in a single call", float64(req.Audio.DurationMs)/1000)

	data, err := t.source.Encode(ctx, req.Audio, "mp3")
	if err != nil {
		return "", err
	}

	text, err := t.client.Transcribe(ctx, Request{
		Audio:    data,
		FileName: "audio.mp3",
		Model:    req.Model,
		Language: languageHint(req.Language),
		Prompt:   singleShotPrompt(req.Description),
		OnDelta:  req.OnDelta,
	})
	if err != nil {
		return "", fmt.Errorf("single-shot transcription: %w", err)
	}

	if err := run.To(StateAssembled); err != nil {
		return "", err
	}
	return Assemble([]ChunkResult{{Index: 0, Text: text}}), nil
}

// runChunked partitions the audio and transcribes the chunks strictly
// sequentially: each chunk's prompt carries the tail of the previous
// chunk's text, so no two chunk calls may run concurrently or out of
// order.
func (t *implTranscriber) runChunked(ctx context.Context, run *Run, req RunRequest, maxDurationMs, overlapMs int64) (string, error) {
	specs, err := Chunk(req.Audio.DurationMs, maxDurationMs, overlapMs)
	if err != nil {
		return "", err
	}

	if err := run.To(StateChunked); err != nil {
		return "", err
	}

	t.logger.Info(ctx, "Transcribing %.1fs audio in %d chunks", float64(req.Audio.DurationMs)/1000, len(specs))

	results := make([]ChunkResult, 0, len(specs))
	previousText := ""

	for _, spec := range specs {
		text, err := t.transcribeChunk(ctx, req, spec, len(specs), previousText)
		if err != nil {
			return "", err
		}

		results = append(results, ChunkResult{Index: spec.Index, Text: text})
		previousText = text

		t.logger.Info(ctx, "Transcribed chunk %d/%d: %d characters", spec.Index+1, len(specs), len(text))
	}

	if err := run.To(StateAssembled); err != nil {
		return "", err
	}
	return Assemble(results), nil
}

// transcribeChunk slices, encodes and transcribes one chunk under the
// retry policy.
func (t *implTranscriber) transcribeChunk(ctx context.Context, req RunRequest, spec ChunkSpec, total int, previousText string) (string, error) {
	slice, err := t.source.Slice(ctx, req.Audio, spec.StartMs, spec.EndMs)
	if err != nil {
		return "", fmt.Errorf("slice chunk %d: %w", spec.Index, err)
	}
	defer t.source.Remove(ctx, slice)

	data, err := t.source.Encode(ctx, slice, "mp3")
	if err != nil {
		return "", fmt.Errorf("encode chunk %d: %w", spec.Index, err)
	}

	prompt := chunkPrompt(req.Description, spec.Index, total, previousText)
	label := fmt.Sprintf("chunk %d/%d", spec.Index+1, total)

	var text string
	attempts, err := t.retry.do(ctx, t.logger, label, func() error {
		out, err := t.client.Transcribe(ctx, Request{
			Audio:    data,
			FileName: fmt.Sprintf("chunk_%d.mp3", spec.Index+1),
			Model:    req.Model,
			Language: languageHint(req.Language),
			Prompt:   prompt,
		})
		if err != nil {
			return err
		}
		text = out
		return nil
	})
	if err != nil {
		return "", &TranscriptionError{ChunkIndex: spec.Index, Attempts: attempts, Cause: err}
	}

	return text, nil
}

// languageHint maps "auto" and empty to no hint.
func languageHint(language string) string {
	if strings.EqualFold(language, "auto") {
		return ""
	}
	return language
}
