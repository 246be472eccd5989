package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scribeflow/scribeflow/internal/config"
	"github.com/scribeflow/scribeflow/internal/summarizer"
	"github.com/scribeflow/scribeflow/internal/transcriber"
)

// Process runs the whole pipeline for one uploaded audio file:
// validate, preprocess, transcribe, export the transcript, summarize and
// export the summary, then archive the input. A summary failure leaves
// the already-written transcript artifacts intact.
func (p *implProcessor) Process(ctx context.Context, audioPath string) error {
	startTime := time.Now()
	filename := filepath.Base(audioPath)
	baseName := strings.TrimSuffix(filename, filepath.Ext(filename))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting audio processing: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	if err := p.validateFile(audioPath); err != nil {
		return fmt.Errorf("validate file: %w", err)
	}

	raw, err := os.ReadFile(audioPath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	// Step 1: Decode and pad with leading silence
	handle, err := p.preprocessor.Prepare(ctx, raw, int64(p.cfg.Transcription.SilencePaddingMs))
	if err != nil {
		return fmt.Errorf("preprocess audio: %w", err)
	}
	defer p.source.Remove(ctx, handle)

	durationSeconds := float64(handle.DurationMs) / 1000
	p.logger.Info(ctx, "Audio duration: %.1fs, estimated processing time: %s",
		durationSeconds, estimateProcessingTime(durationSeconds, p.cfg.Transcription.MaxDurationSeconds))

	// Step 2: Transcribe (single-shot or chunked, decided by duration)
	transcript, err := p.transcriber.Run(ctx, transcriber.RunRequest{
		Audio:       handle,
		Description: p.cfg.Summary.Description,
		Language:    p.cfg.Transcription.Language,
		Model:       p.cfg.Transcription.Model,
	})
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	// Step 3: Export the transcript
	if err := p.writeTranscript(ctx, baseName, transcript); err != nil {
		return fmt.Errorf("export transcript: %w", err)
	}

	// Step 4: Summarize. The transcript artifacts above survive a
	// failure here, so a summary re-attempt starts from them.
	summary, err := p.summarizer.Summarize(ctx, summarizer.Request{
		Transcript:   transcript,
		Description:  p.cfg.Summary.Description,
		LanguageName: config.LanguageDisplayName(p.cfg.Transcription.Language),
	})
	if err != nil {
		p.logger.Error(ctx, "Summary generation failed, transcript is preserved: %v", err)
		return fmt.Errorf("summarize: %w", err)
	}

	// Step 5: Export the summary
	if err := p.writeSummary(ctx, baseName, summary); err != nil {
		return fmt.Errorf("export summary: %w", err)
	}

	// Step 6: Move original audio to archived folder
	if err := p.moveToArchived(ctx, audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Transcript: %d characters", len(transcript))
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implProcessor) writeTranscript(ctx context.Context, baseName, transcript string) error {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, format := range []string{"txt", "md"} {
		data, err := exportTranscript(transcript, format)
		if err != nil {
			return err
		}
		path := filepath.Join(p.cfg.Paths.Output, baseName+".transcript."+format)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, baseName+".transcript.docx")
	if err := summarizer.WriteTranscriptDocx(baseName, transcript, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write transcript docx: %v", err)
	}

	p.logger.Info(ctx, "Transcript exported: %s", filepath.Join(p.cfg.Paths.Output, baseName+".transcript.txt"))
	return nil
}

func (p *implProcessor) writeSummary(ctx context.Context, baseName, summary string) error {
	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		baseName,
		time.Now().Format("2006-01-02 15:04"),
		strings.TrimSpace(summary),
	)

	mdPath := filepath.Join(p.cfg.Paths.Output, baseName+".summary.md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write %s: %w", mdPath, err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, baseName+".summary.docx")
	if err := summarizer.WriteSummaryDocx(baseName, summary, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write summary docx: %v", err)
	}

	p.logger.Info(ctx, "Summary exported: %s", mdPath)
	return nil
}
