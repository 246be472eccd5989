package audio

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/scribeflow/scribeflow/internal/logger"
	"github.com/scribeflow/scribeflow/pkg/executor"
)

// Working format: 16kHz mono PCM WAV. Whisper-family models work best
// with mono 16kHz input, and identical stream parameters let concat and
// slice run as stream copies.
const (
	workSampleRate = 16000
	workChannels   = 1
)

type implSource struct {
	executor executor.Executor
	logger   logger.Logger
	tempDir  string
}

// New creates a Source backed by ffmpeg/ffprobe working under tempDir.
func New(exec executor.Executor, log logger.Logger, tempDir string) Source {
	return &implSource{
		executor: exec,
		logger:   log,
		tempDir:  tempDir,
	}
}

// Decode normalizes raw uploaded bytes to the working WAV format.
// ffmpeg sniffs the container from the byte stream, so any upload
// format it understands is accepted.
func (s *implSource) Decode(ctx context.Context, raw []byte) (Handle, error) {
	out, err := s.tempPath("decoded-*.wav")
	if err != nil {
		return Handle{}, err
	}

	args := []string{
		"-i", "pipe:0",
		"-vn",
		"-ar", strconv.Itoa(workSampleRate),
		"-ac", strconv.Itoa(workChannels),
		"-c:a", "pcm_s16le",
		"-y",
		out,
	}

	if _, err := s.executor.ExecuteWithStdin(ctx, bytes.NewReader(raw), "ffmpeg", args...); err != nil {
		os.Remove(out)
		return Handle{}, &DecodeError{Cause: err}
	}

	h, err := s.probe(ctx, out)
	if err != nil {
		os.Remove(out)
		return Handle{}, &DecodeError{Cause: err}
	}

	s.logger.Debug(ctx, "Decoded audio: duration=%dms channels=%d", h.DurationMs, h.Channels)
	return h, nil
}

// Silence produces durationMs of silence in the working format.
func (s *implSource) Silence(ctx context.Context, durationMs int64, channels int) (Handle, error) {
	out, err := s.tempPath("silence-*.wav")
	if err != nil {
		return Handle{}, err
	}

	layout := "mono"
	if channels > 1 {
		layout = "stereo"
	}

	args := []string{
		"-f", "lavfi",
		"-i", fmt.Sprintf("anullsrc=r=%d:cl=%s", workSampleRate, layout),
		"-t", formatSeconds(durationMs),
		"-c:a", "pcm_s16le",
		"-y",
		out,
	}

	if _, err := s.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		os.Remove(out)
		return Handle{}, fmt.Errorf("generate silence: %w", err)
	}

	return Handle{Path: out, DurationMs: durationMs, Channels: channels}, nil
}

// Concat appends b after a via the concat demuxer. Both handles are in
// the working format so a stream copy suffices.
func (s *implSource) Concat(ctx context.Context, a, b Handle) (Handle, error) {
	list, err := s.tempPath("concat-*.txt")
	if err != nil {
		return Handle{}, err
	}
	defer os.Remove(list)

	absA, _ := filepath.Abs(a.Path)
	absB, _ := filepath.Abs(b.Path)
	entries := fmt.Sprintf("file '%s'\nfile '%s'\n", absA, absB)
	if err := os.WriteFile(list, []byte(entries), 0644); err != nil {
		return Handle{}, fmt.Errorf("write concat list: %w", err)
	}

	out, err := s.tempPath("concat-*.wav")
	if err != nil {
		return Handle{}, err
	}

	args := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", list,
		"-c", "copy",
		"-y",
		out,
	}

	if _, err := s.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		os.Remove(out)
		return Handle{}, fmt.Errorf("concat audio: %w", err)
	}

	return Handle{
		Path:       out,
		DurationMs: a.DurationMs + b.DurationMs,
		Channels:   a.Channels,
	}, nil
}

// Slice extracts [startMs, endMs) from h as a stream copy.
func (s *implSource) Slice(ctx context.Context, h Handle, startMs, endMs int64) (Handle, error) {
	if startMs < 0 || endMs <= startMs || endMs > h.DurationMs {
		return Handle{}, fmt.Errorf("invalid slice [%d, %d) of %dms audio", startMs, endMs, h.DurationMs)
	}

	out, err := s.tempPath("slice-*.wav")
	if err != nil {
		return Handle{}, err
	}

	args := []string{
		"-i", h.Path,
		"-ss", formatSeconds(startMs),
		"-to", formatSeconds(endMs),
		"-c", "copy",
		"-y",
		out,
	}

	if _, err := s.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		os.Remove(out)
		return Handle{}, fmt.Errorf("slice audio [%d, %d): %w", startMs, endMs, err)
	}

	return Handle{
		Path:       out,
		DurationMs: endMs - startMs,
		Channels:   h.Channels,
	}, nil
}

// Encode renders h into the given container format and returns the bytes.
func (s *implSource) Encode(ctx context.Context, h Handle, format string) ([]byte, error) {
	out, err := s.tempPath("encoded-*." + format)
	if err != nil {
		return nil, err
	}
	defer os.Remove(out)

	args := []string{
		"-i", h.Path,
		"-y",
		out,
	}

	if _, err := s.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return nil, fmt.Errorf("encode audio to %s: %w", format, err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("read encoded audio: %w", err)
	}

	return data, nil
}

// Remove releases the file backing h, logging a warning on failure.
func (s *implSource) Remove(ctx context.Context, h Handle) {
	if h.Path == "" {
		return
	}
	if err := os.Remove(h.Path); err != nil {
		s.logger.Warn(ctx, "Failed to remove audio file %s: %v", h.Path, err)
	} else {
		s.logger.Debug(ctx, "Removed audio file: %s", h.Path)
	}
}

// probe reads duration and channel count via ffprobe.
func (s *implSource) probe(ctx context.Context, path string) (Handle, error) {
	args := []string{
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=channels",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1",
		path,
	}

	output, err := s.executor.Execute(ctx, "ffprobe", args...)
	if err != nil {
		return Handle{}, fmt.Errorf("probe audio: %w", err)
	}

	h := Handle{Path: path, Channels: 1}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		switch key {
		case "channels":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				h.Channels = n
			}
		case "duration":
			if sec, err := strconv.ParseFloat(value, 64); err == nil && sec >= 0 {
				h.DurationMs = int64(sec*1000 + 0.5)
			}
		}
	}

	if h.DurationMs == 0 {
		return Handle{}, fmt.Errorf("probe audio: no duration in ffprobe output %q", output)
	}

	return h, nil
}

func (s *implSource) tempPath(pattern string) (string, error) {
	f, err := os.CreateTemp(s.tempDir, pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	f.Close()
	return path, nil
}

// formatSeconds renders a millisecond offset as fractional seconds for ffmpeg.
func formatSeconds(ms int64) string {
	return strconv.FormatFloat(float64(ms)/1000, 'f', 3, 64)
}
