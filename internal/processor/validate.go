package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// supportedFormats lists the upload extensions the transcription API accepts.
var supportedFormats = []string{".mp3", ".mp4", ".mpeg", ".mpga", ".m4a", ".wav", ".webm"}

// validateFile checks the upload against the size cap and the extension
// allow-list before any decoding happens.
func (p *implProcessor) validateFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	supported := false
	for _, format := range supportedFormats {
		if ext == format {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported file format: %s", ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	sizeMB := float64(info.Size()) / (1024 * 1024)
	if limit := float64(p.cfg.Transcription.MaxFileSizeMB); sizeMB > limit {
		return fmt.Errorf("file size (%.1fMB) exceeds limit of %.0fMB", sizeMB, limit)
	}

	return nil
}
