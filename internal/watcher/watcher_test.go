package watcher

import (
	"testing"
)

func TestIsAudioFile(t *testing.T) {
	w := &implWatcher{}

	tests := []struct {
		path string
		want bool
	}{
		{"/data/input/meeting.mp3", true},
		{"/data/input/meeting.MP3", true},
		{"/data/input/recording.m4a", true},
		{"/data/input/video.mp4", true},
		{"/data/input/raw.wav", true},
		{"/data/input/browser.webm", true},
		{"/data/input/notes.txt", false},
		{"/data/input/archive.zip", false},
		{"/data/input/noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := w.isAudioFile(tt.path); got != tt.want {
				t.Errorf("isAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
