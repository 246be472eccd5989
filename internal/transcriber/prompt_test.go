package transcriber

import (
	"fmt"
	"strings"
	"testing"
)

func TestChunkPromptFirstChunk(t *testing.T) {
	got := chunkPrompt("A team standup", 0, 3, "")
	want := "You are listening to: A team standup. This is part 1 of 3."
	if got != want {
		t.Errorf("chunkPrompt() = %q, want %q", got, want)
	}
}

func TestChunkPromptCarriesTail(t *testing.T) {
	// Previous chunk with more than 50 words: exactly the last 50 must
	// appear verbatim.
	words := make([]string, 80)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	previous := strings.Join(words, " ")
	tail := strings.Join(words[30:], " ")

	got := chunkPrompt("A lecture", 1, 3, previous)

	want := fmt.Sprintf("You are listening to: A lecture. This is part 2 of 3. The previous part ended with: '%s'", tail)
	if got != want {
		t.Errorf("chunkPrompt() = %q, want %q", got, want)
	}
	if strings.Contains(got, "w29 ") {
		t.Error("prompt contains words before the 50-word tail")
	}
}

func TestChunkPromptShortPrevious(t *testing.T) {
	got := chunkPrompt("An interview", 2, 4, "only five words in here")
	want := "You are listening to: An interview. This is part 3 of 4. The previous part ended with: 'only five words in here'"
	if got != want {
		t.Errorf("chunkPrompt() = %q, want %q", got, want)
	}
}

func TestSingleShotPrompt(t *testing.T) {
	got := singleShotPrompt("A voice note")
	want := "You are listening to: A voice note."
	if got != want {
		t.Errorf("singleShotPrompt() = %q, want %q", got, want)
	}
}

func TestTailWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want string
	}{
		{"empty text", "", 50, ""},
		{"fewer words than n", "a b c", 50, "a b c"},
		{"exactly n words", "a b c", 3, "a b c"},
		{"more words than n", "a b c d e", 3, "c d e"},
		{"collapses whitespace", "a  b\n c", 2, "b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tailWords(tt.text, tt.n); got != tt.want {
				t.Errorf("tailWords(%q, %d) = %q, want %q", tt.text, tt.n, got, tt.want)
			}
		})
	}
}
