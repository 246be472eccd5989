package transcriber

import (
	"fmt"
	"strings"
)

// tailWordCount is how many trailing words of the previous chunk's text
// are carried into the next chunk's prompt. The textual hand-off keeps
// sentence completion and proper nouns coherent across chunk boundaries
// even though each remote call is stateless.
const tailWordCount = 50

// chunkPrompt builds the context prompt for one chunk. previousText is
// the full transcript of the preceding chunk, empty for the first.
func chunkPrompt(description string, index, total int, previousText string) string {
	prompt := fmt.Sprintf("You are listening to: %s. This is part %d of %d.", description, index+1, total)
	if tail := tailWords(previousText, tailWordCount); tail != "" {
		prompt += fmt.Sprintf(" The previous part ended with: '%s'", tail)
	}
	return prompt
}

// singleShotPrompt builds the context prompt for a whole-file call.
func singleShotPrompt(description string) string {
	return fmt.Sprintf("You are listening to: %s.", description)
}

// tailWords returns the last n space-separated words of text.
func tailWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = words[len(words)-n:]
	}
	return strings.Join(words, " ")
}
