package counter

import (
	"log/slog"

	"github.com/chriscorrea/textstat/internal/tokenize"
)

// WordCounter counts word tokens using the same rule the analyzer uses for
// frequencies, so its total always equals the sum of a word-frequency table.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() *WordCounter {
	return &WordCounter{}
}

// Count returns the number of word tokens in text. Runs of punctuation or
// whitespace never produce a word.
func (wc *WordCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	wordCount := tokenize.Count(text)

	slog.Debug("Word count calculated", "textLength", len(text), "wordCount", wordCount)
	return wordCount
}

// Name returns the name of this counting method for logging and debugging.
func (wc *WordCounter) Name() string {
	return "words"
}
