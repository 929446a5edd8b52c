package counter

import (
	"log/slog"
	"unicode/utf8"
)

// CharCounter counts Unicode code points, so "世界" is two characters rather
// than six bytes.
type CharCounter struct{}

// NewCharCounter creates a new CharCounter instance.
func NewCharCounter() *CharCounter {
	return &CharCounter{}
}

// Count returns the number of runes in text. Invalid UTF-8 bytes count as one
// rune each.
func (cc *CharCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	charCount := utf8.RuneCountInString(text)

	slog.Debug("Character count calculated", "textLength", len(text), "charCount", charCount)
	return charCount
}

// Name returns the name of this counting method for logging and debugging.
func (cc *CharCounter) Name() string {
	return "characters"
}
