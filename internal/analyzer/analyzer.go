// Package analyzer computes word statistics over a single block of text.
//
// A TextAnalyzer is built once from a string and never changes afterwards.
// It reports the number of characters (Unicode code points), a
// case-insensitive word-frequency table and the most frequent words.
//
// Usage Example:
//
//	a := analyzer.New("the quick brown fox jumps over the lazy dog the")
//	top, err := a.MostCommon(3)
//	// top[0] == WordCount{Word: "the", Count: 3}
//
// All methods are safe for concurrent use; nothing is mutated after New.
package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/chriscorrea/textstat/internal/counter"
	"github.com/chriscorrea/textstat/internal/tokenize"
)

// previewRunes caps how much of the text String shows.
const previewRunes = 50

// ErrInvalidArgument is returned when a ranking is requested with n <= 0.
var ErrInvalidArgument = errors.New("invalid argument")

// Word is a lowercased, punctuation-stripped token used as a counting key.
type Word string

// WordCount is one ranked entry. It encodes to JSON as ["word", count].
type WordCount struct {
	Word  Word
	Count int
}

// MarshalJSON encodes the entry as a two element array.
func (wc WordCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{string(wc.Word), wc.Count})
}

// UnmarshalJSON decodes a ["word", count] pair.
func (wc *WordCount) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("word count entry has %d elements, want 2", len(pair))
	}
	var word string
	if err := json.Unmarshal(pair[0], &word); err != nil {
		return fmt.Errorf("word count entry word: %w", err)
	}
	if err := json.Unmarshal(pair[1], &wc.Count); err != nil {
		return fmt.Errorf("word count entry count: %w", err)
	}
	wc.Word = Word(word)
	return nil
}

// TextAnalyzer holds an immutable text and the statistics derived from it.
type TextAnalyzer struct {
	text      string
	charCount int
	tokens    int
	// freqs lists every distinct word in order of first occurrence
	freqs []WordCount
}

// New analyzes text. Any string is accepted, including the empty string.
func New(text string) *TextAnalyzer {
	words := tokenize.Words(text)

	index := make(map[Word]int, len(words))
	var freqs []WordCount
	for _, w := range words {
		word := Word(w)
		if i, ok := index[word]; ok {
			freqs[i].Count++
			continue
		}
		index[word] = len(freqs)
		freqs = append(freqs, WordCount{Word: word, Count: 1})
	}

	a := &TextAnalyzer{
		text:      text,
		charCount: counter.NewCharCounter().Count(text),
		tokens:    len(words),
		freqs:     freqs,
	}

	slog.Debug("Text analyzed", "textLength", len(text), "charCount", a.charCount, "tokenCount", a.tokens, "distinctWords", len(freqs))
	return a
}

// CharCount returns the number of Unicode code points in the text.
func (a *TextAnalyzer) CharCount() int {
	return a.charCount
}

// WordCount returns the frequency of every word. The map is a fresh copy;
// callers may modify it freely. Iteration order carries no meaning.
func (a *TextAnalyzer) WordCount() map[Word]int {
	counts := make(map[Word]int, len(a.freqs))
	for _, wc := range a.freqs {
		counts[wc.Word] = wc.Count
	}
	return counts
}

// TokenCount returns the total number of tokens, which equals the sum of all
// WordCount values.
func (a *TextAnalyzer) TokenCount() int {
	return a.tokens
}

// MostCommon returns up to n words ordered by descending count. Words with
// equal counts keep the order in which they first appear in the text.
// It fails with ErrInvalidArgument when n <= 0.
func (a *TextAnalyzer) MostCommon(n int) ([]WordCount, error) {
	return a.MostCommonFunc(n, nil)
}

// MostCommonFunc ranks like MostCommon but only considers words for which keep
// returns true. A nil keep considers every word.
func (a *TextAnalyzer) MostCommonFunc(n int, keep func(Word) bool) ([]WordCount, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be greater than 0 (got %d)", ErrInvalidArgument, n)
	}

	ranked := make([]WordCount, 0, len(a.freqs))
	for _, wc := range a.freqs {
		if keep == nil || keep(wc.Word) {
			ranked = append(ranked, wc)
		}
	}

	// stable sort preserves first-occurrence order among ties
	slices.SortStableFunc(ranked, func(x, y WordCount) int {
		return y.Count - x.Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Text returns the original text exactly as given to New.
func (a *TextAnalyzer) Text() string {
	return a.text
}

// String returns a debug representation with a preview of the text.
func (a *TextAnalyzer) String() string {
	preview := a.text
	suffix := ""
	if a.charCount > previewRunes {
		preview = string([]rune(a.text)[:previewRunes])
		suffix = "..."
	}
	return fmt.Sprintf("TextAnalyzer(text=%q%s)", preview, suffix)
}
