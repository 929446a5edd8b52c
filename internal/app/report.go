package app

import (
	"fmt"
	"log/slog"

	"github.com/chriscorrea/textstat/internal/analyzer"
	"github.com/chriscorrea/textstat/internal/counter"
	"github.com/chriscorrea/textstat/internal/stopword"
)

// DefaultTop is the length of the top words list when none is configured.
const DefaultTop = 10

// Options controls which statistics a Report carries.
type Options struct {
	Top         int      // entries in the top words list (DefaultTop when 0)
	Keywords    bool     // add a ranking with stopwords removed
	Stopwords   []string // extra stopwords for the keyword ranking
	CountTokens bool     // add an LLM token count
	Encoding    string   // tiktoken encoding for CountTokens
}

// Report is the assembled result of analyzing one text. The JSON keys
// char_count, word_count and top_10_words are fixed; the list keeps its key
// even when Options.Top differs from 10. Keywords is nil unless requested and
// encodes as [] when every word was filtered out.
type Report struct {
	CharCount  int                   `json:"char_count"`
	WordCount  map[analyzer.Word]int `json:"word_count"`
	TopWords   []analyzer.WordCount  `json:"top_10_words"`
	TokenCount *int                  `json:"token_count,omitempty"`
	Keywords   *[]analyzer.WordCount `json:"top_keywords,omitempty"`
}

// TotalWords returns the number of word tokens behind the report.
func (r Report) TotalWords() int {
	total := 0
	for _, c := range r.WordCount {
		total += c
	}
	return total
}

// AnalyzeText builds a Report for text. It only fails for a negative Top or
// when the token encoding cannot be loaded.
func AnalyzeText(text string, opts Options) (Report, error) {
	top := opts.Top
	if top == 0 {
		top = DefaultTop
	}

	a := analyzer.New(text)
	slog.Debug("Assembling report", "analyzer", a.String(), "top", top)

	topWords, err := a.MostCommon(top)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		CharCount: a.CharCount(),
		WordCount: a.WordCount(),
		TopWords:  topWords,
	}

	if opts.Keywords {
		filter := stopword.NewFilter(opts.Stopwords...)
		keywords, err := a.MostCommonFunc(top, func(w analyzer.Word) bool {
			return !filter.IsStopword(string(w))
		})
		if err != nil {
			return Report{}, err
		}
		report.Keywords = &keywords
	}

	if opts.CountTokens {
		tc, err := counter.NewTokenCounter(opts.Encoding)
		if err != nil {
			return Report{}, fmt.Errorf("failed to count tokens: %w", err)
		}
		tokens := tc.Count(text)
		report.TokenCount = &tokens
	}

	return report, nil
}
