// Package stopword identifies common English function words so keyword
// rankings can skip them.
//
// The built-in list matches exact words only, so "willing" survives although
// "will" is a stopword. Extra words supplied by the caller match by snowball
// stem, so excluding "chapters" also excludes "chapter".
package stopword

import (
	"log/slog"
	"strings"

	"github.com/kljensen/snowball"
)

// english is the built-in stopword list
// TODO: load additional languages once the tokenizer grows locale support
var english = []string{
	// --- Articles & Determiners ---
	"a", "an", "the", "this", "that", "these", "those", "each", "every",
	"some", "any", "all", "both", "either", "neither", "no", "such",

	// --- Pronouns ---
	"i", "me", "my", "mine", "myself", "we", "us", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves", "he", "him", "his",
	"himself", "she", "her", "hers", "herself", "it", "its", "itself", "they",
	"them", "their", "theirs", "themselves", "what", "which", "who", "whom",
	"whose",

	// --- Auxiliaries ---
	"am", "is", "are", "was", "were", "be", "been", "being", "have", "has",
	"had", "having", "do", "does", "did", "doing", "will", "would", "shall",
	"should", "can", "could", "may", "might", "must",

	// --- Prepositions & Conjunctions ---
	"and", "but", "or", "nor", "if", "then", "else", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under", "so",
	"than", "too", "very", "not", "only", "own", "same", "just", "there",
	"here", "when", "where", "why", "how", "again", "further", "once", "more",
	"most", "other", "few",

	// --- Contractions ---
	"don't", "isn't", "aren't", "wasn't", "weren't", "it's", "i'm", "you're",
	"we're", "they're", "can't", "won't", "didn't", "doesn't",
}

// Filter reports whether words are stopwords.
type Filter struct {
	words map[string]struct{} // built-in list, exact match
	stems map[string]struct{} // caller extras, stem match
}

// NewFilter creates a Filter from the built-in English list plus extra words.
// Extra words are lowercased and trimmed; blank entries are ignored.
func NewFilter(extra ...string) *Filter {
	f := &Filter{
		words: make(map[string]struct{}, len(english)),
		stems: make(map[string]struct{}, len(extra)),
	}
	for _, w := range english {
		f.words[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		f.stems[stem(w)] = struct{}{}
	}

	slog.Debug("Stopword filter created", "builtin", len(english), "extra", len(extra), "extraStems", len(f.stems))
	return f
}

// IsStopword reports whether word (already lowercased) is a stopword.
func (f *Filter) IsStopword(word string) bool {
	if word == "" {
		return false
	}
	word = strings.ReplaceAll(word, "’", "'")
	if _, ok := f.words[word]; ok {
		return true
	}
	if len(f.stems) == 0 {
		return false
	}
	_, ok := f.stems[stem(word)]
	return ok
}

// stem reduces a word with the English snowball stemmer.
func stem(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		// if stemming fails, use the original word
		return word
	}
	return stemmed
}
