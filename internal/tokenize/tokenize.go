// Package tokenize splits text into normalized word tokens.
//
// A token is a maximal run of letters, numbers and combining marks. An
// apostrophe or hyphen is kept inside a token only when it sits between two
// word runes, so "don't" and "well-known" stay whole while "rock 'n' roll"
// and "-- dash" lose their punctuation. Every other rune (whitespace,
// punctuation, symbols) ends the current token.
//
// Tokens are lowercased with full Unicode case mapping, so "Hello", "HELLO"
// and "hello" all produce "hello".
package tokenize

import (
	"log/slog"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words returns the lowercased tokens of text in source order.
// An empty or punctuation-only text yields an empty, non-nil slice.
func Words(text string) []string {
	words := []string{}
	if text == "" {
		return words
	}

	// a Caser keeps state between calls and must not be shared across goroutines
	lower := cases.Lower(language.Und)

	runes := []rune(text)
	start := -1
	for i, r := range runes {
		switch {
		case isWordRune(r):
			if start < 0 {
				start = i
			}
		case isJoiner(r) && start >= 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			// internal apostrophe or hyphen; token continues
		default:
			if start >= 0 {
				words = append(words, lower.String(string(runes[start:i])))
				start = -1
			}
		}
	}
	if start >= 0 {
		words = append(words, lower.String(string(runes[start:])))
	}

	slog.Debug("Text tokenized", "textLength", len(text), "tokenCount", len(words))
	return words
}

// Count returns the number of tokens Words would produce for text.
func Count(text string) int {
	return len(Words(text))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

func isJoiner(r rune) bool {
	switch r {
	case '\'', '’', '-':
		return true
	}
	return false
}
