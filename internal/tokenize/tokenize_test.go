package tokenize

import (
	"slices"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"empty string", "", []string{}},
		{"whitespace only", " \t\n ", []string{}},
		{"punctuation only", "!?.,;:", []string{}},
		{"single word", "hello", []string{"hello"}},
		{"case folding", "Hello HELLO hello", []string{"hello", "hello", "hello"}},
		{"surrounding punctuation", "Hello, world! Hello.", []string{"hello", "world", "hello"}},
		{"punctuation between words", "one,two;three", []string{"one", "two", "three"}},
		{"internal apostrophe kept", "Don't stop", []string{"don't", "stop"}},
		{"curly apostrophe kept", "it’s fine", []string{"it’s", "fine"}},
		{"internal hyphen kept", "a well-known fact", []string{"a", "well-known", "fact"}},
		{"edge apostrophes stripped", "'quoted' rock 'n' roll", []string{"quoted", "rock", "n", "roll"}},
		{"dangling hyphens stripped", "-- dash- -lead", []string{"dash", "lead"}},
		{"double hyphen splits", "a--b", []string{"a", "b"}},
		{"digits are words", "route 66 and 7th", []string{"route", "66", "and", "7th"}},
		{"non-latin script", "hello 世界", []string{"hello", "世界"}},
		{"accented words", "Café NAÏVE résumé", []string{"café", "naïve", "résumé"}},
		{"multiline", "first line\n  second line", []string{"first", "line", "second", "line"}},
		{"symbols split", "a+b=c", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Words(tt.text)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("Words(%q) = %q, want %q", tt.text, result, tt.expected)
			}
			if result == nil {
				t.Errorf("Words(%q) returned nil slice", tt.text)
			}
		})
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"", 0},
		{"hello world hello", 3},
		{"the quick brown fox jumps over the lazy dog the", 10},
		{"  ...  ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if result := Count(tt.text); result != tt.expected {
				t.Errorf("Count(%q) = %d, want %d", tt.text, result, tt.expected)
			}
		})
	}
}
