package app

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/chriscorrea/textstat/internal/analyzer"
	"github.com/chriscorrea/textstat/internal/config"
)

func sampleReport() Report {
	tokens := 12
	return Report{
		CharCount:  47,
		WordCount:  map[analyzer.Word]int{"the": 3, "fox": 1},
		TopWords:   []analyzer.WordCount{{Word: "the", Count: 3}, {Word: "fox", Count: 1}},
		TokenCount: &tokens,
		Keywords:   &[]analyzer.WordCount{{Word: "fox", Count: 1}},
	}
}

func TestRender_JSON(t *testing.T) {
	out, err := Render(sampleReport(), JSON)
	if err != nil {
		t.Fatalf("Render(JSON) error = %v", err)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("Render(JSON) should end with a newline")
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Render(JSON) produced invalid JSON: %v\n%s", err, out)
	}
	for _, key := range []string{"char_count", "word_count", "top_10_words", "token_count", "top_keywords"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Render(JSON) missing key %q", key)
		}
	}

	var top []analyzer.WordCount
	if err := json.Unmarshal(decoded["top_10_words"], &top); err != nil {
		t.Fatalf("top_10_words is not a list of pairs: %v", err)
	}
	if len(top) != 2 || top[0].Word != "the" || top[0].Count != 3 {
		t.Errorf("top_10_words = %v, want [[the 3] [fox 1]]", top)
	}
}

func TestRender_Tables(t *testing.T) {
	tests := []struct {
		name     string
		format   OutputFormat
		contains []string
	}{
		{
			name:     "text",
			format:   Text,
			contains: []string{"Characters", "47", "Distinct words", "Tokens", "the", "fox", "Keyword"},
		},
		{
			name:     "markdown",
			format:   Markdown,
			contains: []string{"## Summary", "## Top words", "## Top keywords", "| Characters", "| the"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(sampleReport(), tt.format)
			if err != nil {
				t.Fatalf("Render(%v) error = %v", tt.format, err)
			}
			for _, expected := range tt.contains {
				if !strings.Contains(out, expected) {
					t.Errorf("Render(%v) should contain %q.\nOutput:\n%s", tt.format, expected, out)
				}
			}
		})
	}
}

func TestRender_OmitsAbsentSections(t *testing.T) {
	report := sampleReport()
	report.TokenCount = nil
	report.Keywords = nil

	out, err := Render(report, Text)
	if err != nil {
		t.Fatalf("Render(Text) error = %v", err)
	}
	if strings.Contains(out, "Tokens") || strings.Contains(out, "Keyword") {
		t.Errorf("Render(Text) should omit token and keyword sections.\nOutput:\n%s", out)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if _, err := Render(sampleReport(), OutputFormat(99)); err == nil {
		t.Error("Render(99) expected error, got nil")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input       string
		expected    OutputFormat
		expectError bool
	}{
		{"json", JSON, false},
		{"Text", Text, false},
		{"md", Markdown, false},
		{" markdown ", Markdown, false},
		{"yaml", JSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseOutputFormat(tt.input)
			if (err != nil) != tt.expectError {
				t.Fatalf("ParseOutputFormat(%q) error = %v, expectError %v", tt.input, err, tt.expectError)
			}
			if result != tt.expected {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseOutputFormat_ConfigFormats(t *testing.T) {
	for _, name := range config.Formats {
		if _, err := ParseOutputFormat(name); err != nil {
			t.Errorf("ParseOutputFormat(%q) error = %v, config accepts it", name, err)
		}
	}
}

func TestOutputFormatString(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		expected string
	}{
		{JSON, "JSON"},
		{Text, "Text"},
		{Markdown, "Markdown"},
		{OutputFormat(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if result := tt.format.String(); result != tt.expected {
				t.Errorf("OutputFormat(%d).String() = %q, want %q", int(tt.format), result, tt.expected)
			}
		})
	}
}
