package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the command tree in an isolated HOME and working directory
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}
	return path
}

func TestRootCommand_JSON(t *testing.T) {
	input := writeInput(t, "Hello, world! Hello.")

	out, err := execute(t, "-q", input)
	if err != nil {
		t.Fatalf("textstat error = %v", err)
	}

	var report struct {
		CharCount int              `json:"char_count"`
		WordCount map[string]int   `json:"word_count"`
		TopWords  [][2]any `json:"top_10_words"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if report.CharCount != 20 {
		t.Errorf("char_count = %d, want 20", report.CharCount)
	}
	if report.WordCount["hello"] != 2 || report.WordCount["world"] != 1 {
		t.Errorf("word_count = %v, want hello:2 world:1", report.WordCount)
	}
	if len(report.TopWords) != 2 || report.TopWords[0][0] != "hello" {
		t.Errorf("top_10_words = %v, want hello first", report.TopWords)
	}
}

func TestRootCommand_TopAndFormat(t *testing.T) {
	input := writeInput(t, "the quick brown fox jumps over the lazy dog the")

	out, err := execute(t, "--text", "--top", "2", input)
	if err != nil {
		t.Fatalf("textstat error = %v", err)
	}
	if !strings.Contains(out, "the") || !strings.Contains(out, "quick") {
		t.Errorf("text output missing top words:\n%s", out)
	}
	if strings.Contains(out, "brown") {
		t.Errorf("text output should stop after 2 words:\n%s", out)
	}
}

func TestRootCommand_ConfigFile(t *testing.T) {
	input := writeInput(t, "alpha beta beta gamma gamma gamma")
	configPath := filepath.Join(t.TempDir(), "textstat.toml")
	if err := os.WriteFile(configPath, []byte("[analysis]\ntop = 1\n[output]\nformat = \"markdown\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, err := execute(t, "--config", configPath, input)
	if err != nil {
		t.Fatalf("textstat error = %v", err)
	}
	if !strings.Contains(out, "## Top words") || !strings.Contains(out, "gamma") {
		t.Errorf("markdown output missing top word:\n%s", out)
	}
	if strings.Contains(out, "beta") {
		t.Errorf("config top = 1 should produce a single ranked row:\n%s", out)
	}
}

func TestRootCommand_Errors(t *testing.T) {
	input := writeInput(t, "hello")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"zero top", []string{"--top", "0", input}, "--top must be greater than 0"},
		{"missing config", []string{"--config", "/nonexistent/textstat.toml", input}, "not found"},
		{"missing source", []string{"/nonexistent/input.txt"}, "does not exist"},
		{"conflicting formats", []string{"--json", "--text", input}, "none of the others"},
		{"too many sources", []string{input, input}, "accepts at most 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestCountCommand(t *testing.T) {
	input := writeInput(t, "hello 世界, hello")

	tests := []struct {
		by       string
		expected string
	}{
		{"characters", "15"},
		{"words", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.by, func(t *testing.T) {
			out, err := execute(t, "count", "--by", tt.by, input)
			if err != nil {
				t.Fatalf("textstat count error = %v", err)
			}
			if strings.TrimSpace(out) != tt.expected {
				t.Errorf("textstat count --by %s = %q, want %s", tt.by, strings.TrimSpace(out), tt.expected)
			}
		})
	}

	if _, err := execute(t, "count", "--by", "bytes", input); err == nil {
		t.Error("textstat count --by bytes expected error, got nil")
	}
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := execute(t, "config", "init", path)
	if err != nil {
		t.Fatalf("textstat config init error = %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output %q should mention %s", out, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("sample config not written: %v", err)
	}
}
