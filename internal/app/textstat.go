// Package app contains the core application logic for the textstat CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/chriscorrea/textstat/internal/counter"
	"github.com/chriscorrea/textstat/internal/extract"
	"github.com/chriscorrea/textstat/internal/fetch"
	"github.com/chriscorrea/textstat/internal/spinner"
)

// Config holds all configuration options for the textstat application.
type Config struct {
	Source       string       // URL, file path, or "-" for stdin
	ForceHTML    bool         // treat the source as HTML even without an HTML content type
	Selector     string       // CSS selector for HTML sources
	IncludeAll   bool         // analyze the whole HTML body without readability filtering
	Markdown     bool         // keep Markdown structure when converting HTML
	Analysis     Options      // statistics to include in the report
	OutputFormat OutputFormat // output format (json/text/markdown)
	Quiet        bool         // suppress progress output
	Debug        bool
}

// Run executes the main textstat application logic with the given configuration.
//
// Processing Pipeline:
// 1. Read the source as text (extracting HTML when needed)
// 2. Analyze the text into a Report
// 3. Render the report in the configured format
//
// ctx allows for cancellation of remote fetches.
func Run(ctx context.Context, cfg Config) (string, error) {
	report, err := AnalyzeSource(ctx, cfg)
	if err != nil {
		return "", err
	}
	return Render(report, cfg.OutputFormat)
}

// AnalyzeSource reads cfg.Source and builds its Report.
func AnalyzeSource(ctx context.Context, cfg Config) (Report, error) {
	text, err := ReadSource(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	return AnalyzeText(text, cfg.Analysis)
}

// Count reads cfg.Source and counts it with a single counting method.
func Count(ctx context.Context, cfg Config, method counter.CountingMethod) (int, error) {
	text, err := ReadSource(ctx, cfg)
	if err != nil {
		return 0, err
	}

	var c counter.Counter
	if method == counter.Tokens {
		c, err = counter.NewTokenCounter(cfg.Analysis.Encoding)
	} else {
		c, err = counter.NewCounter(method)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create counter: %w", err)
	}

	n := c.Count(text)
	slog.Debug("Source counted", "source", cfg.Source, "method", c.Name(), "count", n)
	return n, nil
}

// ReadSource returns the text of cfg.Source. HTML sources are reduced to
// their text first. Decoding failures wrap fetch.ErrInvalidUTF8.
func ReadSource(ctx context.Context, cfg Config) (string, error) {
	source := cfg.Source
	if source == "" {
		source = "-"
	}

	var text string
	read := func(progress spinner.Progress) error {
		var err error
		text, err = readSource(ctx, source, cfg, progress)
		return err
	}

	var err error
	if fetch.IsURL(source) && !cfg.Quiet {
		err = spinner.While(ctx, os.Stderr, "Fetching "+source+"...", read)
	} else {
		err = read(func(string) {})
	}
	if err != nil {
		return "", fmt.Errorf("failed to read source %q: %w", source, err)
	}
	return text, nil
}

func readSource(ctx context.Context, source string, cfg Config, progress spinner.Progress) (string, error) {
	content, err := fetch.GetContent(ctx, source)
	if err != nil {
		return "", fmt.Errorf("failed to fetch content: %w", err)
	}
	defer content.Close()

	if !content.HTML && !cfg.ForceHTML {
		return fetch.ReadText(content)
	}

	progress("Extracting text from " + source + "...")

	// parse source URL for readability context (if it's a URL)
	var baseURL *url.URL
	if fetch.IsURL(source) {
		baseURL, _ = url.Parse(source) // ignore parse errors, will use nil
	}

	text, err := extract.ToText(content, extract.Options{
		Selector:   cfg.Selector,
		IncludeAll: cfg.IncludeAll,
		Markdown:   cfg.Markdown,
		BaseURL:    baseURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}
	return text, nil
}
