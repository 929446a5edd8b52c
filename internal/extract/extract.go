// Package extract turns HTML sources into the text textstat analyzes.
//
// By default the main article is located with go-readability so navigation,
// sidebars and footers do not skew word frequencies. A CSS selector or the
// include-all mode bypass that filtering. Output is plain text, or Markdown
// when Options.Markdown is set.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// blockElements get a line break after them so adjacent blocks never fuse
// into a single word.
const blockElements = "address, article, aside, blockquote, br, dd, div, dl, dt, " +
	"figcaption, footer, h1, h2, h3, h4, h5, h6, header, hr, li, main, nav, ol, p, " +
	"pre, section, table, td, th, tr, ul"

// Options controls how HTML is reduced to text.
type Options struct {
	Selector   string   // CSS selector; overrides IncludeAll and readability
	IncludeAll bool     // keep the whole <body> instead of the main article
	Markdown   bool     // emit Markdown instead of plain text
	BaseURL    *url.URL // context for readability; may be nil
}

// ToText extracts text from an HTML document according to opts.
// Blank input yields an empty string and no error.
func ToText(content io.Reader, opts Options) (string, error) {
	raw, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML content: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", nil
	}

	var html string
	switch {
	case opts.Selector != "":
		html, err = selectHTML(raw, opts.Selector)
	case opts.IncludeAll:
		html, err = bodyHTML(raw)
	default:
		html, err = mainContentHTML(raw, opts.BaseURL)
	}
	if err != nil {
		return "", err
	}

	slog.Debug("HTML extracted", "inputBytes", len(raw), "selectedBytes", len(html), "selector", opts.Selector, "includeAll", opts.IncludeAll)

	if opts.Markdown {
		return convertToMarkdown(html)
	}
	return convertToText(html)
}

// mainContentHTML uses go-readability to extract the main article content
func mainContentHTML(raw []byte, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(bytes.NewReader(raw), baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}
	return article.Content, nil
}

// selectHTML returns the outer HTML of every element matching selector
func selectHTML(raw []byte, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// invalid selectors match nothing
	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var parts []string
	selection.Each(func(_ int, s *goquery.Selection) {
		if html, err := goquery.OuterHtml(s); err == nil {
			parts = append(parts, html)
		}
	})
	if len(parts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}
	return strings.Join(parts, "\n"), nil
}

// bodyHTML returns the document body without scripts and styles
func bodyHTML(raw []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript, template").Remove()

	html, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("failed to render HTML body: %w", err)
	}
	return html, nil
}

// convertToText strips markup, keeping one line per block element
func convertToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript, template").Remove()
	doc.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})

	return tidy(doc.Text()), nil
}

// convertToMarkdown converts HTML string to clean Markdown
func convertToMarkdown(html string) (string, error) {
	converter := md.NewConverter("", true, nil)

	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	cleaned := strings.TrimSpace(markdown)
	// remove extra newlines
	cleaned = strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")
	return cleaned, nil
}

// tidy trims every line and collapses runs of blank lines into one
func tidy(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
