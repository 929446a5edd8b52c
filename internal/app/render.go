package app

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/chriscorrea/textstat/internal/analyzer"
)

// OutputFormat defines the output format for results
type OutputFormat int

const (
	// JSON output format (default)
	JSON OutputFormat = iota
	// plain text tables
	Text
	// Markdown tables
	Markdown
)

// String returns the string representation of the output
func (f OutputFormat) String() string {
	switch f {
	case JSON:
		return "JSON"
	case Text:
		return "Text"
	case Markdown:
		return "Markdown"
	default:
		return "Unknown"
	}
}

// ParseOutputFormat maps a format name (json, text, markdown or md) onto an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "text", "txt":
		return Text, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return JSON, fmt.Errorf("unknown output format %q", name)
	}
}

// Render formats a report. Output always ends with a newline.
func Render(r Report, format OutputFormat) (string, error) {
	switch format {
	case JSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode report: %w", err)
		}
		return string(data) + "\n", nil
	case Text:
		return renderTables(r, false), nil
	case Markdown:
		return renderTables(r, true), nil
	default:
		return "", fmt.Errorf("unsupported output format %v", format)
	}
}

func renderTables(r Report, markdown bool) string {
	summary := [][]string{
		{"Characters", strconv.Itoa(r.CharCount)},
		{"Words", strconv.Itoa(r.TotalWords())},
		{"Distinct words", strconv.Itoa(len(r.WordCount))},
	}
	if r.TokenCount != nil {
		summary = append(summary, []string{"Tokens", strconv.Itoa(*r.TokenCount)})
	}

	var b strings.Builder
	if markdown {
		b.WriteString("## Summary\n\n")
	}
	b.WriteString(renderTable([]string{"Metric", "Value"}, summary, markdown))
	b.WriteString("\n\n")

	if markdown {
		b.WriteString("## Top words\n\n")
	}
	b.WriteString(renderTable([]string{"#", "Word", "Count"}, rankRows(r.TopWords), markdown))
	b.WriteString("\n")

	if r.Keywords != nil {
		b.WriteString("\n")
		if markdown {
			b.WriteString("## Top keywords\n\n")
		}
		b.WriteString(renderTable([]string{"#", "Keyword", "Count"}, rankRows(*r.Keywords), markdown))
		b.WriteString("\n")
	}
	return b.String()
}

func rankRows(entries []analyzer.WordCount) [][]string {
	rows := make([][]string, 0, len(entries))
	for i, wc := range entries {
		rows = append(rows, []string{strconv.Itoa(i + 1), string(wc.Word), strconv.Itoa(wc.Count)})
	}
	return rows
}

// renderTable lays out rows under headers; the last column is right-aligned.
func renderTable(headers []string, rows [][]string, markdown bool) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i == columns-1 {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	if markdown {
		return tw.RenderMarkdown()
	}
	return tw.Render()
}
