package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/handiism/modrinth-downloader/internal/download"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Format represents supported report formats.
//
//   - Table: box-drawn table for terminals
//   - Markdown: pipe table for issues and wikis
//   - CSV: one row per item for spreadsheets and scripts
type Format int

const (
	// FormatTable renders a rounded box table.
	FormatTable Format = iota

	// FormatMarkdown renders a GitHub-flavoured markdown table.
	FormatMarkdown

	// FormatCSV renders comma separated values with a header row.
	FormatCSV
)

// ParseFormat maps a settings value ("table", "markdown", "csv") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "csv":
		return FormatCSV, nil
	default:
		return FormatTable, fmt.Errorf("unknown report format %q", s)
	}
}

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatCSV:
		return ".csv"
	default:
		return ".txt"
	}
}

// Writer renders run outcomes as a report.
//
// Example:
//
//	w := report.NewWriter(report.FormatMarkdown)
//	content := w.Render(outcomes)
//	os.WriteFile("run.md", []byte(content), 0644)
//
//	// Result:
//	// | # | Category | Query  | Outcome    | Detail                 |
//	// | 1 | mod      | sodium | downloaded | mods/sodium-0.6.0.jar  |
type Writer struct {
	format Format
}

// NewWriter creates a new Writer for the given format.
func NewWriter(format Format) *Writer {
	return &Writer{format: format}
}

// Render returns one row per outcome, in input order.
func (w *Writer) Render(outcomes []download.Outcome) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#", "Category", "Query", "Outcome", "Detail"})
	for i, o := range outcomes {
		tw.AppendRow(table.Row{i + 1, o.Item.Category.String(), o.Item.Query, o.Kind.String(), detail(o)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return w.render(tw)
}

// RenderSummary returns the end-of-run tally as a two-column table.
func (w *Writer) RenderSummary(s download.Summary) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Result", "Items"})
	tw.AppendRow(table.Row{"Downloaded", s.Succeeded})
	tw.AppendRow(table.Row{"Skipped", s.Skipped})
	if s.Planned > 0 {
		tw.AppendRow(table.Row{"Planned", s.Planned})
	}
	tw.AppendRow(table.Row{"Failed", s.Failed})
	tw.AppendFooter(table.Row{"Total", s.Total()})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	return w.render(tw)
}

func (w *Writer) render(tw table.Writer) string {
	switch w.format {
	case FormatMarkdown:
		return tw.RenderMarkdown()
	case FormatCSV:
		return tw.RenderCSV()
	default:
		tw.SetStyle(table.StyleRounded)
		return tw.Render()
	}
}

// detail describes where the file went, or why it did not.
func detail(o download.Outcome) string {
	if o.Kind.Failed() {
		if o.Err == nil {
			return ""
		}
		return o.Err.Error()
	}
	if o.Resolution.IsFallback {
		return o.Path + " (fallback " + o.Resolution.FallbackLabel + ")"
	}
	return o.Path
}

// Counts formats a summary on a single line, e.g. for log output.
func Counts(s download.Summary) string {
	parts := []string{
		strconv.Itoa(s.Succeeded) + " downloaded",
		strconv.Itoa(s.Skipped) + " skipped",
	}
	if s.Planned > 0 {
		parts = append(parts, strconv.Itoa(s.Planned)+" planned")
	}
	parts = append(parts, strconv.Itoa(s.Failed)+" failed")
	return strings.Join(parts, ", ")
}
