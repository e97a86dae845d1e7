// Package report renders the outcome of a manifest run.
//
// A report has one row per manifest entry: its category, query, outcome
// and either the destination path or the failure reason. Three formats
// are supported:
//
//	w := report.NewWriter(report.FormatTable)    // terminal
//	w := report.NewWriter(report.FormatMarkdown) // pasteable
//	w := report.NewWriter(report.FormatCSV)      // scripts
//
//	fmt.Println(w.Render(outcomes))
//	fmt.Println(w.RenderSummary(summary))
package report
