package report

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/handiism/modrinth-downloader/internal/download"
	"github.com/handiism/modrinth-downloader/internal/model"
)

func createTestOutcomes() []download.Outcome {
	return []download.Outcome{
		{
			Item: model.RequestItem{Query: "sodium", Category: model.CategoryMod},
			Kind: download.OutcomeSucceeded,
			Path: "mods/sodium-0.6.0.jar",
		},
		{
			Item: model.RequestItem{Query: "Lithium", Category: model.CategoryMod},
			Kind: download.OutcomeSucceeded,
			Path: "mods/[OD_1.21]lithium.jar",
			Resolution: model.Resolution{
				IsFallback:    true,
				FallbackLabel: "1.21",
			},
		},
		{
			Item: model.RequestItem{Query: "Nope, Not Here", Category: model.CategoryPlugin},
			Kind: download.OutcomeLookupFailure,
			Err:  fmt.Errorf("%w: project not found", download.ErrLookup),
		},
	}
}

func TestWriter_Table(t *testing.T) {
	content := NewWriter(FormatTable).Render(createTestOutcomes())

	for _, want := range []string{"sodium", "mods/sodium-0.6.0.jar", "fallback 1.21", "lookup failure", "project not found"} {
		if !strings.Contains(content, want) {
			t.Errorf("table should contain %q:\n%s", want, content)
		}
	}
	if !strings.Contains(content, "╭") {
		t.Error("table should use the rounded style")
	}
}

func TestWriter_Markdown(t *testing.T) {
	content := NewWriter(FormatMarkdown).Render(createTestOutcomes())

	if !strings.HasPrefix(content, "|") {
		t.Errorf("markdown should start with a pipe:\n%s", content)
	}
	if !strings.Contains(content, "---") {
		t.Error("markdown should contain a header separator")
	}
	if !strings.Contains(content, "Lithium") {
		t.Error("markdown should contain every query")
	}
}

func TestWriter_CSV(t *testing.T) {
	content := NewWriter(FormatCSV).Render(createTestOutcomes())
	lines := strings.Split(strings.TrimSpace(content), "\n")

	if len(lines) != 4 {
		t.Fatalf("csv should have header plus 3 rows, got %d:\n%s", len(lines), content)
	}
	if !strings.Contains(strings.ToLower(lines[0]), "category") {
		t.Errorf("csv header = %q", lines[0])
	}
	if !strings.Contains(lines[3], `"Nope, Not Here"`) {
		t.Errorf("csv should quote values with commas: %q", lines[3])
	}
}

func TestWriter_RenderSummary(t *testing.T) {
	tests := []struct {
		name        string
		summary     download.Summary
		wantPlanned bool
	}{
		{"regular run", download.Summary{Succeeded: 2, Skipped: 1, Failed: 1}, false},
		{"dry run", download.Summary{Planned: 3, Skipped: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := NewWriter(FormatCSV).RenderSummary(tt.summary)
			if got := strings.Contains(content, "Planned"); got != tt.wantPlanned {
				t.Errorf("Planned row present = %v, want %v:\n%s", got, tt.wantPlanned, content)
			}
			if !strings.Contains(content, "Failed") {
				t.Error("summary should always report failures")
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"", FormatTable, false},
		{"Markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"csv", FormatCSV, false},
		{"xml", FormatTable, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCounts(t *testing.T) {
	got := Counts(download.Summary{Succeeded: 3, Skipped: 2, Failed: 1})
	want := "3 downloaded, 2 skipped, 1 failed"
	if got != want {
		t.Errorf("Counts() = %q, want %q", got, want)
	}
}

func TestDetail(t *testing.T) {
	o := download.Outcome{Kind: download.OutcomeTransportFailure, Err: errors.New("HTTP 500")}
	if got := detail(o); got != "HTTP 500" {
		t.Errorf("detail() = %q", got)
	}
}
