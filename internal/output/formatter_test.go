package output

import (
	"fmt"
	"testing"
)

func TestNewStatsReportWriter(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		expected string
	}{
		{format: FormatConsole, expected: "*output.ConsoleStatsWriter"},
		{format: FormatJSON, expected: "*output.JSONStatsWriter"},
		{format: FormatCSV, expected: "*output.CSVStatsWriter"},
		{format: FormatMarkdown, expected: "*output.MarkdownStatsWriter"},
		{format: OutputFormat("bogus"), expected: "*output.ConsoleStatsWriter"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			writer := NewStatsReportWriter(tt.format)
			if got := fmt.Sprintf("%T", writer); got != tt.expected {
				t.Errorf("NewStatsReportWriter(%q) = %s, expected %s", tt.format, got, tt.expected)
			}
		})
	}
}

func TestNewAuthorsReportWriter(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		expected string
	}{
		{format: FormatConsole, expected: "*output.ConsoleAuthorsWriter"},
		{format: FormatJSON, expected: "*output.JSONAuthorsWriter"},
		{format: FormatCSV, expected: "*output.CSVAuthorsWriter"},
		{format: FormatMarkdown, expected: "*output.MarkdownAuthorsWriter"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			writer := NewAuthorsReportWriter(tt.format)
			if got := fmt.Sprintf("%T", writer); got != tt.expected {
				t.Errorf("NewAuthorsReportWriter(%q) = %s, expected %s", tt.format, got, tt.expected)
			}
		})
	}
}
