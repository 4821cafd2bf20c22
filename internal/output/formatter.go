package output

import (
	"time"

	"github.com/masmgr/churnstats-go/internal/aggregation"
)

// Compile-time interface conformance checks.
var (
	_ StatsReportWriter = (*ConsoleStatsWriter)(nil)
	_ StatsReportWriter = (*JSONStatsWriter)(nil)
	_ StatsReportWriter = (*CSVStatsWriter)(nil)
	_ StatsReportWriter = (*MarkdownStatsWriter)(nil)

	_ AuthorsReportWriter = (*ConsoleAuthorsWriter)(nil)
	_ AuthorsReportWriter = (*JSONAuthorsWriter)(nil)
	_ AuthorsReportWriter = (*CSVAuthorsWriter)(nil)
	_ AuthorsReportWriter = (*MarkdownAuthorsWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string // Empty writes to stdout
}

// StatsReport holds the aggregate line statistics handed to the output
// layer. Since is nil only when the repository had no commits and no start
// date was given.
type StatsReport struct {
	RepoPath     string
	Since        *time.Time
	Until        time.Time
	GeneratedAt  time.Time
	AuthorFilter string
	Totals       aggregation.ChurnTotals
}

// AuthorsReport holds the per-contributor breakdown.
type AuthorsReport struct {
	RepoPath     string
	Since        *time.Time
	Until        time.Time
	GeneratedAt  time.Time
	AuthorFilter string
	Rows         []aggregation.AuthorTotals
	Total        aggregation.ChurnTotals
}

// StatsReportWriter writes aggregate statistics reports.
type StatsReportWriter interface {
	Write(report *StatsReport, options OutputOptions) error
}

// AuthorsReportWriter writes per-author breakdown reports.
type AuthorsReportWriter interface {
	Write(report *AuthorsReport, options OutputOptions) error
}

// NewStatsReportWriter creates a stats writer for the specified format.
func NewStatsReportWriter(format OutputFormat) StatsReportWriter {
	switch format {
	case FormatJSON:
		return &JSONStatsWriter{}
	case FormatCSV:
		return &CSVStatsWriter{}
	case FormatMarkdown:
		return &MarkdownStatsWriter{}
	default:
		return &ConsoleStatsWriter{}
	}
}

// NewAuthorsReportWriter creates an authors writer for the specified format.
func NewAuthorsReportWriter(format OutputFormat) AuthorsReportWriter {
	switch format {
	case FormatJSON:
		return &JSONAuthorsWriter{}
	case FormatCSV:
		return &CSVAuthorsWriter{}
	case FormatMarkdown:
		return &MarkdownAuthorsWriter{}
	default:
		return &ConsoleAuthorsWriter{}
	}
}
