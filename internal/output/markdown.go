package output

import (
	"fmt"
	"io"
	"time"

	"github.com/masmgr/churnstats-go/internal/aggregation"
)

// MarkdownStatsWriter writes aggregate statistics as Markdown.
type MarkdownStatsWriter struct{}

// Write outputs the stats report as Markdown.
func (w *MarkdownStatsWriter) Write(report *StatsReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return w.writeTo(out, report)
}

func (w *MarkdownStatsWriter) writeTo(out io.Writer, report *StatsReport) error {
	fmt.Fprintln(out, "# Git Repository Line Statistics")
	fmt.Fprintln(out)
	writeMarkdownPreamble(out, report.RepoPath, report.Since, report.Until, report.AuthorFilter)

	fmt.Fprintln(out, "| Commits | Lines Added | Lines Removed | Lines Changed | Net Change |")
	fmt.Fprintln(out, "|---------|-------------|---------------|---------------|------------|")
	writeMarkdownTotalsRow(out, nil, report.Totals)
	return nil
}

// MarkdownAuthorsWriter writes per-author breakdowns as Markdown.
type MarkdownAuthorsWriter struct{}

// Write outputs the authors report as Markdown.
func (w *MarkdownAuthorsWriter) Write(report *AuthorsReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return w.writeTo(out, report)
}

func (w *MarkdownAuthorsWriter) writeTo(out io.Writer, report *AuthorsReport) error {
	fmt.Fprintln(out, "# Git Repository Line Statistics by Author")
	fmt.Fprintln(out)
	writeMarkdownPreamble(out, report.RepoPath, report.Since, report.Until, report.AuthorFilter)

	fmt.Fprintln(out, "| Author | Commits | Lines Added | Lines Removed | Lines Changed | Net Change |")
	fmt.Fprintln(out, "|--------|---------|-------------|---------------|---------------|------------|")
	for _, row := range report.Rows {
		label := fmt.Sprintf("%s <%s>", row.Name, row.Email)
		writeMarkdownTotalsRow(out, &label, row.Totals)
	}
	if len(report.Rows) > 1 {
		label := "**Total**"
		writeMarkdownTotalsRow(out, &label, report.Total)
	}
	return nil
}

func writeMarkdownPreamble(out io.Writer, repoPath string, since *time.Time, until time.Time, authorFilter string) {
	fmt.Fprintf(out, "**Repository:** %s\n\n", repoPath)
	label, value := periodLabelAndValue(since, until)
	fmt.Fprintf(out, "**%s:** %s\n\n", label, value)
	if authorFilter != "" {
		fmt.Fprintf(out, "**Author:** %s\n\n", authorFilter)
	}
}

func writeMarkdownTotalsRow(out io.Writer, label *string, t aggregation.ChurnTotals) {
	if label != nil {
		fmt.Fprintf(out, "| %s ", *label)
	}
	fmt.Fprintf(out, "| %d | +%d | -%d | %d | %+d |\n",
		t.Commits, t.LinesAdded, t.LinesRemoved, t.LinesChanged(), t.NetChange())
}
