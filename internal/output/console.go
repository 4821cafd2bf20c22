package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleStatsWriter writes aggregate statistics to the console.
type ConsoleStatsWriter struct{}

// Write outputs the stats report to the console (or OutputPath).
func (w *ConsoleStatsWriter) Write(report *StatsReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return w.writeTo(out, report)
}

func (w *ConsoleStatsWriter) writeTo(out io.Writer, report *StatsReport) error {
	fmt.Fprintln(out, color.GreenString("Git Repository Line Statistics"))
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	label, value := periodLabelAndValue(report.Since, report.Until)
	fmt.Fprintf(out, "%s: %s\n", label, value)
	if report.AuthorFilter != "" {
		fmt.Fprintf(out, "Author: %s\n", report.AuthorFilter)
	}
	fmt.Fprintln(out)

	writeTotalsBlock(out, report.Totals.Commits, report.Totals.LinesAdded,
		report.Totals.LinesRemoved, report.Totals.LinesChanged(), report.Totals.NetChange())
	return nil
}

// ConsoleAuthorsWriter writes per-author breakdowns to the console.
type ConsoleAuthorsWriter struct{}

// Write outputs the authors report to the console (or OutputPath).
func (w *ConsoleAuthorsWriter) Write(report *AuthorsReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return w.writeTo(out, report)
}

func (w *ConsoleAuthorsWriter) writeTo(out io.Writer, report *AuthorsReport) error {
	fmt.Fprintln(out, color.GreenString("Git Repository Line Statistics by Author"))
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	label, value := periodLabelAndValue(report.Since, report.Until)
	fmt.Fprintf(out, "%s: %s\n", label, value)
	if report.AuthorFilter != "" {
		fmt.Fprintf(out, "Author: %s\n", report.AuthorFilter)
	}
	fmt.Fprintln(out)

	if len(report.Rows) == 0 {
		fmt.Fprintln(out, "No commits found in the specified range.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Author\tEmail\tCommits\tAdded\tRemoved\tChanged\tNet")
	for _, row := range report.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t+%d\t-%d\t%d\t%+d\n",
			row.Name,
			row.Email,
			row.Totals.Commits,
			row.Totals.LinesAdded,
			row.Totals.LinesRemoved,
			row.Totals.LinesChanged(),
			row.Totals.NetChange(),
		)
	}
	tw.Flush()

	// The total only adds information once several authors contributed.
	if len(report.Rows) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, color.GreenString("TOTAL"))
		writeTotalsBlock(out, report.Total.Commits, report.Total.LinesAdded,
			report.Total.LinesRemoved, report.Total.LinesChanged(), report.Total.NetChange())
	}
	return nil
}

func writeTotalsBlock(out io.Writer, commits, added, removed, changed, net int) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Commits:\t%d\n", commits)
	fmt.Fprintf(tw, "Lines added:\t+%d\n", added)
	fmt.Fprintf(tw, "Lines removed:\t-%d\n", removed)
	fmt.Fprintf(tw, "Lines changed:\t%d\n", changed)
	fmt.Fprintf(tw, "Net change:\t%+d\n", net)
	tw.Flush()
}
