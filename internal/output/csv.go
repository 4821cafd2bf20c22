package output

import (
	"encoding/csv"
	"fmt"

	"github.com/masmgr/churnstats-go/internal/aggregation"
)

// CSVStatsWriter writes aggregate statistics as CSV.
type CSVStatsWriter struct{}

// Write outputs the stats report as a single CSV record.
func (w *CSVStatsWriter) Write(report *StatsReport, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return w.writeTo(writer, report)
}

func (w *CSVStatsWriter) writeTo(writer *csv.Writer, report *StatsReport) error {
	header := []string{"Commits", "LinesAdded", "LinesRemoved", "LinesChanged", "NetChange"}
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.Write(totalsRecord(report.Totals)); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// CSVAuthorsWriter writes per-author breakdowns as CSV.
type CSVAuthorsWriter struct{}

// Write outputs the authors report as CSV, one row per contributor.
func (w *CSVAuthorsWriter) Write(report *AuthorsReport, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return w.writeTo(writer, report)
}

func (w *CSVAuthorsWriter) writeTo(writer *csv.Writer, report *AuthorsReport) error {
	header := []string{"Author", "Email", "Commits", "LinesAdded", "LinesRemoved", "LinesChanged", "NetChange"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range report.Rows {
		record := append([]string{row.Name, row.Email}, totalsRecord(row.Totals)...)
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func totalsRecord(t aggregation.ChurnTotals) []string {
	return []string{
		fmt.Sprintf("%d", t.Commits),
		fmt.Sprintf("%d", t.LinesAdded),
		fmt.Sprintf("%d", t.LinesRemoved),
		fmt.Sprintf("%d", t.LinesChanged()),
		fmt.Sprintf("%d", t.NetChange()),
	}
}
