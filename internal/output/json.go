package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/masmgr/churnstats-go/internal/aggregation"
)

// JSONStatsWriter writes aggregate statistics as JSON.
type JSONStatsWriter struct{}

// JSONStatsReport is the JSON output structure for aggregate statistics.
type JSONStatsReport struct {
	RepoPath     string     `json:"repo"`
	Since        *string    `json:"since,omitempty"`
	Until        string     `json:"until"`
	GeneratedAt  string     `json:"generatedAt"`
	AuthorFilter string     `json:"authorFilter,omitempty"`
	Totals       JSONTotals `json:"totals"`
}

// JSONTotals holds churn totals in JSON format.
type JSONTotals struct {
	Commits      int `json:"commits"`
	LinesAdded   int `json:"linesAdded"`
	LinesRemoved int `json:"linesRemoved"`
	LinesChanged int `json:"linesChanged"`
	NetChange    int `json:"netChange"`
}

func jsonTotals(t aggregation.ChurnTotals) JSONTotals {
	return JSONTotals{
		Commits:      t.Commits,
		LinesAdded:   t.LinesAdded,
		LinesRemoved: t.LinesRemoved,
		LinesChanged: t.LinesChanged(),
		NetChange:    t.NetChange(),
	}
}

// Write outputs the stats report as JSON.
func (w *JSONStatsWriter) Write(report *StatsReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return w.writeTo(out, report)
}

func (w *JSONStatsWriter) writeTo(out io.Writer, report *StatsReport) error {
	jsonReport := JSONStatsReport{
		RepoPath:     report.RepoPath,
		Since:        formatSinceDate(report.Since),
		Until:        report.Until.Format(reportDateLayout),
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		AuthorFilter: report.AuthorFilter,
		Totals:       jsonTotals(report.Totals),
	}

	data, err := json.MarshalIndent(jsonReport, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// JSONAuthorsWriter writes per-author breakdowns as JSON.
type JSONAuthorsWriter struct{}

// JSONAuthorsReport is the JSON output structure for the author breakdown.
type JSONAuthorsReport struct {
	RepoPath     string           `json:"repo"`
	Since        *string          `json:"since,omitempty"`
	Until        string           `json:"until"`
	GeneratedAt  string           `json:"generatedAt"`
	AuthorFilter string           `json:"authorFilter,omitempty"`
	Authors      []JSONAuthorItem `json:"authors"`
	Total        JSONTotals       `json:"total"`
}

// JSONAuthorItem holds one contributor's totals in JSON format.
type JSONAuthorItem struct {
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Totals JSONTotals `json:"totals"`
}

// Write outputs the authors report as JSON.
func (w *JSONAuthorsWriter) Write(report *AuthorsReport, options OutputOptions) error {
	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return w.writeTo(out, report)
}

func (w *JSONAuthorsWriter) writeTo(out io.Writer, report *AuthorsReport) error {
	authors := make([]JSONAuthorItem, len(report.Rows))
	for i, row := range report.Rows {
		authors[i] = JSONAuthorItem{
			Name:   row.Name,
			Email:  row.Email,
			Totals: jsonTotals(row.Totals),
		}
	}

	jsonReport := JSONAuthorsReport{
		RepoPath:     report.RepoPath,
		Since:        formatSinceDate(report.Since),
		Until:        report.Until.Format(reportDateLayout),
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		AuthorFilter: report.AuthorFilter,
		Authors:      authors,
		Total:        jsonTotals(report.Total),
	}

	data, err := json.MarshalIndent(jsonReport, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
