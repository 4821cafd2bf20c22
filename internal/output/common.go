package output

import (
	"encoding/csv"
	"io"
	"os"
	"time"
)

const reportDateLayout = "2006-01-02"

// periodLabelAndValue renders the resolved reporting period. With no
// resolvable start date (empty history, no flag) only the end bound is
// shown.
func periodLabelAndValue(since *time.Time, until time.Time) (string, string) {
	if since != nil {
		return "Period", since.Format(reportDateLayout) + " to " + until.Format(reportDateLayout)
	}
	return "Until", until.Format(reportDateLayout)
}

func formatSinceDate(since *time.Time) *string {
	if since == nil {
		return nil
	}
	formatted := since.Format(reportDateLayout)
	return &formatted
}

// createWriter returns the destination writer, plus the file to close when
// writing to a path instead of stdout.
func createWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func createCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	out, file, err := createWriter(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewWriter(out), file, nil
}
