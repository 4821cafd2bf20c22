package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestCSVStatsWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := (&CSVStatsWriter{}).writeTo(writer, testStatsReport()); err != nil {
		t.Fatalf("writeTo: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, expected header + 1 row", len(records))
	}

	want := []string{"3", "15", "10", "25", "5"}
	for i, w := range want {
		if records[1][i] != w {
			t.Errorf("field %d = %q, expected %q", i, records[1][i], w)
		}
	}
}

func TestCSVAuthorsWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := (&CSVAuthorsWriter{}).writeTo(writer, testAuthorsReport()); err != nil {
		t.Fatalf("writeTo: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, expected header + 2 rows", len(records))
	}

	if records[1][0] != "John Doe" || records[1][2] != "2" {
		t.Errorf("records[1] = %v", records[1])
	}
	if records[2][0] != "Jane Roe" || records[2][6] != "0" {
		t.Errorf("records[2] = %v", records[2])
	}
}
