package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarkdownStatsWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownStatsWriter{}).writeTo(&buf, testStatsReport()); err != nil {
		t.Fatalf("writeTo: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Git Repository Line Statistics",
		"**Repository:** /tmp/repo",
		"**Period:** 2024-03-01 to 2024-04-30",
		"| 3 | +15 | -10 | 25 | +5 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownAuthorsWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownAuthorsWriter{}).writeTo(&buf, testAuthorsReport()); err != nil {
		t.Fatalf("writeTo: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"| John Doe <john@example.com> | 2 | +12 | -7 | 19 | +5 |",
		"| Jane Roe <jane@example.com> | 1 | +3 | -3 | 6 | +0 |",
		"| **Total** | 3 | +15 | -10 | 25 | +5 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
