package git

import (
	"context"
	"errors"
	"testing"
)

func TestMockHistoryReader_YieldsChangeSets(t *testing.T) {
	changeSets := []CommitChangeSet{
		{Commit: CommitInfo{SHA: "aaa"}},
		{Commit: CommitInfo{SHA: "bbb"}},
	}
	mock := NewMockHistoryReader(changeSets, nil)

	var shas []string
	for cs, err := range mock.ReadChanges(context.Background()) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		shas = append(shas, cs.Commit.SHA)
	}

	if len(shas) != 2 || shas[0] != "aaa" || shas[1] != "bbb" {
		t.Fatalf("shas = %v", shas)
	}
}

func TestMockHistoryReader_YieldsErrorLast(t *testing.T) {
	wantErr := errors.New("boom")
	mock := NewMockHistoryReader([]CommitChangeSet{{Commit: CommitInfo{SHA: "aaa"}}}, wantErr)

	seen := 0
	var got error
	for _, err := range mock.ReadChanges(context.Background()) {
		if err != nil {
			got = err
			continue
		}
		seen++
	}

	if seen != 1 {
		t.Errorf("change sets seen = %d, expected 1", seen)
	}
	if !errors.Is(got, wantErr) {
		t.Errorf("error = %v, expected %v", got, wantErr)
	}
}
