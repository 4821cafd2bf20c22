package git

import (
	"context"
	"iter"
)

// MockHistoryReader is a test double for HistoryReader.
// It allows tests to provide predefined commit data without needing a real
// Git repository.
type MockHistoryReader struct {
	ChangeSets []CommitChangeSet
	Err        error // Yielded after all change sets, if set
}

// NewMockHistoryReader creates a new MockHistoryReader with the given data.
func NewMockHistoryReader(changeSets []CommitChangeSet, err error) *MockHistoryReader {
	return &MockHistoryReader{ChangeSets: changeSets, Err: err}
}

// ReadChanges yields the predefined change sets, then the error if any.
func (m *MockHistoryReader) ReadChanges(_ context.Context) iter.Seq2[CommitChangeSet, error] {
	return func(yield func(CommitChangeSet, error) bool) {
		for _, cs := range m.ChangeSets {
			if !yield(cs, nil) {
				return
			}
		}
		if m.Err != nil {
			yield(CommitChangeSet{}, m.Err)
		}
	}
}

// Compile-time interface conformance check.
var _ RepositoryReader = (*MockHistoryReader)(nil)
