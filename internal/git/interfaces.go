package git

import (
	"context"
	"iter"
)

// RepositoryReader defines the interface for reading Git repository history.
// ReadChanges yields commits lazily; the returned sequence is finite,
// single-use, and must be consumed in one pass. A non-nil error terminates
// the sequence.
type RepositoryReader interface {
	ReadChanges(ctx context.Context) iter.Seq2[CommitChangeSet, error]
}

// Compile-time interface conformance check.
var _ RepositoryReader = (*HistoryReader)(nil)
