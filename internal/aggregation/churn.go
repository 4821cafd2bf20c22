package aggregation

import (
	"iter"
	"time"

	"github.com/masmgr/churnstats-go/internal/git"
)

// ChurnTotals accumulates commit and line counts over a range of commits.
// LinesChanged and NetChange are always derived from the two accumulated
// counters so they can never drift out of sync.
type ChurnTotals struct {
	Commits      int
	LinesAdded   int
	LinesRemoved int
	FirstCommit  time.Time // Zero when no commits were seen
	LastCommit   time.Time
}

// LinesChanged returns total lines touched (added + removed).
func (t ChurnTotals) LinesChanged() int {
	return t.LinesAdded + t.LinesRemoved
}

// NetChange returns the signed line delta (added - removed).
func (t ChurnTotals) NetChange() int {
	return t.LinesAdded - t.LinesRemoved
}

// Add merges two partial totals. Aggregating a sequence in pieces and
// adding the results is equivalent to aggregating it whole.
func (t ChurnTotals) Add(other ChurnTotals) ChurnTotals {
	merged := ChurnTotals{
		Commits:      t.Commits + other.Commits,
		LinesAdded:   t.LinesAdded + other.LinesAdded,
		LinesRemoved: t.LinesRemoved + other.LinesRemoved,
		FirstCommit:  t.FirstCommit,
		LastCommit:   t.LastCommit,
	}
	if merged.FirstCommit.IsZero() || (!other.FirstCommit.IsZero() && other.FirstCommit.Before(merged.FirstCommit)) {
		merged.FirstCommit = other.FirstCommit
	}
	if other.LastCommit.After(merged.LastCommit) {
		merged.LastCommit = other.LastCommit
	}
	return merged
}

// observe folds one commit into the running totals.
func (t *ChurnTotals) observe(cs git.CommitChangeSet) {
	t.Commits++
	t.LinesAdded += cs.LinesAdded()
	t.LinesRemoved += cs.LinesRemoved()

	when := cs.Commit.When
	if t.FirstCommit.IsZero() || when.Before(t.FirstCommit) {
		t.FirstCommit = when
	}
	if when.After(t.LastCommit) {
		t.LastCommit = when
	}
}

// Aggregate consumes the commit stream in a single pass and returns the
// accumulated totals. The sequence is never materialized, so arbitrarily
// large histories aggregate in constant memory. An empty sequence yields
// zero totals and no error.
func Aggregate(commits iter.Seq2[git.CommitChangeSet, error]) (ChurnTotals, error) {
	var totals ChurnTotals
	for cs, err := range commits {
		if err != nil {
			return ChurnTotals{}, err
		}
		totals.observe(cs)
	}
	return totals, nil
}
