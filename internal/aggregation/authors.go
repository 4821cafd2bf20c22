package aggregation

import (
	"iter"
	"sort"

	"github.com/masmgr/churnstats-go/internal/git"
)

// AuthorTotals holds accumulated totals for a single contributor.
// Contributors are grouped by lowercased email, so the same person
// committing with differently-cased addresses counts once.
type AuthorTotals struct {
	Key    string // Normalized contributor key (lowercased email)
	Name   string // Display name from the first commit seen
	Email  string
	Totals ChurnTotals
}

// AuthorAggregator accumulates per-contributor churn totals.
type AuthorAggregator struct {
	byKey map[string]*AuthorTotals
}

// NewAuthorAggregator creates a new aggregator.
func NewAuthorAggregator() *AuthorAggregator {
	return &AuthorAggregator{byKey: make(map[string]*AuthorTotals)}
}

// Consume folds the commit stream into per-author totals in a single pass.
func (a *AuthorAggregator) Consume(commits iter.Seq2[git.CommitChangeSet, error]) error {
	for cs, err := range commits {
		if err != nil {
			return err
		}
		a.observe(cs)
	}
	return nil
}

func (a *AuthorAggregator) observe(cs git.CommitChangeSet) {
	key := cs.Commit.Author.ContributorKey()
	at, ok := a.byKey[key]
	if !ok {
		at = &AuthorTotals{
			Key:   key,
			Name:  cs.Commit.Author.Name,
			Email: cs.Commit.Author.Email,
		}
		a.byKey[key] = at
	}
	at.Totals.observe(cs)
}

// Rows returns per-author totals sorted by lines changed descending, with
// the contributor key as a stable tie-breaker.
func (a *AuthorAggregator) Rows() []AuthorTotals {
	rows := make([]AuthorTotals, 0, len(a.byKey))
	for _, at := range a.byKey {
		rows = append(rows, *at)
	}
	sort.Slice(rows, func(i, j int) bool {
		ci, cj := rows[i].Totals.LinesChanged(), rows[j].Totals.LinesChanged()
		if ci != cj {
			return ci > cj
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}

// Total returns the grand total across all contributors.
func (a *AuthorAggregator) Total() ChurnTotals {
	var total ChurnTotals
	for _, at := range a.byKey {
		total = total.Add(at.Totals)
	}
	return total
}
