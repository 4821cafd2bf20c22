package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initTestRepo creates a temporary git repository for tests.
func initTestRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	return dir, repo
}

// commitFile writes a file with exact content and commits it, so tests can
// predict line counts precisely.
func commitFile(t *testing.T, repo *gogit.Repository, name string, content []byte, author AuthorInfo, when time.Time) plumbing.Hash {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}

	path := filepath.Join(w.Filesystem.Root(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := w.Add(name); err != nil {
		t.Fatalf("add: %v", err)
	}

	sig := &object.Signature{Name: author.Name, Email: author.Email, When: when}
	hash, err := w.Commit("update "+name, &gogit.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	return hash
}

// mergeCommit writes a file and commits it with explicit parents, producing
// a merge commit.
func mergeCommit(t *testing.T, repo *gogit.Repository, name string, content []byte, author AuthorInfo, when time.Time, parents ...plumbing.Hash) plumbing.Hash {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if err := os.WriteFile(filepath.Join(w.Filesystem.Root(), name), content, 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := w.Add(name); err != nil {
		t.Fatalf("add: %v", err)
	}

	sig := &object.Signature{Name: author.Name, Email: author.Email, When: when}
	hash, err := w.Commit("merge "+name, &gogit.CommitOptions{Author: sig, Committer: sig, Parents: parents})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	return hash
}

// renameCommit moves a file, rewrites its content, and commits the result.
func renameCommit(t *testing.T, repo *gogit.Repository, from, to string, content []byte, author AuthorInfo, when time.Time) {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := w.Move(from, to); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := os.WriteFile(filepath.Join(w.Filesystem.Root(), to), content, 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := w.Add(to); err != nil {
		t.Fatalf("add: %v", err)
	}

	sig := &object.Signature{Name: author.Name, Email: author.Email, When: when}
	if _, err := w.Commit("rename "+from, &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

// collectChanges drains a reader's sequence, failing the test on error.
func collectChanges(t *testing.T, r *HistoryReader) []CommitChangeSet {
	t.Helper()

	var out []CommitChangeSet
	for cs, err := range r.ReadChanges(context.Background()) {
		if err != nil {
			t.Fatalf("read changes: %v", err)
		}
		out = append(out, cs)
	}
	return out
}

// sumChanges adds up commit count and line totals across change sets.
func sumChanges(changeSets []CommitChangeSet) (commits, added, removed int) {
	for _, cs := range changeSets {
		commits++
		added += cs.LinesAdded()
		removed += cs.LinesRemoved()
	}
	return commits, added, removed
}
