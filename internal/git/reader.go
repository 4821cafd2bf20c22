package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNotARepository is returned when the given path is not a Git repository.
var ErrNotARepository = errors.New("not a git repository")

// HistoryReader reads commit history from a Git repository.
type HistoryReader struct {
	repo  *gogit.Repository
	opts  ReadOptions
	paths *pathFilter
}

// NewHistoryReader creates a new history reader for the given repository.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	repo, err := gogit.PlainOpen(opts.RepoPath)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, opts.RepoPath)
		}
		return nil, err
	}
	return &HistoryReader{
		repo:  repo,
		opts:  opts,
		paths: newPathFilter(opts.Include, opts.Exclude),
	}, nil
}

// ReadChanges walks the commit history reachable from the branch head,
// newest first, yielding one CommitChangeSet per commit that passes the
// author and date filters. Merge commits (more than one parent) are skipped
// entirely so their lines are never double-counted; the initial commit is
// diffed against the empty tree.
func (r *HistoryReader) ReadChanges(ctx context.Context) iter.Seq2[CommitChangeSet, error] {
	if r.opts.Engine == EngineGitCLI {
		return r.readChangesGitCLI(ctx)
	}

	return func(yield func(CommitChangeSet, error) bool) {
		from, empty, err := r.headHash()
		if err != nil {
			yield(CommitChangeSet{}, err)
			return
		}
		if empty {
			// Repository with no commits yet: a valid, empty history.
			return
		}

		cIter, err := r.repo.Log(&gogit.LogOptions{From: from})
		if err != nil {
			yield(CommitChangeSet{}, fmt.Errorf("read log: %w", err))
			return
		}
		defer cIter.Close()

		processed := 0
		for {
			if err := ctx.Err(); err != nil {
				yield(CommitChangeSet{}, err)
				return
			}

			c, err := cIter.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(CommitChangeSet{}, fmt.Errorf("walk history: %w", err))
				return
			}

			if c.NumParents() > 1 {
				continue
			}

			author := AuthorInfo{Name: c.Author.Name, Email: c.Author.Email}
			if !matchesAuthor(r.opts.Author, author) {
				continue
			}
			if !inDateRange(c.Author.When, r.opts.Since, r.opts.Until) {
				continue
			}

			changes, err := r.commitChanges(ctx, c)
			if err != nil {
				yield(CommitChangeSet{}, fmt.Errorf("diff commit %s: %w", c.Hash, err))
				return
			}

			processed++
			if r.opts.OnProgress != nil {
				r.opts.OnProgress(processed)
			}

			cs := CommitChangeSet{
				Commit: CommitInfo{
					SHA:    c.Hash.String(),
					When:   c.Author.When,
					Author: author,
				},
				Changes: changes,
			}
			if !yield(cs, nil) {
				return
			}
		}
	}
}

// headHash resolves the starting point of the history walk. The empty
// result marks an unborn HEAD (a repository with no commits), which is not
// an error.
func (r *HistoryReader) headHash() (plumbing.Hash, bool, error) {
	rev := strings.TrimSpace(r.opts.Branch)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		h, err := r.repo.ResolveRevision(plumbing.Revision(rev))
		if err != nil {
			return plumbing.ZeroHash, false, fmt.Errorf("resolve branch %q: %w", rev, err)
		}
		return *h, false, nil
	}

	ref, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return plumbing.ZeroHash, true, nil
	}
	if err != nil {
		return plumbing.ZeroHash, false, err
	}
	return ref.Hash(), false, nil
}

// commitChanges extracts file changes from a commit by diffing against its
// first parent, or against the empty tree for the initial commit.
func (r *HistoryReader) commitChanges(ctx context.Context, c *object.Commit) ([]FileChange, error) {
	toTree, err := c.Tree()
	if err != nil {
		return nil, err
	}

	var fromTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return nil, err
		}
		fromTree, err = parent.Tree()
		if err != nil {
			return nil, err
		}
	}

	treeChanges, err := object.DiffTreeWithOptions(ctx, fromTree, toTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, err
	}

	var changes []FileChange
	for _, tc := range treeChanges {
		path := tc.To.Name
		if path == "" {
			path = tc.From.Name
		}
		oldPath := ""
		if tc.From.Name != "" && tc.To.Name != "" && tc.From.Name != tc.To.Name {
			oldPath = tc.From.Name
		}

		matched, err := r.paths.matches(path)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}

		patch, err := tc.PatchContext(ctx)
		if err != nil {
			return nil, err
		}

		for _, fp := range patch.FilePatches() {
			if fp.IsBinary() {
				changes = append(changes, FileChange{Path: path, OldPath: oldPath, Binary: true})
				continue
			}

			added, removed := 0, 0
			for _, chunk := range fp.Chunks() {
				switch chunk.Type() {
				case fdiff.Add:
					added += countLines(chunk.Content())
				case fdiff.Delete:
					removed += countLines(chunk.Content())
				}
			}

			changes = append(changes, FileChange{
				Path:         path,
				OldPath:      oldPath,
				LinesAdded:   added,
				LinesRemoved: removed,
			})
		}
	}

	return changes, nil
}

// countLines counts the lines in a diff chunk. A trailing fragment without
// a final newline still counts as a line.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
