package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// readChangesGitCLI reads history by shelling out to the git binary.
// One `git log --numstat` invocation covers the whole walk, which is much
// faster than go-git on very large repositories. Commit headers are
// prefixed with 0x1e (record separator) and use NUL-separated fields, so
// the combined --numstat -z output parses reliably as records.
//
// --no-merges matches the go-git engine's merge policy; --root makes the
// initial commit diff against the empty tree. Author and date filters run
// in-process so both engines share exactly the same matching semantics.
func (r *HistoryReader) readChangesGitCLI(ctx context.Context) iter.Seq2[CommitChangeSet, error] {
	const format = "%x1e%H%x00%aI%x00%an%x00%ae%n"

	args := []string{
		"-C", r.opts.RepoPath,
		"log",
		"--no-color",
		"--no-merges",
		"--root",
		"-M",
		"--pretty=format:" + format,
		"--numstat", "-z",
	}

	rev := strings.TrimSpace(r.opts.Branch)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		args = append(args, rev)
	}

	return func(yield func(CommitChangeSet, error) bool) {
		out, err := exec.CommandContext(ctx, "git", args...).Output()
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				stderr := strings.TrimSpace(string(exitErr.Stderr))
				// An unborn HEAD is an empty history, not a failure.
				if strings.Contains(stderr, "does not have any commits yet") {
					return
				}
				yield(CommitChangeSet{}, fmt.Errorf("git log failed: %w: %s", err, stderr))
				return
			}
			yield(CommitChangeSet{}, fmt.Errorf("git log failed: %w", err))
			return
		}

		processed := 0
		for _, rec := range bytes.Split(out, []byte{0x1e}) {
			if len(rec) == 0 {
				continue
			}

			header, body := splitHeaderBody(rec)
			fields := bytes.SplitN(header, []byte{0x00}, 4)
			if len(fields) < 4 {
				yield(CommitChangeSet{}, fmt.Errorf("unexpected git log header format"))
				return
			}

			when, err := time.Parse(time.RFC3339, string(fields[1]))
			if err != nil {
				yield(CommitChangeSet{}, fmt.Errorf("parse author date: %w", err))
				return
			}

			author := AuthorInfo{Name: string(fields[2]), Email: string(fields[3])}
			if !matchesAuthor(r.opts.Author, author) {
				continue
			}
			if !inDateRange(when, r.opts.Since, r.opts.Until) {
				continue
			}

			changes, err := r.parseNumstat(body)
			if err != nil {
				yield(CommitChangeSet{}, err)
				return
			}

			processed++
			if r.opts.OnProgress != nil {
				r.opts.OnProgress(processed)
			}

			cs := CommitChangeSet{
				Commit: CommitInfo{
					SHA:    string(fields[0]),
					When:   when,
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

// splitHeaderBody separates the pretty header line from the numstat body.
func splitHeaderBody(rec []byte) (header []byte, body []byte) {
	if idx := bytes.IndexByte(rec, '\n'); idx != -1 {
		return rec[:idx], rec[idx+1:]
	}
	return rec, nil
}

// parseNumstat parses NUL-delimited `git log --numstat -z` output for one
// commit. Each entry is "added\tdeleted\tpath" terminated by NUL; a rename
// writes an empty path followed by old and new paths as separate NUL
// fields; binary files report "-" for both counts and contribute zero.
func (r *HistoryReader) parseNumstat(body []byte) ([]FileChange, error) {
	i := 0
	var changes []FileChange

	for {
		// Skip separator newlines between records.
		for i < len(body) && (body[i] == '\n' || body[i] == '\r') {
			i++
		}
		if i >= len(body) {
			return changes, nil
		}

		added, addedBinary, ok, err := readNumstatField(body, &i)
		if err != nil {
			return nil, err
		}
		if !ok {
			return changes, nil
		}

		removed, removedBinary, ok, err := readNumstatField(body, &i)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("unexpected git --numstat format (removed)")
		}

		path, ok := readStringUntilNUL(body, &i)
		if !ok {
			return nil, fmt.Errorf("unexpected git --numstat format (path)")
		}

		oldPath := ""
		if path == "" {
			// Rename entry: empty path, then old\0new\0.
			old, ok := readStringUntilNUL(body, &i)
			if !ok {
				return nil, fmt.Errorf("unexpected git --numstat format (rename old path)")
			}
			renamed, ok := readStringUntilNUL(body, &i)
			if !ok {
				return nil, fmt.Errorf("unexpected git --numstat format (rename new path)")
			}
			oldPath = old
			path = renamed
		}

		matched, err := r.paths.matches(path)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}

		changes = append(changes, FileChange{
			Path:         path,
			OldPath:      oldPath,
			LinesAdded:   added,
			LinesRemoved: removed,
			Binary:       addedBinary || removedBinary,
		})
	}
}

// readNumstatField reads one tab-terminated numstat count. A "-" field
// marks a binary file and counts as zero.
func readNumstatField(b []byte, i *int) (n int, binary bool, ok bool, err error) {
	if *i >= len(b) {
		return 0, false, false, nil
	}
	j := bytes.IndexByte(b[*i:], '\t')
	if j == -1 {
		return 0, false, false, nil
	}
	field := b[*i : *i+j]
	*i += j + 1

	if len(field) == 1 && field[0] == '-' {
		return 0, true, true, nil
	}
	v, err := strconv.Atoi(string(field))
	if err != nil {
		return 0, false, true, fmt.Errorf("parse numstat int %q: %w", string(field), err)
	}
	return v, false, true, nil
}

func readStringUntilNUL(b []byte, i *int) (string, bool) {
	if *i >= len(b) {
		return "", false
	}
	j := bytes.IndexByte(b[*i:], 0)
	if j == -1 {
		return "", false
	}
	s := string(b[*i : *i+j])
	*i += j + 1
	return s, true
}
