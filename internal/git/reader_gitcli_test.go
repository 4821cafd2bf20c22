package git

import "testing"

func newCLIParser(include, exclude []string) *HistoryReader {
	return &HistoryReader{paths: newPathFilter(include, exclude)}
}

func TestParseNumstat_ModifyAndRename(t *testing.T) {
	// Body bytes are what comes after the pretty header line. With -z,
	// entries are NUL-separated and concatenated.
	body := []byte{}

	// Modify a.txt: 1 added, 2 removed
	body = append(body, []byte("1\t2\ta.txt")...)
	body = append(body, 0)

	// Rename old.go -> new.go: with -z, git writes an empty path then
	// old\0new\0
	body = append(body, []byte("3\t4\t")...)
	body = append(body, 0)
	body = append(body, []byte("old.go")...)
	body = append(body, 0)
	body = append(body, []byte("new.go")...)
	body = append(body, 0)

	changes, err := newCLIParser(nil, nil).parseNumstat(body)
	if err != nil {
		t.Fatalf("parseNumstat: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("changes = %d, expected 2", len(changes))
	}
	if changes[0].Path != "a.txt" || changes[0].LinesAdded != 1 || changes[0].LinesRemoved != 2 {
		t.Fatalf("changes[0] = %#v", changes[0])
	}
	if changes[1].Path != "new.go" || changes[1].OldPath != "old.go" ||
		changes[1].LinesAdded != 3 || changes[1].LinesRemoved != 4 {
		t.Fatalf("changes[1] = %#v", changes[1])
	}
}

func TestParseNumstat_BinaryCountsZero(t *testing.T) {
	body := []byte("-\t-\timage.png")
	body = append(body, 0)

	changes, err := newCLIParser(nil, nil).parseNumstat(body)
	if err != nil {
		t.Fatalf("parseNumstat: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("changes = %d, expected 1", len(changes))
	}
	c := changes[0]
	if !c.Binary || c.LinesAdded != 0 || c.LinesRemoved != 0 || c.Path != "image.png" {
		t.Fatalf("changes[0] = %#v", c)
	}
}

func TestParseNumstat_LeadingNewline(t *testing.T) {
	// Real git output can carry a newline before the numstat section.
	body := []byte{'\n'}
	body = append(body, []byte("5\t3\tExternal/foo.js")...)
	body = append(body, 0)

	changes, err := newCLIParser(nil, nil).parseNumstat(body)
	if err != nil {
		t.Fatalf("parseNumstat: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("changes = %d, expected 1", len(changes))
	}
	if changes[0].LinesAdded != 5 || changes[0].LinesRemoved != 3 {
		t.Fatalf("changes[0] = %#v, expected 5/3", changes[0])
	}
}

func TestParseNumstat_PathFilterApplied(t *testing.T) {
	body := []byte("5\t0\tvendor/dep.go")
	body = append(body, 0)
	body = append(body, []byte("2\t1\tmain.go")...)
	body = append(body, 0)

	changes, err := newCLIParser(nil, []string{"vendor/**"}).parseNumstat(body)
	if err != nil {
		t.Fatalf("parseNumstat: %v", err)
	}
	if len(changes) != 1 || changes[0].Path != "main.go" {
		t.Fatalf("changes = %#v, expected only main.go", changes)
	}
}

func TestParseNumstat_Empty(t *testing.T) {
	changes, err := newCLIParser(nil, nil).parseNumstat(nil)
	if err != nil {
		t.Fatalf("parseNumstat: %v", err)
	}
	if len(changes) != 0 {
		t.Fatalf("changes = %d, expected 0", len(changes))
	}
}

func TestSplitHeaderBody(t *testing.T) {
	header, body := splitHeaderBody([]byte("abc\ndef"))
	if string(header) != "abc" || string(body) != "def" {
		t.Fatalf("splitHeaderBody = %q, %q", header, body)
	}

	header, body = splitHeaderBody([]byte("abc"))
	if string(header) != "abc" || body != nil {
		t.Fatalf("splitHeaderBody without newline = %q, %q", header, body)
	}
}

func engineTotals(t *testing.T, dir string, engine Engine) (commits, added, removed int) {
	t.Helper()
	reader, err := NewHistoryReader(ReadOptions{RepoPath: dir, Engine: engine})
	if err != nil {
		t.Fatalf("NewHistoryReader(%s): %v", engine, err)
	}
	return sumChanges(collectChanges(t, reader))
}

func TestReadChangesGitCLI_MatchesGoGitEngine(t *testing.T) {
	dir := seedHistory(t)

	gc, ga, gr := engineTotals(t, dir, EngineGoGit)
	cc, ca, cr := engineTotals(t, dir, EngineGitCLI)
	if gc != cc || ga != ca || gr != cr {
		t.Fatalf("engines disagree: gogit %d/+%d/-%d, gitcli %d/+%d/-%d", gc, ga, gr, cc, ca, cr)
	}
}

func TestReadChangesGitCLI_SkipsMergeCommits(t *testing.T) {
	dir := seedMergeHistory(t)

	cc, ca, cr := engineTotals(t, dir, EngineGitCLI)
	if cc != 3 || ca != 4 || cr != 0 {
		t.Fatalf("totals = %d commits, +%d/-%d; expected 3 commits, +4/-0 with the merge skipped", cc, ca, cr)
	}

	gc, ga, gr := engineTotals(t, dir, EngineGoGit)
	if gc != cc || ga != ca || gr != cr {
		t.Fatalf("engines disagree on merges: gogit %d/+%d/-%d, gitcli %d/+%d/-%d", gc, ga, gr, cc, ca, cr)
	}
}

func TestReadChangesGitCLI_AgreesOnRenames(t *testing.T) {
	dir := seedRenameHistory(t)

	cc, ca, cr := engineTotals(t, dir, EngineGitCLI)
	if cc != 2 || ca != 5 || cr != 1 {
		t.Fatalf("totals = %d commits, +%d/-%d; expected 2 commits, +5/-1 with the rename detected", cc, ca, cr)
	}

	gc, ga, gr := engineTotals(t, dir, EngineGoGit)
	if gc != cc || ga != ca || gr != cr {
		t.Fatalf("engines disagree on renames: gogit %d/+%d/-%d, gitcli %d/+%d/-%d", gc, ga, gr, cc, ca, cr)
	}
}
