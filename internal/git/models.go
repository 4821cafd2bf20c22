package git

import (
	"strings"
	"time"
)

// CommitInfo represents minimal information about a Git commit.
type CommitInfo struct {
	SHA    string
	When   time.Time
	Author AuthorInfo
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// ContributorKey returns a normalized identifier for grouping contributors.
func (a AuthorInfo) ContributorKey() string {
	return strings.ToLower(a.Email)
}

// Identity returns the author in "Name <email>" form, the string the
// author filter is matched against.
func (a AuthorInfo) Identity() string {
	return a.Name + " <" + a.Email + ">"
}

// FileChange represents a file change within a commit.
type FileChange struct {
	Path         string
	OldPath      string // For renames
	LinesAdded   int
	LinesRemoved int
	Binary       bool // Binary files carry no line counts
}

// CommitChangeSet bundles a commit with its file changes.
// Changes may be empty: a commit that only touches binary or
// path-filtered files still counts as a commit.
type CommitChangeSet struct {
	Commit  CommitInfo
	Changes []FileChange
}

// LinesAdded sums added lines across all file changes.
func (cs CommitChangeSet) LinesAdded() int {
	total := 0
	for _, c := range cs.Changes {
		total += c.LinesAdded
	}
	return total
}

// LinesRemoved sums removed lines across all file changes.
func (cs CommitChangeSet) LinesRemoved() int {
	total := 0
	for _, c := range cs.Changes {
		total += c.LinesRemoved
	}
	return total
}

// Engine selects the history reading implementation.
type Engine int

const (
	EngineGoGit Engine = iota
	EngineGitCLI
)

// String returns a string representation of the engine.
func (e Engine) String() string {
	switch e {
	case EngineGitCLI:
		return "gitcli"
	default:
		return "gogit"
	}
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath   string
	Branch     string
	Author     string     // Case-insensitive substring over "Name <email>"
	Since      *time.Time // Inclusive, day granularity
	Until      *time.Time // Inclusive, day granularity
	Include    []string   // Glob patterns to include
	Exclude    []string   // Glob patterns to exclude
	Engine     Engine
	OnProgress func(processed int)
}
