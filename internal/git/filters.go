package git

import (
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// matchesAuthor reports whether the author matches the filter.
// An empty filter matches everything; otherwise the filter is a
// case-insensitive substring of "Name <email>".
func matchesAuthor(filter string, author AuthorInfo) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(author.Identity()), strings.ToLower(filter))
}

// dayOf truncates a time to its calendar day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// inDateRange reports whether a commit time falls inside the optional
// [since, until] range. Both bounds are inclusive at day granularity, so a
// commit dated exactly on a boundary is always included regardless of its
// time of day.
func inDateRange(when time.Time, since, until *time.Time) bool {
	day := dayOf(when)
	if since != nil && day.Before(dayOf(*since)) {
		return false
	}
	if until != nil && day.After(dayOf(*until)) {
		return false
	}
	return true
}

// pathFilter applies include/exclude glob patterns to file paths.
// Match results are cached per path since histories revisit the same
// files many times.
type pathFilter struct {
	include []string
	exclude []string
	cache   map[string]bool
}

func newPathFilter(include, exclude []string) *pathFilter {
	return &pathFilter{
		include: include,
		exclude: exclude,
		cache:   make(map[string]bool),
	}
}

// matches checks if a path passes the include/exclude filters.
func (f *pathFilter) matches(path string) (bool, error) {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	if cached, ok := f.cache[path]; ok {
		return cached, nil
	}

	matched, err := f.evaluate(path)
	if err != nil {
		return false, err
	}
	f.cache[path] = matched
	return matched, nil
}

func (f *pathFilter) evaluate(path string) (bool, error) {
	// Check exclude patterns first
	for _, pattern := range f.exclude {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if matched {
			return false, nil
		}
	}

	// If no include patterns, accept all
	if len(f.include) == 0 {
		return true, nil
	}

	for _, pattern := range f.include {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}
