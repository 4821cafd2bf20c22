package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/masmgr/churnstats-go/config"
	"github.com/masmgr/churnstats-go/internal/aggregation"
	"github.com/masmgr/churnstats-go/internal/git"
	"github.com/masmgr/churnstats-go/internal/output"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution.
// It performs configuration loading, date validation, and repository
// opening before any history is read, so malformed input aborts the run
// with no partial output.
type CommandContext struct {
	Config       *config.Config
	RepoPath     string
	Since        *time.Time
	Until        *time.Time
	AuthorFilter string
	Reader       *git.HistoryReader
	Progress     bool
}

// NewCommandContext creates a context from CLI flags.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	since, err := parseDateFlag(c.String("start-date"))
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	until, err := parseDateFlag(c.String("end-date"))
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}

	engine, err := parseEngine(c.String("engine"))
	if err != nil {
		return nil, err
	}

	ctx := &CommandContext{
		Config:       cfg,
		RepoPath:     c.String("repo"),
		Since:        since,
		Until:        until,
		AuthorFilter: c.String("author"),
		Progress:     c.Bool("progress"),
	}

	opts := git.ReadOptions{
		RepoPath: ctx.RepoPath,
		Branch:   c.String("branch"),
		Author:   ctx.AuthorFilter,
		Since:    since,
		Until:    until,
		Include:  cfg.Filters.Include,
		Exclude:  cfg.Filters.Exclude,
		Engine:   engine,
	}
	if ctx.Progress {
		opts.OnProgress = printProgress
	}

	reader, err := git.NewHistoryReader(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	ctx.Reader = reader

	return ctx, nil
}

// ResolvedPeriod returns the reporting period. A missing start date
// resolves to the first counted commit's day; a missing end date resolves
// to today.
func (ctx *CommandContext) ResolvedPeriod(totals aggregation.ChurnTotals) (*time.Time, time.Time) {
	since := ctx.Since
	if since == nil && !totals.FirstCommit.IsZero() {
		first := totals.FirstCommit
		day := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, first.Location())
		since = &day
	}

	until := time.Now()
	if ctx.Until != nil {
		until = *ctx.Until
	}

	return since, until
}

// FinishProgress terminates the progress line before the report prints.
func (ctx *CommandContext) FinishProgress() {
	if ctx.Progress {
		fmt.Fprintln(os.Stderr)
	}
}

func printProgress(processed int) {
	fmt.Fprintf(os.Stderr, "\rAnalyzing commits... %d", processed)
}

// OutputOptions creates OutputOptions from CLI flags and config defaults.
func (ctx *CommandContext) OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format"), ctx.Config),
		OutputPath: c.String("output"),
	}
}
