package cmd

import (
	"fmt"
	"time"

	"github.com/masmgr/churnstats-go/internal/aggregation"
	"github.com/masmgr/churnstats-go/internal/output"
	"github.com/urfave/cli/v2"
)

// AuthorsCmd returns the authors command.
func AuthorsCmd() *cli.Command {
	return &cli.Command{
		Name:    "authors",
		Aliases: []string{"au"},
		Usage:   "Show line change statistics broken down by author",
		Flags:   append(commonFlags(), configFlag()),
		Action:  authorsAction,
	}
}

func authorsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	agg := aggregation.NewAuthorAggregator()
	if err := agg.Consume(ctx.Reader.ReadChanges(c.Context)); err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	ctx.FinishProgress()

	total := agg.Total()
	since, until := ctx.ResolvedPeriod(total)
	report := &output.AuthorsReport{
		RepoPath:     ctx.RepoPath,
		Since:        since,
		Until:        until,
		GeneratedAt:  time.Now(),
		AuthorFilter: ctx.AuthorFilter,
		Rows:         agg.Rows(),
		Total:        total,
	}

	opts := ctx.OutputOptions(c)
	writer := output.NewAuthorsReportWriter(opts.Format)
	return writer.Write(report, opts)
}
