package cmd

import (
	"fmt"
	"time"

	"github.com/masmgr/churnstats-go/internal/aggregation"
	"github.com/masmgr/churnstats-go/internal/output"
	"github.com/urfave/cli/v2"
)

// StatsCmd returns the stats command.
func StatsCmd() *cli.Command {
	return &cli.Command{
		Name:    "stats",
		Aliases: []string{"s"},
		Usage:   "Show aggregate line change statistics",
		Flags:   append(commonFlags(), configFlag()),
		Action:  statsAction,
	}
}

func statsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	totals, err := aggregation.Aggregate(ctx.Reader.ReadChanges(c.Context))
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	ctx.FinishProgress()

	since, until := ctx.ResolvedPeriod(totals)
	report := &output.StatsReport{
		RepoPath:     ctx.RepoPath,
		Since:        since,
		Until:        until,
		GeneratedAt:  time.Now(),
		AuthorFilter: ctx.AuthorFilter,
		Totals:       totals,
	}

	opts := ctx.OutputOptions(c)
	writer := output.NewStatsReportWriter(opts.Format)
	return writer.Write(report, opts)
}
