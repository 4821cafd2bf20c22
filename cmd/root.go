package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/masmgr/churnstats-go/config"
	"github.com/masmgr/churnstats-go/internal/git"
	"github.com/masmgr/churnstats-go/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application. Running without a subcommand behaves
// like the stats command, preserving the original flat `churnstats
// --start-date ... --end-date ... --author ...` invocation.
func App() *cli.App {
	return &cli.App{
		Name:    "churnstats",
		Usage:   "Line change statistics for Git repositories",
		Version: "1.0.0",
		Commands: []*cli.Command{
			StatsCmd(),
			AuthorsCmd(),
		},
		Flags:  append(commonFlags(), configFlag()),
		Action: statsAction,
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "start-date",
			Usage: "Count commits since this date, inclusive (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:  "end-date",
			Usage: "Count commits until this date, inclusive (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:    "author",
			Aliases: []string{"a"},
			Usage:   "Filter by author (case-insensitive substring of name or email)",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to analyze (default: HEAD)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.StringFlag{
			Name:  "engine",
			Usage: "History engine (gogit, gitcli)",
			Value: "gogit",
		},
		&cli.BoolFlag{
			Name:  "progress",
			Usage: "Show progress while reading history",
		},
	}
}

// parseDateFlag parses a date string flag.
func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return &t, nil
}

// getOutputFormat parses the output format flag, with the config default
// as fallback.
func getOutputFormat(s string, cfg *config.Config) output.OutputFormat {
	if s == "" {
		s = cfg.Output.Format
	}
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	default:
		return output.FormatConsole
	}
}

// parseEngine parses the history engine flag.
func parseEngine(s string) (git.Engine, error) {
	switch s {
	case "", "gogit":
		return git.EngineGoGit, nil
	case "gitcli":
		return git.EngineGitCLI, nil
	default:
		return git.EngineGoGit, fmt.Errorf("unknown engine: %s (expected gogit or gitcli)", s)
	}
}

// loadConfig loads configuration from file or defaults, applying CLI
// filter overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
