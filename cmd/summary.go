package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/adaljakadam/trade-analyzer/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "performance metrics for a tradebook export" }
func (*summaryCmd) Usage() string {
	return `ta summary [-mapping <file>] <tradebook.csv>

  Reconstructs realized trades from a broker CSV export and displays
  win rate, profit factor, drawdown and daily statistics.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := fileArg(f)
	if path == "" {
		return subcommands.ExitUsageError
	}

	analysis, err := loadAnalysis(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	render(renderer.SummaryMarkdown(analysis.Metrics))
	return subcommands.ExitSuccess
}
