package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/adaljakadam/trade-analyzer/renderer"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct{}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "per-day realized PnL buckets" }
func (*dailyCmd) Usage() string {
	return `ta daily [-mapping <file>] <tradebook.csv>

  Groups realized trades by calendar day and displays count and PnL per day.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := fileArg(f)
	if path == "" {
		return subcommands.ExitUsageError
	}

	analysis, err := loadAnalysis(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	render(renderer.DailyMarkdown(analysis.Metrics))
	return subcommands.ExitSuccess
}
