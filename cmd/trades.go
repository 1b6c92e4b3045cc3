package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/adaljakadam/trade-analyzer/renderer"
)

// tradesCmd holds the flags for the 'trades' subcommand.
type tradesCmd struct {
	symbol string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list reconstructed realized trades" }
func (*tradesCmd) Usage() string {
	return `ta trades [-symbol <symbol>] [-mapping <file>] <tradebook.csv>

  Displays every realized-close event reconstructed from the export,
  in chronological order.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Only show trades for this symbol")
}

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := fileArg(f)
	if path == "" {
		return subcommands.ExitUsageError
	}

	analysis, err := loadAnalysis(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	trades := analysis.Trades
	if c.symbol != "" {
		trades = trades[:0:0]
		for _, t := range analysis.Trades {
			if t.Symbol == c.symbol {
				trades = append(trades, t)
			}
		}
	}

	render(renderer.TradesMarkdown(trades))
	return subcommands.ExitSuccess
}
