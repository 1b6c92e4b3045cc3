package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	analyzer "github.com/adaljakadam/trade-analyzer"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write realized trades as CSV" }
func (*exportCmd) Usage() string {
	return `ta export [-o <file>] [-mapping <file>] <tradebook.csv>

  Writes the reconstructed realized trades as a CSV file, one row per
  realized-close event, suitable for spreadsheets or further tooling.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := fileArg(f)
	if path == "" {
		return subcommands.ExitUsageError
	}

	analysis, err := loadAnalysis(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	var out io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := writeTrades(out, analysis.Trades); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing trades: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// writeTrades writes the realized-trade sequence as CSV.
func writeTrades(w io.Writer, trades []analyzer.RealizedTrade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "timestamp", "symbol", "quantity", "open_price", "close_price", "pnl", "close_type"}); err != nil {
		return err
	}
	for _, t := range trades {
		record := []string{
			fmt.Sprintf("%d", t.ID),
			t.Time.Format("2006-01-02T15:04:05"),
			t.Symbol,
			t.Quantity.String(),
			t.Open.Amount().String(),
			t.Close.Amount().String(),
			t.PnL.Amount().String(),
			t.Type.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
