// Package cmd implements the CLI application to analyze broker trade exports.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	analyzer "github.com/adaljakadam/trade-analyzer"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&tradesCmd{}, "reports")
	c.Register(&dailyCmd{}, "reports")

	c.Register(&exportCmd{}, "export")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var mappingFile = flag.String("mapping", "", "Path to a TOML file with column-mapping overrides")

// loadAnalysis runs the whole pipeline over one export file.
func loadAnalysis(path string) (*analyzer.Analysis, error) {
	var opts []analyzer.Option
	if *mappingFile != "" {
		m, err := analyzer.LoadMapping(*mappingFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, analyzer.WithMapping(m))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", path, err)
	}
	defer f.Close()

	return analyzer.ParseTradebook(f, opts...)
}

// render prints a markdown report to stdout, pretty-printed for the
// terminal when glamour can handle it, raw markdown otherwise.
func render(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, err := r.Render(doc); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(doc)
}

// fileArg returns the export file positional argument, or "" with a usage
// message on stderr.
func fileArg(f *flag.FlagSet) string {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one tradebook CSV file argument")
		return ""
	}
	return f.Arg(0)
}
