package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"commandcenter"

	"github.com/google/subcommands"
)

// exportCmd writes the canonical portfolio table to stdout or a file.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the portfolio in its canonical CSV form" }
func (*exportCmd) Usage() string {
	return `pcc export [-o <file>]

  Writes the portfolio as the canonical three-column CSV table
  (Ticker, Quantity, Avg_Cost) to stdout, or to -o.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file; stdout when empty")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if c.output != "" {
		w, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer w.Close()
	}

	if err := commandcenter.ExportHoldings(w, store.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
