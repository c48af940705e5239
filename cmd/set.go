package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"commandcenter"

	"github.com/google/subcommands"
)

// setCmd adds or edits one holding row.
type setCmd struct {
	row int
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "add or edit a holding" }
func (*setCmd) Usage() string {
	return `pcc set [-i <row>] TICKER QUANTITY AVG_COST

  Appends a holding, or with -i replaces the row at that index. The
  change is written back to the portfolio file.

Usage Examples:
# Add half a bitcoin bought at 40000.
$ pcc set BTC 0.5 40000

# Rewrite row 2.
$ pcc set -i 2 META 25 310.50
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.row, "i", -1, "row index to replace; -1 appends")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	// funnel the arguments through record validation to get the same
	// schema errors as a file load
	rec := commandcenter.Record{
		commandcenter.FieldTicker:   f.Arg(0),
		commandcenter.FieldQuantity: f.Arg(1),
		commandcenter.FieldAvgCost:  f.Arg(2),
	}
	edit := commandcenter.NewStore(store.Currency())
	if err := edit.Load([]commandcenter.Record{rec}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	h := edit.Snapshot()[0]

	if c.row < 0 {
		store.Add(h)
	} else if err := store.Set(c.row, h); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveStore(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved %s (%d holdings)\n", *portfolioFile, store.Len())
	return subcommands.ExitSuccess
}
