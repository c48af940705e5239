package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"commandcenter"

	"github.com/google/subcommands"
)

// rmCmd removes holdings by row index or ticker.
type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove holdings by row index or ticker" }
func (*rmCmd) Usage() string {
	return `pcc rm <row>|<ticker>

  Removes the row at the given index, or every row whose ticker matches.
  The change is written back to the portfolio file.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	arg := f.Arg(0)
	if row, err := strconv.Atoi(arg); err == nil {
		if err := store.Remove(row); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		ticker := commandcenter.NormalizeTicker(arg)
		var kept []commandcenter.Holding
		for _, h := range store.Snapshot() {
			if h.Ticker != ticker {
				kept = append(kept, h)
			}
		}
		if len(kept) == store.Len() {
			fmt.Fprintf(os.Stderr, "Error: no holding with ticker %q\n", ticker)
			return subcommands.ExitFailure
		}
		store.Replace(kept)
	}

	if err := saveStore(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved %s (%d holdings)\n", *portfolioFile, store.Len())
	return subcommands.ExitSuccess
}
