package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"commandcenter"
	"commandcenter/renderer"

	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	update bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the current portfolio" }
func (*holdingsCmd) Usage() string {
	return `pcc holdings [-u]

  Displays the portfolio holdings. With -u, current prices are resolved
  and the table includes live values and unrealized profit.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.update, "u", false, "resolve current prices before rendering")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	holdings := store.Snapshot()

	var quotes map[string]commandcenter.PriceQuote
	if c.update {
		quotes, err = newResolver().Resolve(ctx, commandcenter.Tickers(holdings))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: price resolution degraded: %v\n", err)
		}
		if quotes == nil {
			quotes = map[string]commandcenter.PriceQuote{}
		}
	}

	printMarkdown(renderer.HoldingsMarkdown(holdings, quotes))
	return subcommands.ExitSuccess
}
