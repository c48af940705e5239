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

// quotesCmd resolves and displays live prices for the portfolio tickers.
type quotesCmd struct{}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "fetch live prices for the portfolio tickers" }
func (*quotesCmd) Usage() string {
	return `pcc quotes [TICKER...]

  Resolves live prices for the given tickers, or for every ticker in
  the portfolio when none are given. Unavailable quotes are reported
  as such, not treated as errors.
`
}

func (*quotesCmd) SetFlags(*flag.FlagSet) {}

func (c *quotesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers := f.Args()
	if len(tickers) == 0 {
		store, err := loadStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
			return subcommands.ExitFailure
		}
		tickers = commandcenter.Tickers(store.Snapshot())
	}
	for i, t := range tickers {
		tickers[i] = commandcenter.NormalizeTicker(t)
	}

	quotes, err := newResolver().Resolve(ctx, tickers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: price resolution degraded: %v\n", err)
	}
	if quotes == nil {
		quotes = make(map[string]commandcenter.PriceQuote)
	}

	printMarkdown(renderer.QuotesMarkdown(tickers, quotes))
	return subcommands.ExitSuccess
}
