package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"commandcenter"
	"commandcenter/renderer"

	"github.com/google/subcommands"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	growth float64
	target string
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "project the portfolio under growth assumptions" }
func (*simulateCmd) Usage() string {
	return `pcc simulate [-g <percent>] [-t <ticker>] [TICKER=PERCENT ...]

  Runs one simulation pass over the portfolio and renders the projected
  values, profits, and allocation.

  Without arguments, -g applies the same growth percentage to every
  holding. With -t, only the targeted ticker grows by -g and everything
  else stays flat. TICKER=PERCENT arguments set an independent growth
  per ticker, e.g.:

  $ pcc simulate NVDA=25 BTC=-10
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.growth, "g", 0, "growth percentage, -100 or above")
	f.StringVar(&c.target, "t", "", "apply -g to this ticker only")
}

// adjustment builds the pass adjustment from flags and arguments.
func (c *simulateCmd) adjustment(holdings []commandcenter.Holding, args []string) (commandcenter.Adjustment, error) {
	if len(args) == 0 {
		if c.target != "" {
			return commandcenter.SingleTarget(c.target, commandcenter.Percent(c.growth)), nil
		}
		return commandcenter.Uniform(commandcenter.Percent(c.growth)), nil
	}
	if c.target != "" {
		return commandcenter.Adjustment{}, fmt.Errorf("-t cannot be combined with TICKER=PERCENT arguments")
	}

	perTicker := make(map[string]commandcenter.Percent, len(args))
	for _, arg := range args {
		ticker, value, ok := strings.Cut(arg, "=")
		if !ok {
			return commandcenter.Adjustment{}, fmt.Errorf("invalid argument %q, expected TICKER=PERCENT", arg)
		}
		pct, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return commandcenter.Adjustment{}, fmt.Errorf("invalid percentage in %q: %w", arg, err)
		}
		perTicker[commandcenter.NormalizeTicker(ticker)] = commandcenter.Percent(pct)
	}

	growths := make([]commandcenter.Percent, len(holdings))
	for i, h := range holdings {
		growths[i] = perTicker[commandcenter.NormalizeTicker(h.Ticker)]
	}
	return commandcenter.PerHolding(growths), nil
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	adj, err := c.adjustment(session.Store().Snapshot(), f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := session.RunSimulation(ctx, adj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SimulationMarkdown(report))
	return subcommands.ExitSuccess
}
