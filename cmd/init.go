package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"commandcenter"

	"github.com/google/subcommands"
)

// initCmd writes the starter portfolio to the portfolio file.
type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a portfolio file with the starter holdings" }
func (*initCmd) Usage() string {
	return `pcc init [-f]

  Creates the portfolio file with a default set of holdings to start
  from. Refuses to overwrite an existing file unless -f is given.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "overwrite an existing portfolio file")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		if _, err := os.Stat(*portfolioFile); err == nil {
			fmt.Fprintf(os.Stderr, "portfolio file %q already exists, use -f to overwrite\n", *portfolioFile)
			return subcommands.ExitFailure
		}
	}

	store := commandcenter.NewStore(*currencyFlag)
	store.Replace(commandcenter.DefaultHoldings(store.Currency()))
	if err := saveStore(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created %s with %d holdings\n", *portfolioFile, store.Len())
	return subcommands.ExitSuccess
}
