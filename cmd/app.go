// Package cmd implements the CLI application to explore portfolio
// what-if scenarios.
// A main package calls Register() to declare the subcommands, and
// Execute() on the user-selected one.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"commandcenter"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "portfolio")
	c.Register(&holdingsCmd{}, "portfolio")
	c.Register(&setCmd{}, "portfolio")
	c.Register(&rmCmd{}, "portfolio")
	c.Register(&exportCmd{}, "portfolio")

	c.Register(&simulateCmd{}, "simulation")
	c.Register(&quotesCmd{}, "simulation")
	c.Register(&assistCmd{}, "simulation")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.csv", "Path to the portfolio file (CSV with Ticker, Quantity, Avg_Cost columns)")
var currencyFlag = flag.String("currency", "USD", "Reporting currency for values and profits")
var quoteTTL = flag.Duration("quote-ttl", time.Minute, "How long resolved quotes are served from memory before being fetched again")
var offlineFlag = flag.Bool("offline", false, "Do not fetch live prices; every holding is priced at its average cost")

// loadStore reads the portfolio file into a fresh store. A missing file
// is not an error: it yields an empty portfolio.
func loadStore() (*commandcenter.Store, error) {
	store := commandcenter.NewStore(*currencyFlag)

	f, err := os.Open(*portfolioFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, portfolio file %q does not exist, starting empty (try 'pcc init')", *portfolioFile)
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio file %q: %w", *portfolioFile, err)
	}
	defer f.Close()

	records, err := commandcenter.ImportRecords(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read portfolio file %q: %w", *portfolioFile, err)
	}
	if err := store.Load(records); err != nil {
		return nil, fmt.Errorf("invalid portfolio file %q: %w", *portfolioFile, err)
	}
	return store, nil
}

// saveStore writes the store back to the portfolio file.
func saveStore(store *commandcenter.Store) error {
	f, err := os.Create(*portfolioFile)
	if err != nil {
		return fmt.Errorf("cannot write portfolio file %q: %w", *portfolioFile, err)
	}
	defer f.Close()
	return commandcenter.ExportHoldings(f, store.Snapshot())
}

// newResolver picks the price resolver from the global flags.
func newResolver() commandcenter.Resolver {
	if *offlineFlag {
		return commandcenter.UnavailableResolver{}
	}
	return commandcenter.NewEODHDResolver("", *quoteTTL)
}

// newSession loads the portfolio and ties it to the configured resolver.
func newSession() (*commandcenter.Session, error) {
	store, err := loadStore()
	if err != nil {
		return nil, err
	}
	return commandcenter.NewSession(store, newResolver()), nil
}

// printMarkdown renders markdown for the terminal. On any rendering
// problem the raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
