// Command pcc is the Portfolio Command Center CLI.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"commandcenter/cmd"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs before flag parsing and exits on its own
	// when invoked by the shell. Install with: COMP_INSTALL=1 pcc
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"init":     {Flags: map[string]complete.Predictor{"f": predict.Nothing}},
			"holdings": {Flags: map[string]complete.Predictor{"u": predict.Nothing}},
			"set":      {Flags: map[string]complete.Predictor{"i": predict.Something}},
			"rm":       {},
			"export":   {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"simulate": {Flags: map[string]complete.Predictor{
				"g": predict.Something,
				"t": predict.Something,
			}},
			"quotes": {},
			"assist": {},
			"topic":  {Args: predict.Set{"readme", "holdings", "prices", "simulate"}},
		},
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.csv"),
			"currency":       predict.Set{"USD", "EUR", "GBP", "CHF"},
			"quote-ttl":      predict.Something,
			"offline":        predict.Nothing,
			"eodhd-api-key":  predict.Something,
		},
	}
	completer.Complete("pcc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
