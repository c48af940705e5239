package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"commandcenter"
	"commandcenter/agent"
	"commandcenter/renderer"

	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd starts an interactive session with the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `pcc assist [question...]

  Starts an interactive chat with a portfolio analyst seeded with the
  current simulation report. Requires GEMINI_API_KEY in the
  environment. Type 'bye' to exit.
`
}

func (*assistCmd) SetFlags(*flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	session, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := session.RunSimulation(ctx, commandcenter.Uniform(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst, err := agent.NewAnalyst(ctx, client, renderer.SimulationMarkdown(report))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the analyst:", err)
		return subcommands.ExitFailure
	}

	if err := agent.Run(ctx, os.Stdout, os.Stdin, analyst, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assist failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
