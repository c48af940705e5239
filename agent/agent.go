// Package agent implements the interactive AI assistant for pcc.
//
// The assistant is a single Gemini chat seeded with the latest
// simulation report, so the model can answer questions about the
// user's holdings and what-if outcomes without extra round trips.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Analyst is a chat with the portfolio analyst expert.
type Analyst struct {
	chat *genai.Chat
}

// NewAnalyst creates the analyst chat, seeded with the current
// simulation report rendered as markdown.
func NewAnalyst(ctx context.Context, client *genai.Client, report string) (*Analyst, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a portfolio analyst. The user runs what-if simulations on
			their portfolio and wants to discuss the outcomes with you.

			Below is the current simulation report. Rows marked "at cost" had
			no live quote and are priced at their average cost, treat their
			figures as a floor rather than a market value.

			Use Google Search when the user asks for recent news or grounding
			about one of their tickers.

` + report}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return nil, err
	}
	return &Analyst{chat: chat}, nil
}

// Ask sends a question to the analyst and returns its text answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session with the analyst.
func Run(ctx context.Context, w io.Writer, r io.Reader, analyst *Analyst, prompts ...string) error {
	in := bufio.NewReader(r)

	fmt.Fprintln(w, "Welcome to pcc assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = in.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := analyst.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, answer)
	}
}
