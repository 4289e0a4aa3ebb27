package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/inventory/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the AI pricing assistant" }
func (*assistCmd) Usage() string {
	return `inv assist [<question>]

  Starts an interactive session with the AI pricing assistant. It reads the
  inventory and can search the web for market prices. The Gemini API key is
  read from the GEMINI_API_KEY environment variable.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	a, err := openApp(ctx)
	if err != nil {
		return fail(subcommands.ExitFailure, "%v", err)
	}
	defer a.close()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(subcommands.ExitFailure, "initializing Gemini's client: %v", err)
	}

	assistant := agent.New(stdout, stdin, agent.NewAdvisor(a.store, a.calc), agent.NewMarketResearcher())
	assistant.Print = printMarkdown

	if err := assistant.Run(ctx, client, initialPrompt); err != nil {
		return fail(subcommands.ExitFailure, "assistant failed: %v", err)
	}
	return subcommands.ExitSuccess
}
