package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/etnz/tradepulse"
	"github.com/etnz/tradepulse/date"
	"github.com/etnz/tradepulse/renderer"
	"github.com/etnz/tradepulse/research"
	"github.com/google/subcommands"
)

type researchCmd struct{}

func (*researchCmd) Name() string     { return "research" }
func (*researchCmd) Synopsis() string { return "run deep research and refresh the 9AM brief" }
func (*researchCmd) Usage() string {
	return `tpa research

  Values the portfolio, builds the analyst prompt from the live figures, and
  asks Gemini for a structured trading brief. The result replaces the 9AM
  brief and is appended to the research log.
`
}

func (*researchCmd) SetFlags(f *flag.FlagSet) {}

func (c *researchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pol, err := policy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s := store()
	p, err := s.LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	prices, err := tradepulse.FetchPrices(tradepulse.NewYahooProvider(), slices.Collect(p.Tickers())...)
	if err != nil {
		log.Printf("warning, some quotes are missing: %v", err)
	}
	v := tradepulse.Compute(p, prices, pol)

	analyst, err := research.NewAnalyst(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	now := date.MarketNow()
	fmt.Println("Analyzing macro, AI capex, sector rotation, and your portfolio...")
	content, err := analyst.Generate(ctx, research.BuildPrompt(v, now))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error from the analyst:", err)
		fmt.Fprintln(os.Stderr, "Double-check your GEMINI_API_KEY and make sure it has credits.")
		return subcommands.ExitFailure
	}

	rec, err := s.SaveBrief(content, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Deep research complete, the 9AM brief is updated.")
	printMarkdown(renderer.Brief(rec, now))
	return subcommands.ExitSuccess
}
