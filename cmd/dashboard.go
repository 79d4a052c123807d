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
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the live portfolio dashboard" }
func (*dashboardCmd) Usage() string {
	return `tpa dashboard

  Values every held position at the live market price and shows the account
  figures, the distance to the loss floor, and the allocation.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pol, err := policy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := store().LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	prices, err := tradepulse.FetchPrices(tradepulse.NewYahooProvider(), slices.Collect(p.Tickers())...)
	if err != nil {
		log.Printf("warning, some quotes are missing: %v", err)
	}

	v := tradepulse.Compute(p, prices, pol)
	printMarkdown(renderer.Dashboard(v, date.MarketNow()))
	return subcommands.ExitSuccess
}
