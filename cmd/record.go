package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradepulse"
	"github.com/google/subcommands"
)

// recordTrade validates and applies a trade that was executed at the broker,
// then persists the new portfolio state.
func recordTrade(t tradepulse.Trade) subcommands.ExitStatus {
	s := store()
	p, err := s.LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	t, err = t.Validate(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	next := t.Apply(p)
	if err := s.SavePortfolio(next); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %s of %s @ %s\n", t.Side, t.Amount, t.Ticker, t.Price)
	fmt.Printf("Cash balance: %s\n", next.Cash)
	return subcommands.ExitSuccess
}

// --- Buy Command ---

type buyCmd struct {
	ticker string
	amount float64
	price  float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record an executed purchase" }
func (*buyCmd) Usage() string {
	return `tpa buy -t <ticker> -a <amount> -p <price>

  Records a buy executed at the broker. The dollar amount is folded into the
  position at the exact fill price, the average cost moves to the weighted
  average, and the cash balance is debited.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker bought")
	f.Float64Var(&c.amount, "a", 0, "Dollar amount of the fill")
	f.Float64Var(&c.price, "p", 0, "Exact fill price per share")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.amount <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return recordTrade(tradepulse.Trade{
		Ticker: c.ticker,
		Side:   tradepulse.Buy,
		Amount: tradepulse.USD(c.amount),
		Price:  tradepulse.USD(c.price),
	})
}

// --- Sell Command ---

type sellCmd struct {
	ticker string
	amount float64
	price  float64
	all    bool
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record an executed sale" }
func (*sellCmd) Usage() string {
	return `tpa sell -t <ticker> -a <amount> -p <price>

  Records a sale executed at the broker. The proceeds are credited to the
  cash balance and the position shrinks, the average cost does not move.
  Selling more than the position holds is rejected.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker sold")
	f.Float64Var(&c.amount, "a", 0, "Dollar amount of the fill, if missing the whole position is sold")
	f.Float64Var(&c.price, "p", 0, "Exact fill price per share")
	f.BoolVar(&c.all, "all", false, "Sell the whole position at the fill price")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	all := c.all || c.amount == 0
	if c.ticker == "" || c.price <= 0 || (!all && c.amount <= 0) {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return recordTrade(tradepulse.Trade{
		Ticker: c.ticker,
		Side:   tradepulse.Sell,
		Amount: tradepulse.USD(c.amount),
		Price:  tradepulse.USD(c.price),
		All:    all,
	})
}
