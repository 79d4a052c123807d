package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradepulse/date"
	"github.com/etnz/tradepulse/renderer"
	"github.com/google/subcommands"
)

type briefCmd struct {
	history int
}

func (*briefCmd) Name() string     { return "brief" }
func (*briefCmd) Synopsis() string { return "show the latest 9AM research brief" }
func (*briefCmd) Usage() string {
	return `tpa brief [-history <n>]

  Shows the morning brief from the last research run. With -history, shows
  the n most recent briefs from the append-only research log instead.
`
}

func (c *briefCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.history, "history", 0, "Show the last n briefs from the research log")
}

func (c *briefCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := store()

	if c.history > 0 {
		records, err := s.LoadHistory()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if len(records) > c.history {
			records = records[len(records)-c.history:]
		}
		printMarkdown(renderer.History(records))
		return subcommands.ExitSuccess
	}

	rec, err := s.LoadBrief()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Brief(rec, date.MarketNow()))
	return subcommands.ExitSuccess
}
