// Package cmd implements the CLI application to run the trading engine.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tradepulse"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&dashboardCmd{}, "portfolio")
	c.Register(&buyCmd{}, "trades")
	c.Register(&sellCmd{}, "trades")
	c.Register(&briefCmd{}, "research")
	c.Register(&researchCmd{}, "research")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateDir = flag.String("state-dir", "", "Path to the folder holding the portfolio and research files (default $TRADEPULSE_DIR or .)")
var capital = flag.Float64("capital", 1000, "Starting capital in dollars, the top of the risk scale")
var floor = flag.Float64("floor", 500, "Stop-loss floor in dollars, the bottom of the risk scale")

// store resolves the state directory: the -state-dir flag wins, then
// TRADEPULSE_DIR, then the working directory.
func store() *tradepulse.Store {
	dir := *stateDir
	if dir == "" {
		dir = os.Getenv("TRADEPULSE_DIR")
	}
	if dir == "" {
		dir = "."
	}
	return tradepulse.NewStore(dir)
}

// policy builds the risk policy from the global flags.
func policy() (tradepulse.RiskPolicy, error) {
	p := tradepulse.RiskPolicy{Capital: tradepulse.USD(*capital), Floor: tradepulse.USD(*floor)}
	if err := p.Validate(); err != nil {
		return tradepulse.RiskPolicy{}, err
	}
	return p, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot start.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
