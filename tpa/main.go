// Command tpa is the TradePulse Alpha trading engine CLI.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tradepulse/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// Completion requests end the process here.
	cmd.Complete("tpa")

	// A .env file is the simplest home for GEMINI_API_KEY.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
