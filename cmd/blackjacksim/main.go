package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"V" help:"Show version"`
	Verbose    bool             `short:"v" help:"Verbose logging"`
	Simulate   SimulateCmd      `cmd:"" help:"Run a betting simulation and save the results"`
	Strategies StrategiesCmd    `cmd:"" help:"List the available strategies"`
	Analyze    AnalyzeCmd       `cmd:"" help:"Summarize saved simulation results"`
}

func main() {
	// Optional .env for BLACKJACKSIM_* overrides; absence is fine.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjacksim"),
		kong.Description("Blackjack betting-strategy simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
