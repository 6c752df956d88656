package main

import (
	"fmt"
	"time"

	"github.com/mfields/blackjacksim/cmd/blackjacksim/shared"
	"github.com/mfields/blackjacksim/internal/config"
	"github.com/mfields/blackjacksim/internal/game"
	"github.com/mfields/blackjacksim/internal/simulator"
	"github.com/mfields/blackjacksim/internal/strategy"
)

type SimulateCmd struct {
	Profile string `short:"p" type:"path" help:"HCL simulation profile"`

	Selection string `help:"Selection strategy (overrides profile)"`
	Counting  string `help:"Counting strategy (overrides profile)"`
	Betting   string `help:"Betting strategy (overrides profile)"`

	BaseBet         int    `help:"Base bet per round (overrides profile)"`
	Decks           int    `help:"Decks in the shoe (overrides profile)"`
	Games           int    `help:"Number of games to play (overrides profile)"`
	StartingBalance int    `help:"Bankroll at the start of each game (overrides profile)"`
	Seed            int64  `help:"RNG seed (0 for time-based)"`
	Notes           string `help:"Notes saved with the results"`
	Output          string `short:"o" help:"Results file path (overrides profile)"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := config.Load(c.Profile)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	selection, err := strategy.NewSelection(cfg.Strategy.Selection)
	if err != nil {
		return err
	}
	counting, err := strategy.NewCounting(cfg.Strategy.Counting)
	if err != nil {
		return err
	}
	betting, err := strategy.NewBetting(cfg.Strategy.Betting)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := shared.SetupLogger(cli.Verbose)
	logger.Info("starting simulation",
		"selection", selection.Name(),
		"counting", counting.Name(),
		"betting", betting.Name(),
		"games", cfg.Games,
		"decks", cfg.Decks,
		"base_bet", cfg.BaseBet,
		"starting_balance", cfg.StartingBalance,
		"seed", seed)

	sim := simulator.New(simulator.Config{
		Selection:       selection,
		Counting:        counting,
		Betting:         betting,
		BaseBet:         cfg.BaseBet,
		Decks:           cfg.Decks,
		Games:           cfg.Games,
		StartingBalance: cfg.StartingBalance,
		Rules:           game.DefaultRules(),
		Seed:            seed,
		Logger:          logger,
	})

	start := time.Now()
	res, err := sim.Run()
	if err != nil {
		return err
	}
	res.Notes = cfg.Notes

	path, err := res.WriteFile(cfg.Output)
	if err != nil {
		return err
	}

	logger.Info("simulation complete",
		"games", len(res.Scores),
		"elapsed", time.Since(start).Round(time.Millisecond),
		"results", path)

	fmt.Println(renderRunSummary(res))
	return nil
}

// applyOverrides copies any flags the user set over the loaded profile.
func (c *SimulateCmd) applyOverrides(cfg *config.Simulation) {
	if c.Selection != "" {
		cfg.Strategy.Selection = c.Selection
	}
	if c.Counting != "" {
		cfg.Strategy.Counting = c.Counting
	}
	if c.Betting != "" {
		cfg.Strategy.Betting = c.Betting
	}
	if c.BaseBet != 0 {
		cfg.BaseBet = c.BaseBet
	}
	if c.Decks != 0 {
		cfg.Decks = c.Decks
	}
	if c.Games != 0 {
		cfg.Games = c.Games
	}
	if c.StartingBalance != 0 {
		cfg.StartingBalance = c.StartingBalance
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.Notes != "" {
		cfg.Notes = c.Notes
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}
}
