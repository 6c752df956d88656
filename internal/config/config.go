// Package config loads simulation profiles. A profile is an HCL file
// declaring the table parameters and the strategy combination to run; it
// replaces the interactive menus the simulator grew out of. Environment
// variables override selected fields so deterministic reruns don't require
// editing the profile.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Environment variable overrides
const (
	// EnvSeed overrides the RNG seed for deterministic reruns
	EnvSeed = "BLACKJACKSIM_SEED"

	// EnvOutput overrides the results output path
	EnvOutput = "BLACKJACKSIM_OUTPUT"
)

// MaxDecks bounds the shoe size a profile may request.
const MaxDecks = 100

// Simulation is a complete simulation profile.
type Simulation struct {
	BaseBet         int    `hcl:"base_bet,optional"`
	Decks           int    `hcl:"decks,optional"`
	Games           int    `hcl:"games,optional"`
	StartingBalance int    `hcl:"starting_balance,optional"`
	Seed            int64  `hcl:"seed,optional"`
	Notes           string `hcl:"notes,optional"`
	Output          string `hcl:"output,optional"`

	Strategy StrategyConfig `hcl:"strategy,block"`
}

// StrategyConfig names the three policies to combine, using registry names.
type StrategyConfig struct {
	Selection string `hcl:"selection"`
	Counting  string `hcl:"counting,optional"`
	Betting   string `hcl:"betting,optional"`
}

// Default returns the profile used when no file is given, mirroring the
// original simulation constants.
func Default() *Simulation {
	return &Simulation{
		BaseBet:         500,
		Decks:           16,
		Games:           900,
		StartingBalance: 5000,
		Output:          "simulation_results.json",
		Strategy: StrategyConfig{
			Selection: "max-caution",
			Counting:  "none",
			Betting:   "flat",
		},
	}
}

// Load reads a simulation profile from an HCL file, fills in defaults for
// omitted fields and applies environment overrides. A missing file yields
// the default profile.
func Load(filename string) (*Simulation, error) {
	if filename == "" {
		cfg := Default()
		return cfg, cfg.applyEnv()
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("profile %s does not exist", filename)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile: %s", diags.Error())
	}

	var cfg Simulation
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile: %s", diags.Error())
	}

	defaults := Default()
	if cfg.BaseBet == 0 {
		cfg.BaseBet = defaults.BaseBet
	}
	if cfg.Decks == 0 {
		cfg.Decks = defaults.Decks
	}
	if cfg.Games == 0 {
		cfg.Games = defaults.Games
	}
	if cfg.StartingBalance == 0 {
		cfg.StartingBalance = defaults.StartingBalance
	}
	if cfg.Output == "" {
		cfg.Output = defaults.Output
	}
	if cfg.Strategy.Counting == "" {
		cfg.Strategy.Counting = defaults.Strategy.Counting
	}
	if cfg.Strategy.Betting == "" {
		cfg.Strategy.Betting = defaults.Strategy.Betting
	}

	return &cfg, cfg.applyEnv()
}

// applyEnv applies environment variable overrides to the profile.
func (c *Simulation) applyEnv() error {
	if seedStr := os.Getenv(EnvSeed); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if output := os.Getenv(EnvOutput); output != "" {
		c.Output = output
	}
	return nil
}

// Validate checks the profile against the limits the engine assumes. An
// invalid profile never reaches the core.
func (c *Simulation) Validate() error {
	if c.BaseBet <= 0 {
		return fmt.Errorf("base_bet must be positive, got %d", c.BaseBet)
	}
	if c.Decks < 1 || c.Decks > MaxDecks {
		return fmt.Errorf("decks must be between 1 and %d, got %d", MaxDecks, c.Decks)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.StartingBalance <= 0 {
		return fmt.Errorf("starting_balance must be positive, got %d", c.StartingBalance)
	}
	if c.Strategy.Selection == "" {
		return fmt.Errorf("strategy block must name a selection strategy")
	}
	return nil
}
