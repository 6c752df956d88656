// Package simulator runs many independent games of blackjack against one
// strategy combination and collects the bankroll time series that the
// analysis tooling consumes.
package simulator

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/mfields/blackjacksim/internal/deck"
	"github.com/mfields/blackjacksim/internal/game"
	"github.com/mfields/blackjacksim/internal/randutil"
	"github.com/mfields/blackjacksim/internal/results"
)

// progressEvery is how many completed games pass between progress logs.
const progressEvery = 100

// Config holds configuration for a simulation run.
type Config struct {
	Selection game.SelectionStrategy
	Counting  game.CountingStrategy
	Betting   game.BettingStrategy

	BaseBet         int
	Decks           int
	Games           int
	StartingBalance int

	Rules  game.Rules
	Seed   int64
	Logger *log.Logger
	Clock  quartz.Clock // nil means the real clock
}

// Simulator runs blackjack strategy simulations.
type Simulator struct {
	config Config
	driver *Driver
	engine *game.Engine
	clock  quartz.Clock
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	driver := NewDriver(config.Selection, config.Counting, config.Betting, config.BaseBet, config.Decks)
	engine := game.NewEngine(config.Rules, config.Selection, driver.ObserveCard, config.Logger)

	return &Simulator{
		config: config,
		driver: driver,
		engine: engine,
		clock:  clock,
	}
}

// Run plays the configured number of games sequentially, each against its
// own shoe and ledger, and returns the collected results artifact.
func (s *Simulator) Run() (*results.Results, error) {
	start := s.clock.Now()
	busts := 0

	for g := 0; g < s.config.Games; g++ {
		rng := randutil.New(randutil.GameSeed(s.config.Seed, g))
		shoe := deck.NewShoe(s.config.Decks, rng)
		ledger := game.NewLedger(s.config.StartingBalance)

		s.RunGame(shoe, ledger)
		if ledger.Balance() == 0 {
			busts++
		}

		if (g+1)%progressEvery == 0 {
			elapsed := s.clock.Now().Sub(start)
			var rate float64
			if elapsed > 0 {
				rate = float64(g+1) / elapsed.Seconds()
			}
			s.config.Logger.Info("progress",
				"games", g+1,
				"of", s.config.Games,
				"games_per_sec", int(rate),
				"elapsed", elapsed.Round(time.Millisecond))
		}
	}

	res := results.New(s.driver.Name(), s.config.BaseBet, s.config.Decks, s.config.Games, s.config.StartingBalance)
	res.Scores = s.driver.Scores()
	res.Busts = busts
	return res, nil
}

// RunGame plays rounds against one shoe until the shoe has to replenish
// itself or the bankroll runs out. The shoe boundary is deliberate: once it
// reshuffles, the running count means nothing, so one shoe's productive
// lifetime defines one game. The balance is sampled before every round, plus
// a trailing sample of the final balance when the shoe ends the game; a game
// ended by bankroll exhaustion gets no trailing sample, so its series length
// equals its round count.
func (s *Simulator) RunGame(shoe *deck.Shoe, ledger *game.Ledger) {
	rounds := 0
	for shoe.IsFresh() && ledger.Balance() > 0 {
		s.driver.LogScore(ledger.Balance())

		ledger.SetBet(s.driver.DetermineBet())
		ledger.PlaceBet()

		payout := s.engine.PlayRound(shoe, ledger)
		ledger.Settle(payout)
		rounds++
	}

	if ledger.Balance() > 0 {
		s.driver.LogScore(ledger.Balance())
	}

	s.config.Logger.Debug("game over",
		"rounds", rounds,
		"balance", ledger.Balance(),
		"shoe_fresh", shoe.IsFresh(),
		"true_count", s.driver.TrueCount())

	s.driver.LogGame()
}

// Driver exposes the driver, mainly for tests and reporting.
func (s *Simulator) Driver() *Driver {
	return s.driver
}
