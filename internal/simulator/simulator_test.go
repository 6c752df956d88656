package simulator

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfields/blackjacksim/internal/deck"
	"github.com/mfields/blackjacksim/internal/game"
	"github.com/mfields/blackjacksim/internal/randutil"
)

// Strategy stubs. The simulator package cannot import the strategy package
// without forming a cycle through its tests, so the tests carry their own.

type standOnTwelve struct{}

func (standOnTwelve) Select(hand, dealerHand *game.Hand) game.Action {
	if hand.Total() <= 11 {
		return game.Hit
	}
	return game.Stand
}
func (standOnTwelve) Name() string        { return "Stand On Twelve" }
func (standOnTwelve) Description() string { return "hits to 12, then stands" }

type countEverything struct{}

func (countEverything) Count(card deck.Card) float64 { return 1 }
func (countEverything) Name() string                 { return "Count Everything" }
func (countEverything) Description() string          { return "every card counts +1" }

type noCount struct{}

func (noCount) Count(card deck.Card) float64 { return 0 }
func (noCount) Name() string                 { return "No Count" }
func (noCount) Description() string          { return "never counts" }

type halfAboveTen struct{}

func (halfAboveTen) Multiplier(runningCount float64) float64 {
	if runningCount > 10 {
		return 0.5
	}
	return 1
}
func (halfAboveTen) Name() string        { return "Half Above Ten" }
func (halfAboveTen) Description() string { return "halves the bet on a hot count" }

type zeroBet struct{}

func (zeroBet) Multiplier(runningCount float64) float64 { return 0 }
func (zeroBet) Name() string                            { return "Zero Bet" }
func (zeroBet) Description() string                     { return "always returns a zero multiplier" }

func TestDriverObserveCardAccumulates(t *testing.T) {
	d := NewDriver(standOnTwelve{}, countEverything{}, halfAboveTen{}, 100, 2)

	for i := 0; i < 5; i++ {
		d.ObserveCard(deck.NewCard(deck.Nine, deck.Hearts))
	}
	assert.Equal(t, 5.0, d.RunningCount())
}

func TestDriverTrueCount(t *testing.T) {
	d := NewDriver(standOnTwelve{}, countEverything{}, halfAboveTen{}, 100, 2)

	assert.Zero(t, d.TrueCount(), "no cards seen yet")

	// Half of a two-deck shoe seen, all counted +1: running count 52 over
	// half a shoe normalises to 104 per full shoe.
	for i := 0; i < deck.DeckSize; i++ {
		d.ObserveCard(deck.NewCard(deck.Two, deck.Clubs))
	}
	assert.InDelta(t, 104.0, d.TrueCount(), 1e-9)
}

func TestDriverDetermineBet(t *testing.T) {
	d := NewDriver(standOnTwelve{}, countEverything{}, halfAboveTen{}, 100, 2)

	assert.Equal(t, 100, d.DetermineBet(), "neutral count bets the base")

	for i := 0; i < 11; i++ {
		d.ObserveCard(deck.NewCard(deck.Two, deck.Clubs))
	}
	assert.Equal(t, 50, d.DetermineBet(), "hot count halves the bet")
}

func TestDriverDetermineBetFloorsAtOne(t *testing.T) {
	d := NewDriver(standOnTwelve{}, noCount{}, zeroBet{}, 100, 2)
	assert.Equal(t, 1, d.DetermineBet())
}

func TestDriverLogGameResetsShoeState(t *testing.T) {
	d := NewDriver(standOnTwelve{}, countEverything{}, halfAboveTen{}, 100, 2)

	d.ObserveCard(deck.NewCard(deck.Two, deck.Clubs))
	d.LogScore(900)
	d.LogScore(800)
	d.LogGame()

	assert.Equal(t, [][]int{{900, 800}}, d.Scores())
	assert.Zero(t, d.RunningCount())
	assert.Zero(t, d.TrueCount())

	// The next game's samples land in a fresh row.
	d.LogScore(700)
	d.LogGame()
	assert.Equal(t, [][]int{{900, 800}, {700}}, d.Scores())
}

func TestDriverName(t *testing.T) {
	d := NewDriver(standOnTwelve{}, noCount{}, zeroBet{}, 100, 2)
	assert.Equal(t, "Zero Bet - Stand On Twelve - No Count", d.Name())
}

func testConfig() Config {
	return Config{
		Selection:       standOnTwelve{},
		Counting:        noCount{},
		Betting:         halfAboveTen{},
		BaseBet:         100,
		Decks:           2,
		Games:           10,
		StartingBalance: 1_000,
		Rules:           game.DefaultRules(),
		Seed:            7,
		Logger:          log.New(io.Discard),
	}
}

func TestRunGameSampleShape(t *testing.T) {
	// The series for one game holds one pre-round sample per round, plus a
	// trailing final balance only when the shoe, not the bankroll, ended
	// the game.
	for seed := int64(0); seed < 10; seed++ {
		s := New(testConfig())
		shoe := deck.NewShoe(1, randutil.New(seed))
		ledger := game.NewLedger(1_000)

		s.RunGame(shoe, ledger)

		scores := s.Driver().Scores()
		require.Len(t, scores, 1)
		run := scores[0]
		require.NotEmpty(t, run)

		for _, balance := range run[:len(run)-1] {
			assert.Positive(t, balance, "pre-round samples are taken with chips in hand")
		}

		if ledger.Balance() == 0 {
			assert.Positive(t, run[len(run)-1], "a bust records no trailing zero")
		} else {
			assert.False(t, shoe.IsFresh(), "a game only ends on a stale shoe or a bust")
			assert.Equal(t, ledger.Balance(), run[len(run)-1],
				"a stale shoe records the final balance")
		}
	}
}

func TestRunGameExhaustsShoeOrBankroll(t *testing.T) {
	s := New(testConfig())
	shoe := deck.NewShoe(1, randutil.New(3))
	ledger := game.NewLedger(1_000)

	s.RunGame(shoe, ledger)

	assert.True(t, !shoe.IsFresh() || ledger.Balance() == 0)
}

func TestRunProducesArtifact(t *testing.T) {
	cfg := testConfig()
	cfg.Clock = quartz.NewMock(t)

	s := New(cfg)
	res, err := s.Run()
	require.NoError(t, err)

	assert.Equal(t, "Half Above Ten - Stand On Twelve - No Count", res.Name)
	assert.Equal(t, cfg.BaseBet, res.BaseBet)
	assert.Equal(t, cfg.Decks, res.Decks)
	assert.Equal(t, cfg.Games, res.Games)
	assert.Equal(t, cfg.StartingBalance, res.StartingBalance)
	assert.NotEmpty(t, res.RunID)
	assert.NotEmpty(t, res.CreatedAt)

	require.Len(t, res.Scores, cfg.Games)
	for i, run := range res.Scores {
		require.NotEmptyf(t, run, "game %d has no samples", i)
		assert.Equal(t, cfg.StartingBalance, run[0],
			"every game starts from the configured balance")
	}
	assert.GreaterOrEqual(t, res.Busts, 0)
	assert.LessOrEqual(t, res.Busts, cfg.Games)
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	first, err := New(testConfig()).Run()
	require.NoError(t, err)
	second, err := New(testConfig()).Run()
	require.NoError(t, err)

	assert.Equal(t, first.Scores, second.Scores)
	assert.Equal(t, first.Busts, second.Busts)

	cfg := testConfig()
	cfg.Seed = 8
	third, err := New(cfg).Run()
	require.NoError(t, err)
	assert.NotEqual(t, first.Scores, third.Scores)
}
