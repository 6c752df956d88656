package simulator

import (
	"fmt"
	"math"

	"github.com/mfields/blackjacksim/internal/deck"
	"github.com/mfields/blackjacksim/internal/game"
)

// Driver binds a selection, counting and betting strategy together and owns
// the state they need across rounds: the running count for the current shoe
// and the balance samples collected for the results artifact. The counting
// strategy itself is a pure card-to-delta function; all accumulation
// happens here.
type Driver struct {
	selection game.SelectionStrategy
	counting  game.CountingStrategy
	betting   game.BettingStrategy

	baseBet int
	decks   int

	runningCount float64
	cardsSeen    int

	gameScores []int
	allScores  [][]int
}

// NewDriver creates a driver for one simulation run. The same driver is
// shared across every game of the run; per-shoe state resets at each game
// boundary.
func NewDriver(selection game.SelectionStrategy, counting game.CountingStrategy, betting game.BettingStrategy, baseBet, decks int) *Driver {
	return &Driver{
		selection: selection,
		counting:  counting,
		betting:   betting,
		baseBet:   baseBet,
		decks:     decks,
	}
}

// Selection returns the driver's selection strategy
func (d *Driver) Selection() game.SelectionStrategy {
	return d.selection
}

// ObserveCard feeds one visible card to the counting strategy and
// accumulates its delta into the running count. The round engine calls this
// for every card as it is revealed, hole card included (at reveal time).
func (d *Driver) ObserveCard(card deck.Card) {
	d.runningCount += d.counting.Count(card)
	d.cardsSeen++
}

// RunningCount returns the accumulated count for the current shoe
func (d *Driver) RunningCount() float64 {
	return d.runningCount
}

// TrueCount returns the running count normalised by the estimated number of
// decks already dealt. No betting strategy consumes it; it is kept
// observable for parity with reported counts in the literature.
func (d *Driver) TrueCount() float64 {
	if d.cardsSeen == 0 {
		return 0
	}
	return d.runningCount / (float64(d.cardsSeen) / float64(d.decks*deck.DeckSize))
}

// DetermineBet returns the wager for the next round: the base bet scaled by
// the betting strategy's multiplier for the current count, rounded, and
// floored at 1 so the player always has a stake in the round.
func (d *Driver) DetermineBet() int {
	bet := int(math.Round(float64(d.baseBet) * d.betting.Multiplier(d.runningCount)))
	if bet < 1 {
		bet = 1
	}
	return bet
}

// LogScore records a bankroll sample for the current game.
func (d *Driver) LogScore(balance int) {
	d.gameScores = append(d.gameScores, balance)
}

// LogGame closes out the current game: its samples are archived and the
// per-shoe state (running count, cards seen) is reset, since a new game
// means a new shoe and the old count is meaningless against it.
func (d *Driver) LogGame() {
	scores := make([]int, len(d.gameScores))
	copy(scores, d.gameScores)
	d.allScores = append(d.allScores, scores)

	d.gameScores = d.gameScores[:0]
	d.runningCount = 0
	d.cardsSeen = 0
}

// Scores returns the balance time series of every completed game.
func (d *Driver) Scores() [][]int {
	return d.allScores
}

// Name describes the strategy combination, betting first, matching the
// naming of saved result files.
func (d *Driver) Name() string {
	return fmt.Sprintf("%s - %s - %s", d.betting.Name(), d.selection.Name(), d.counting.Name())
}
