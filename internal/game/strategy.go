package game

import "github.com/mfields/blackjacksim/internal/deck"

// Action is a player decision for one turn of a hand.
type Action int

const (
	Hit Action = iota
	DoubleDown
	Split
	Stand
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case DoubleDown:
		return "double-down"
	case Split:
		return "split"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// SelectionStrategy decides what action to take for a hand. Implementations
// are pure functions of the visible state: the player's hand and the
// dealer's hand (whose hole card stays hidden during the player's turn, so
// its Total reports only the upcard). Implementations may ignore the dealer
// hand entirely.
type SelectionStrategy interface {
	Select(hand, dealerHand *Hand) Action
	Name() string
	Description() string
}

// CountingStrategy maps a seen card to a running-count delta. Deltas may be
// fractional. The strategy holds no state of its own; the simulator driver
// accumulates the running count.
type CountingStrategy interface {
	Count(card deck.Card) float64
	Name() string
	Description() string
}

// BettingStrategy maps the running count to a multiplier applied to the
// configured base bet.
type BettingStrategy interface {
	Multiplier(runningCount float64) float64
	Name() string
	Description() string
}

// CardObserver is invoked for every card as it becomes visible: on each
// draw, except the dealer's hole card whose observation is deferred until
// the reveal. The simulator driver uses it to feed its counting strategy.
type CardObserver func(card deck.Card)
