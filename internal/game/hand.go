package game

import (
	"strings"

	"github.com/mfields/blackjacksim/internal/deck"
)

// Hand is an ordered sequence of cards owned by one participant. Dealer
// hands start with their second card hidden: the hole card is excluded from
// Total and from the count observer until Unhide reveals it.
type Hand struct {
	cards      []deck.Card
	dealer     bool
	hidden     bool
	standing   bool
	multiplier int
}

// NewHand creates a player hand and deals it two cards from the shoe.
func NewHand(shoe *deck.Shoe, observe CardObserver) *Hand {
	h := &Hand{multiplier: 1}
	h.Draw(shoe, observe)
	h.Draw(shoe, observe)
	return h
}

// NewDealerHand creates a dealer hand with the second card dealt face down.
func NewDealerHand(shoe *deck.Shoe, observe CardObserver) *Hand {
	h := &Hand{dealer: true, hidden: true, multiplier: 1}
	h.Draw(shoe, observe)
	h.Draw(shoe, observe)
	return h
}

// newSplitHand seeds a hand with one card of a split pair and deals it a
// second card through the normal draw path.
func newSplitHand(seed deck.Card, shoe *deck.Shoe, observe CardObserver) *Hand {
	h := &Hand{multiplier: 1}
	h.cards = append(h.cards, seed)
	h.Draw(shoe, observe)
	return h
}

// Draw pulls one card from the shoe into the hand. The dealer's hole card
// skips the observer; every other card is reported as it lands. Reaching 21
// or busting ends the hand's turn immediately.
func (h *Hand) Draw(shoe *deck.Shoe, observe CardObserver) {
	card := shoe.Draw()
	h.cards = append(h.cards, card)

	holeCard := h.hidden && len(h.cards) == 2
	if !holeCard && observe != nil {
		observe(card)
	}

	if h.Total() >= 21 {
		h.standing = true
	}
}

// Unhide reveals the dealer's hole card and reports it to the observer.
// Calling it again is a no-op; the hook fires exactly once per card.
func (h *Hand) Unhide(observe CardObserver) {
	if !h.hidden {
		return
	}
	h.hidden = false
	if observe != nil && len(h.cards) >= 2 {
		observe(h.cards[1])
	}
}

// Total returns the hand's blackjack total. Aces are demoted from 11 to 1
// one at a time until the total no longer exceeds 21, so the reported total
// is always the highest value not over 21 when one exists. A consequence is
// that a soft 17 reads as plain 17, which is what stops the dealer hitting
// on it. While the hole card is hidden only the upcard counts.
func (h *Hand) Total() int {
	if h.hidden {
		return h.cards[0].Value()
	}

	total, _ := h.reduced()
	return total
}

// IsSoft returns true if the hand holds at least one Ace still counted as 11
func (h *Hand) IsSoft() bool {
	if h.hidden {
		return h.cards[0].IsAce()
	}
	_, aces := h.reduced()
	return aces > 0
}

// reduced sums the hand and demotes Aces as needed, returning the total and
// the number of Aces still worth 11.
func (h *Hand) reduced() (total, aces int) {
	for _, c := range h.cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces
}

// IsBlackjack returns true if the hand totals 21 with exactly two cards
func (h *Hand) IsBlackjack() bool {
	return h.Total() == 21 && len(h.cards) == 2
}

// IsBust returns true if the hand totals more than 21. A busted hand is
// done, so checking also forces standing.
func (h *Hand) IsBust() bool {
	if h.Total() > 21 {
		h.standing = true
		return true
	}
	return false
}

// CanSplit returns true if the hand is exactly two cards of equal rank
func (h *Hand) CanSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

// DoubleDown marks the hand as doubled, doubling its payout weight. The
// round engine is responsible for placing the matching bet, drawing exactly
// one card and standing the hand.
func (h *Hand) DoubleDown() {
	h.multiplier = 2
}

// Stand ends the hand's turn
func (h *Hand) Stand() {
	h.standing = true
}

// Standing returns true once the hand accepts no further cards
func (h *Hand) Standing() bool {
	return h.standing
}

// Multiplier returns the payout weight: 1 normally, 2 after a double-down
func (h *Hand) Multiplier() int {
	return h.multiplier
}

// Cards returns the cards in the hand in deal order
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// Upcard returns the first (always visible) card of the hand
func (h *Hand) Upcard() deck.Card {
	return h.cards[0]
}

// IsDealer returns true for the dealer's hand
func (h *Hand) IsDealer() bool {
	return h.dealer
}

// String renders the hand for logs, masking the hole card while hidden
func (h *Hand) String() string {
	var b strings.Builder
	for i, c := range h.cards {
		if i > 0 {
			b.WriteByte(' ')
		}
		if h.hidden && i == 1 {
			b.WriteString("[??]")
		} else {
			b.WriteString(c.String())
		}
	}
	return b.String()
}
