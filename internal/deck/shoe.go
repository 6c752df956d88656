package deck

import (
	rand "math/rand/v2"
)

// DeckSize is the number of cards in one standard deck.
const DeckSize = 52

// Shoe holds the working multiset of cards for one game, built from one or
// more standard 52-card decks. Cards are drawn uniformly at random without
// replacement, which models a shuffled shoe without maintaining an ordered
// sequence. When the shoe runs dry it silently refills itself with a full
// complement of fresh decks; the freshness flag records that this has
// happened, because a refill invalidates any running count built against
// the shoe.
type Shoe struct {
	cards []Card
	decks int
	fresh bool
	rng   *rand.Rand
}

// NewShoe creates a shoe holding decks standard decks, drawing randomness
// from rng.
func NewShoe(decks int, rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards: make([]Card, 0, decks*DeckSize),
		decks: decks,
		fresh: true,
		rng:   rng,
	}
	s.refill()
	return s
}

// NewShoeOf builds a shoe preloaded with exactly the given cards instead of
// full decks. Once those run out it refills with decks standard decks like
// any other shoe. Useful for scripting deals.
func NewShoeOf(decks int, rng *rand.Rand, cards ...Card) *Shoe {
	return &Shoe{
		cards: append([]Card(nil), cards...),
		decks: decks,
		fresh: true,
		rng:   rng,
	}
}

// Draw removes and returns a uniformly random card from the shoe. An empty
// shoe refills itself first and is marked no longer fresh; a draw therefore
// never fails.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		s.refill()
		s.fresh = false
	}

	i := s.rng.IntN(len(s.cards))
	card := s.cards[i]
	s.cards[i] = s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card
}

// refill appends one full set of the shoe's decks.
func (s *Shoe) refill() {
	for d := 0; d < s.decks; d++ {
		for rank := Ace; rank <= King; rank++ {
			for suit := Hearts; suit <= Spades; suit++ {
				s.cards = append(s.cards, NewCard(rank, suit))
			}
		}
	}
}

// IsFresh returns true if the shoe has never refilled itself since
// construction. Once false it stays false for the life of the shoe.
func (s *Shoe) IsFresh() bool {
	return s.fresh
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Decks returns the number of standard decks the shoe was built from
func (s *Shoe) Decks() int {
	return s.decks
}
