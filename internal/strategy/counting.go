package strategy

import (
	"github.com/mfields/blackjacksim/internal/deck"
	"github.com/mfields/blackjacksim/internal/game"
)

func init() {
	RegisterCounting("none", func() game.CountingStrategy { return NoCount{} })
	RegisterCounting("hi-lo", func() game.CountingStrategy { return HiLo{} })
	RegisterCounting("hi-opt-1", func() game.CountingStrategy { return HiOpt1{} })
	RegisterCounting("hi-opt-2", func() game.CountingStrategy { return HiOpt2{} })
	RegisterCounting("zen", func() game.CountingStrategy { return Zen{} })
	RegisterCounting("halves", func() game.CountingStrategy { return Halves{} })
	RegisterCounting("omega-2", func() game.CountingStrategy { return Omega2{} })
}

// Counting systems keyed by blackjack card value (2-9, 10 for all tens and
// faces, 11 for Aces). Values absent from a table count as 0.

// NoCount never counts; pairs with flat betting for baseline runs.
type NoCount struct{}

func (NoCount) Count(card deck.Card) float64 { return 0 }
func (NoCount) Name() string                 { return "No Card Count" }
func (NoCount) Description() string          { return "No card counting." }

// HiLo is the classic Hi-Lo system.
type HiLo struct{}

var hiLo = map[int]float64{
	2: 1, 3: 1, 4: 1, 5: 1, 6: 1,
	10: -1, 11: -1,
}

func (HiLo) Count(card deck.Card) float64 { return hiLo[card.Value()] }
func (HiLo) Name() string                 { return "Hi-Lo Count" }
func (HiLo) Description() string          { return "2-6 = +1 | 7-9 = 0 | 10-Ace = -1." }

// HiOpt1 is the Hi-Opt I system; Aces are neutral.
type HiOpt1 struct{}

var hiOpt1 = map[int]float64{
	3: 1, 4: 1, 5: 1, 6: 1,
	10: -1,
}

func (HiOpt1) Count(card deck.Card) float64 { return hiOpt1[card.Value()] }
func (HiOpt1) Name() string                 { return "Hi-Opt I Count" }
func (HiOpt1) Description() string          { return "3-6 = +1 | 2/7-9/Ace = 0 | 10-K = -1." }

// HiOpt2 is the Hi-Opt II system.
type HiOpt2 struct{}

var hiOpt2 = map[int]float64{
	4: 2, 5: 2,
	2: 1, 3: 1, 6: 1, 7: 1,
	10: -2,
}

func (HiOpt2) Count(card deck.Card) float64 { return hiOpt2[card.Value()] }
func (HiOpt2) Name() string                 { return "Hi-Opt II Count" }
func (HiOpt2) Description() string          { return "2-3/6-7 = +1 | 4-5 = +2 | 8-9/Ace = 0 | 10-K = -2." }

// Zen is the Zen Count; like Hi-Opt II but Aces count -1.
type Zen struct{}

var zen = map[int]float64{
	4: 2, 5: 2,
	2: 1, 3: 1, 6: 1, 7: 1,
	11: -1,
	10: -2,
}

func (Zen) Count(card deck.Card) float64 { return zen[card.Value()] }
func (Zen) Name() string                 { return "Zen Count" }
func (Zen) Description() string {
	return "2-3/6-7 = +1 | 4-5 = +2 | 8-9 = 0 | Ace = -1 | 10-K = -2."
}

// Halves is the Wong Halves system; the only fractional counter here.
type Halves struct{}

var halves = map[int]float64{
	5: 1.5,
	3: 1, 4: 1, 6: 1,
	2: 0.5, 7: 0.5,
	9: -0.5, 11: -0.5,
	10: -1,
}

func (Halves) Count(card deck.Card) float64 { return halves[card.Value()] }
func (Halves) Name() string                 { return "Halves Count" }
func (Halves) Description() string {
	return "2/7 = +0.5 | 3-4/6 = +1 | 5 = +1.5 | 8 = 0 | 9/Ace = -0.5 | 10-K = -1."
}

// Omega2 is the Omega II system.
type Omega2 struct{}

var omega2 = map[int]float64{
	4: 2, 5: 2,
	2: 1, 3: 1, 6: 1, 7: 1,
	10: -2,
}

func (Omega2) Count(card deck.Card) float64 { return omega2[card.Value()] }
func (Omega2) Name() string                 { return "Omega II Count" }
func (Omega2) Description() string {
	return "2-3/6-7 = +1 | 4-5 = +2 | 8-9/Ace = 0 | 10-K = -2."
}
