package strategy

import "github.com/mfields/blackjacksim/internal/game"

func init() {
	RegisterSelection("always-hit", func() game.SelectionStrategy { return AlwaysHit{} })
	RegisterSelection("always-stand", func() game.SelectionStrategy { return AlwaysStand{} })
	RegisterSelection("max-caution", func() game.SelectionStrategy { return MaxCaution{} })
	RegisterSelection("dealer-mimic", func() game.SelectionStrategy { return DealerMimic{} })
}

// AlwaysHit hits every turn, relying on landing exactly 21.
type AlwaysHit struct{}

func (AlwaysHit) Select(hand, dealerHand *game.Hand) game.Action { return game.Hit }
func (AlwaysHit) Name() string                                   { return "Always Hit" }
func (AlwaysHit) Description() string {
	return "Always hits, regardless of the hand or dealer's hand."
}

// AlwaysStand stands every turn.
type AlwaysStand struct{}

func (AlwaysStand) Select(hand, dealerHand *game.Hand) game.Action { return game.Stand }
func (AlwaysStand) Name() string                                   { return "Always Stand" }
func (AlwaysStand) Description() string {
	return "Always stands, regardless of the hand or dealer's hand."
}

// MaxCaution hits on 11 or less and stands on anything higher, so it can
// never bust.
type MaxCaution struct{}

func (MaxCaution) Select(hand, dealerHand *game.Hand) game.Action {
	if hand.Total() <= 11 {
		return game.Hit
	}
	return game.Stand
}
func (MaxCaution) Name() string { return "Max Caution" }
func (MaxCaution) Description() string {
	return "Hits on 11 or less, stands on 12 or more. Always avoids busting."
}

// DealerMimic plays the dealer's own policy: hit on 16 or less, stand on 17
// or more.
type DealerMimic struct{}

func (DealerMimic) Select(hand, dealerHand *game.Hand) game.Action {
	if hand.Total() <= 16 {
		return game.Hit
	}
	return game.Stand
}
func (DealerMimic) Name() string { return "Dealer Mimic" }
func (DealerMimic) Description() string {
	return "Hits on 16 or less, stands on 17 or more."
}
