package game

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/mfields/blackjacksim/internal/deck"
)

// Engine resolves rounds of blackjack. It owns no game state of its own:
// the shoe and ledger are passed in per round, decisions come from the
// selection strategy, and every card that becomes visible is reported to
// the observer so the driver can keep its running count.
type Engine struct {
	rules     Rules
	selection SelectionStrategy
	observe   CardObserver
	logger    *log.Logger
}

// NewEngine creates a round engine playing under the given rules.
func NewEngine(rules Rules, selection SelectionStrategy, observe CardObserver, logger *log.Logger) *Engine {
	return &Engine{
		rules:     rules,
		selection: selection,
		observe:   observe,
		logger:    logger,
	}
}

// handNode is the result of resolving one hand: either a terminal hand or,
// after a split, a pair of sub-results which may themselves contain further
// splits. The fixed two-way shape keeps nesting unambiguous; flatten
// reduces it to an ordered list before scoring.
type handNode struct {
	hand     *Hand
	children []*handNode
}

// flatten appends the node's terminal hands to out in resolution order.
func (n *handNode) flatten(out []*Hand) []*Hand {
	if n.hand != nil {
		return append(out, n.hand)
	}
	for _, c := range n.children {
		out = c.flatten(out)
	}
	return out
}

// PlayRound plays one complete round against the shoe and returns the
// payout to credit to the ledger. The opening wager must already have been
// placed by the caller; the payout is an addition to the balance, not net
// profit.
func (e *Engine) PlayRound(shoe *deck.Shoe, ledger *Ledger) int {
	player := NewHand(shoe, e.observe)
	dealer := NewDealerHand(shoe, e.observe)

	e.logger.Debug("round dealt", "player", player.String(), "dealer", dealer.String())

	hands := e.playHand(player, dealer, shoe, ledger).flatten(nil)

	return e.settle(hands, dealer, shoe, ledger)
}

// settle runs the round-level payout protocol over the flattened terminal
// hands: settle blackjacks first, bail out on a dealer blackjack, run the
// dealer, then compare the survivors.
func (e *Engine) settle(hands []*Hand, dealer *Hand, shoe *deck.Shoe, ledger *Ledger) int {
	// Bust has priority over blackjack: a split hand can reach 21 in two
	// cards but a busted one is settled as a loss regardless.
	var busted, blackjacks, others []*Hand
	for _, h := range hands {
		switch {
		case h.IsBust():
			busted = append(busted, h)
		case h.IsBlackjack():
			blackjacks = append(blackjacks, h)
		default:
			others = append(others, h)
		}
	}

	dealer.Unhide(e.observe)

	e.logger.Debug("settling",
		"hands", len(hands),
		"busted", len(busted),
		"blackjacks", len(blackjacks),
		"dealer", dealer.String())

	payout := 0
	for range blackjacks {
		if dealer.IsBlackjack() {
			payout += e.pay(ledger.Bet(), 1, e.rules.TiePayout)
		} else {
			payout += e.pay(ledger.Bet(), 1, e.rules.BlackjackPayout)
		}
	}

	if len(blackjacks) == 0 && dealer.IsBlackjack() {
		e.logger.Debug("dealer blackjack", "dealer", dealer.String())
		return payout
	}

	if len(others) == 0 {
		return payout
	}

	if bustPayout := e.dealerPlay(dealer, others, shoe, ledger); bustPayout != 0 {
		e.logger.Debug("dealer bust", "dealer", dealer.String(), "total", dealer.Total())
		return payout + bustPayout
	}

	for _, h := range others {
		var ratio float64
		switch {
		case h.Total() > dealer.Total():
			ratio = e.rules.WinPayout
		case h.Total() == dealer.Total():
			ratio = e.rules.TiePayout
		default:
			ratio = e.rules.LossPayout
		}
		payout += e.pay(ledger.Bet(), h.Multiplier(), ratio)
	}

	return payout
}

// playHand runs the turn state machine for one hand until it (or, after a
// split, every descendant hand) is standing. Busting or reaching 21 stands
// the hand from inside Draw. A rejected double-down or split raises the
// failed flag, which forces the next decision to the deterministic
// fallback: stand.
func (e *Engine) playHand(hand, dealer *Hand, shoe *deck.Shoe, ledger *Ledger) *handNode {
	failed := false

	for !hand.Standing() {
		action := e.selection.Select(hand, dealer)
		if failed {
			action = Stand
		}

		switch action {
		case Hit:
			hand.Draw(shoe, e.observe)

		case DoubleDown:
			if len(hand.Cards()) == 2 && ledger.PlaceBet() {
				hand.Draw(shoe, e.observe)
				hand.DoubleDown()
				hand.Stand()
			} else {
				failed = true
			}

		case Split:
			if node := e.split(hand, dealer, shoe, ledger); node != nil {
				return node
			}
			failed = true

		case Stand:
			hand.Stand()
		}
	}

	return &handNode{hand: hand}
}

// split attempts to split the hand, resolving both descendants through the
// full turn state machine. Returns nil without mutating the ledger if the
// hand is ineligible, the round's split budget is exhausted, or the
// matching bet cannot be covered.
func (e *Engine) split(hand, dealer *Hand, shoe *deck.Shoe, ledger *Ledger) *handNode {
	if !hand.CanSplit() || !ledger.CanIncrementSplit() || !ledger.CanPlaceBet() {
		return nil
	}
	if !ledger.PlaceBet() {
		return nil
	}
	ledger.IncrementSplit()

	e.logger.Debug("split", "hand", hand.String(), "splits", ledger.Splits())

	first := newSplitHand(hand.Cards()[0], shoe, e.observe)
	second := newSplitHand(hand.Cards()[1], shoe, e.observe)

	return &handNode{children: []*handNode{
		e.playHand(first, dealer, shoe, ledger),
		e.playHand(second, dealer, shoe, ledger),
	}}
}

// dealerPlay runs the dealer's fixed policy: draw while below the stand
// threshold. Soft totals get no special treatment; Total already reports a
// soft 17 as 17. If the dealer busts, every surviving player hand is paid
// at the win ratio and that payout is returned; otherwise 0.
func (e *Engine) dealerPlay(dealer *Hand, surviving []*Hand, shoe *deck.Shoe, ledger *Ledger) int {
	for dealer.Total() < e.rules.DealerStand {
		dealer.Draw(shoe, e.observe)
		if dealer.IsBust() {
			payout := 0
			for _, h := range surviving {
				payout += e.pay(ledger.Bet(), h.Multiplier(), e.rules.WinPayout)
			}
			return payout
		}
	}
	return 0
}

// pay applies a payout ratio to a hand's stake, rounding to the nearest
// unit. Only the blackjack and push ratios can produce fractions; rounding
// the rest is a no-op.
func (e *Engine) pay(bet, multiplier int, ratio float64) int {
	return int(math.Round(float64(bet*multiplier) * ratio))
}
