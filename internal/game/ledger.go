package game

// MaxSplits caps split actions per round. Three splits means at most eight
// terminal hands.
const MaxSplits = 3

// Ledger owns the bankroll, the current bet and the per-round split budget.
// Every bet-consuming action in a round goes through PlaceBet, so a failed
// action never leaves the balance partially mutated. The split counter is
// centralised here rather than per hand because the cap applies globally
// across all recursive branches of one round.
type Ledger struct {
	balance int
	bet     int
	splits  int
}

// NewLedger creates a ledger with the given starting balance.
func NewLedger(balance int) *Ledger {
	return &Ledger{balance: balance}
}

// SetBet sets the bet for the coming round. Non-positive amounts are
// rejected without touching the bet. Amounts over the balance clamp the bet
// to the balance; that still reports failure so callers can tell the wager
// was reduced.
func (l *Ledger) SetBet(amount int) bool {
	if amount <= 0 {
		return false
	}
	if amount > l.balance {
		l.bet = l.balance
		return false
	}
	l.bet = amount
	return true
}

// PlaceBet debits the current bet from the balance. This is the single
// mutation point for both the opening wager and the matching wagers behind
// double-downs and splits. Returns false, leaving the balance untouched, if
// the balance cannot cover the bet.
func (l *Ledger) PlaceBet() bool {
	if l.bet <= l.balance {
		l.balance -= l.bet
		return true
	}
	return false
}

// CanPlaceBet reports whether PlaceBet would succeed, without side effects
func (l *Ledger) CanPlaceBet() bool {
	return l.balance >= l.bet && l.bet > 0
}

// IncrementSplit consumes one unit of the round's split budget
func (l *Ledger) IncrementSplit() {
	l.splits++
}

// CanIncrementSplit reports whether the round has split budget left
func (l *Ledger) CanIncrementSplit() bool {
	return l.splits < MaxSplits
}

// Settle credits a round's payout to the balance and resets the split
// budget for the next round. Payouts are additions to the balance, not net
// profit; stakes were already debited at wager time.
func (l *Ledger) Settle(amount int) {
	l.balance += amount
	l.splits = 0
}

// Balance returns the current bankroll
func (l *Ledger) Balance() int {
	return l.balance
}

// Bet returns the current bet
func (l *Ledger) Bet() int {
	return l.bet
}

// Splits returns how many splits have happened this round
func (l *Ledger) Splits() int {
	return l.splits
}
