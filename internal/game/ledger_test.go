package game

import "testing"

func TestLedgerSetBet(t *testing.T) {
	l := NewLedger(100)

	if l.SetBet(0) {
		t.Error("zero bet must be rejected")
	}
	if l.SetBet(-5) {
		t.Error("negative bet must be rejected")
	}
	if l.Bet() != 0 {
		t.Errorf("rejected bets must not mutate, Bet() = %d", l.Bet())
	}

	if !l.SetBet(40) {
		t.Error("valid bet rejected")
	}
	if l.Bet() != 40 {
		t.Errorf("Bet() = %d, want 40", l.Bet())
	}

	// Over-balance bets clamp to the balance and report failure.
	if l.SetBet(150) {
		t.Error("over-balance bet must report failure")
	}
	if l.Bet() != 100 {
		t.Errorf("Bet() = %d, want clamped 100", l.Bet())
	}
}

func TestLedgerPlaceBet(t *testing.T) {
	l := NewLedger(100)
	l.SetBet(60)

	if !l.PlaceBet() {
		t.Fatal("covered bet must place")
	}
	if l.Balance() != 40 {
		t.Errorf("Balance() = %d, want 40", l.Balance())
	}

	// The matching bet for a double-down no longer fits.
	if l.CanPlaceBet() {
		t.Error("CanPlaceBet() must be false with 40 against a 60 bet")
	}
	if l.PlaceBet() {
		t.Error("uncovered bet must not place")
	}
	if l.Balance() != 40 {
		t.Errorf("failed placement must not touch balance, got %d", l.Balance())
	}
}

func TestLedgerCanPlaceBetRequiresPositiveBet(t *testing.T) {
	l := NewLedger(100)
	if l.CanPlaceBet() {
		t.Error("no bet set, CanPlaceBet() must be false")
	}
}

func TestLedgerSplitBudget(t *testing.T) {
	l := NewLedger(10_000)
	l.SetBet(100)

	for i := 0; i < MaxSplits; i++ {
		if !l.CanIncrementSplit() {
			t.Fatalf("split %d should be allowed", i+1)
		}
		l.IncrementSplit()
	}

	// A fourth split is rejected regardless of hand eligibility or balance.
	if l.CanIncrementSplit() {
		t.Error("fourth split must be rejected")
	}

	// Settling the round resets the budget.
	l.Settle(0)
	if !l.CanIncrementSplit() {
		t.Error("split budget must reset at round end")
	}
}

func TestLedgerSettle(t *testing.T) {
	l := NewLedger(100)
	l.SetBet(100)
	l.PlaceBet()
	if l.Balance() != 0 {
		t.Fatalf("Balance() = %d, want 0", l.Balance())
	}

	l.Settle(250)
	if l.Balance() != 250 {
		t.Errorf("Balance() = %d, want 250", l.Balance())
	}
}
