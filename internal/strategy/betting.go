package strategy

import "github.com/mfields/blackjacksim/internal/game"

func init() {
	RegisterBetting("flat", func() game.BettingStrategy { return Flat{} })
	RegisterBetting("sudden-shift", func() game.BettingStrategy { return SuddenShift{} })
	RegisterBetting("linear-scale", func() game.BettingStrategy { return LinearScale{} })
	RegisterBetting("time-bider", func() game.BettingStrategy { return TimeBider{} })
}

// Flat always bets the base amount.
type Flat struct{}

func (Flat) Multiplier(runningCount float64) float64 { return 1 }
func (Flat) Name() string                            { return "Flat Betting" }
func (Flat) Description() string {
	return "Always bets the base amount, regardless of the count."
}

// SuddenShift bets five times the base once the count reaches +5 and a
// fifth of it at -5 or below.
type SuddenShift struct{}

func (SuddenShift) Multiplier(runningCount float64) float64 {
	switch {
	case runningCount >= 5:
		return 5
	case runningCount <= -5:
		return 1.0 / 5
	default:
		return 1
	}
}
func (SuddenShift) Name() string { return "Sudden Shift Betting" }
func (SuddenShift) Description() string {
	return "Bets 5x the base bet if count is 5 or more, and 1/5 of the base bet if count is -5 or less."
}

// LinearScale adjusts the bet by a twentieth of the base per point of count.
type LinearScale struct{}

func (LinearScale) Multiplier(runningCount float64) float64 {
	return 1 + runningCount/20
}
func (LinearScale) Name() string { return "Linear Scale Betting" }
func (LinearScale) Description() string {
	return "Bet has 1/20th added/removed from it for every point on the count."
}

// TimeBider bets the minimum until the count climbs above 10, then bets
// twenty times the base. Its zero multiplier is floored to a 1-chip bet by
// the driver.
type TimeBider struct{}

func (TimeBider) Multiplier(runningCount float64) float64 {
	if runningCount > 10 {
		return 20
	}
	return 0
}
func (TimeBider) Name() string { return "Time Bider" }
func (TimeBider) Description() string {
	return "Bets 1 chip, until count is above 10. Then bets 20x the base bet."
}
