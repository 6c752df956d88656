package game

// Rules carries the fixed numeric parameters of the table. They are passed
// to the round engine at construction instead of living in a process-wide
// constants module.
type Rules struct {
	BlackjackPayout float64 // paid on a natural 21 against a non-blackjack dealer
	WinPayout       float64 // paid on beating the dealer or a dealer bust
	TiePayout       float64 // stake returned on a push
	LossPayout      float64
	DealerStand     int // dealer draws while below this total
}

// DefaultRules returns the standard table: blackjack pays 3:2 on the stake
// (2.5x including its return), wins pay even money, dealer stands on 17.
func DefaultRules() Rules {
	return Rules{
		BlackjackPayout: 2.5,
		WinPayout:       2,
		TiePayout:       1,
		LossPayout:      0,
		DealerStand:     17,
	}
}
