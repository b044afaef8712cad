package blackjack

// Phase is the phase of the current round
type Phase string

// Phase constants
const (
	// PhaseAwaitingBet is before a bet has been confirmed
	PhaseAwaitingBet Phase = "awaiting-bet"

	// PhasePlayerTurn means the cards are dealt and the player may hit or stand
	PhasePlayerTurn Phase = "player-turn"

	// PhaseDealerTurn means the dealer is drawing. It never outlives Stand()
	PhaseDealerTurn Phase = "dealer-turn"

	// PhaseSettled means the outcome is known and the wager has been paid out
	PhaseSettled Phase = "settled"
)

func (p Phase) String() string {
	return string(p)
}

// Outcome is the result of a settled round
type Outcome string

// Outcome constants
const (
	OutcomeNone      Outcome = ""
	OutcomePlayerWin Outcome = "player-win"
	OutcomeDealerWin Outcome = "dealer-win"
	OutcomePush      Outcome = "push"
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerWin:
		return "Player wins"
	case OutcomeDealerWin:
		return "Dealer wins"
	case OutcomePush:
		return "Push"
	}

	return "Pending"
}

// compareHands decides the outcome once the dealer has finished drawing
func compareHands(playerScore, dealerScore int) Outcome {
	switch {
	case dealerScore > Blackjack || playerScore > dealerScore:
		return OutcomePlayerWin
	case playerScore < dealerScore:
		return OutcomeDealerWin
	}

	return OutcomePush
}
