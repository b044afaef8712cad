package blackjack

import (
	"errors"
	"fmt"
)

// ErrInvalidBet is returned when a bet is non-numeric, non-positive, or exceeds the balance
var ErrInvalidBet = errors.New("invalid bet")

// ErrNoBetPlaced is returned when a round action is attempted without an active bet
var ErrNoBetPlaced = errors.New("no bet has been placed")

// ErrEmptyDeck is returned when the deck runs out of cards during a round
var ErrEmptyDeck = errors.New("the deck is empty")

// ErrInvalidPhase is returned when a command is invoked outside of its phase
var ErrInvalidPhase = errors.New("invalid phase")

// BetRejection is the reason a bet was rejected
type BetRejection string

// BetRejection constants
const (
	BetRejectionEmpty          BetRejection = "empty"
	BetRejectionNotNumeric     BetRejection = "not-numeric"
	BetRejectionNotPositive    BetRejection = "not-positive"
	BetRejectionExceedsBalance BetRejection = "exceeds-balance"
	BetRejectionBetActive      BetRejection = "bet-active"
)

// InvalidBetError describes a rejected bet
type InvalidBetError struct {
	Input   string
	Amount  int
	Balance int
	Reason  BetRejection
}

func (e *InvalidBetError) Error() string {
	switch e.Reason {
	case BetRejectionEmpty:
		return "bet is required"
	case BetRejectionNotNumeric:
		return fmt.Sprintf("bet of %q is not a whole number", e.Input)
	case BetRejectionNotPositive:
		return "bet must be greater than zero"
	case BetRejectionExceedsBalance:
		return fmt.Sprintf("bet of ${%d} exceeds your balance of ${%d}", e.Amount, e.Balance)
	case BetRejectionBetActive:
		return fmt.Sprintf("a bet of ${%d} is already active", e.Amount)
	}

	return ErrInvalidBet.Error()
}

// Unwrap allows errors.Is(err, ErrInvalidBet)
func (e *InvalidBetError) Unwrap() error {
	return ErrInvalidBet
}

// PhaseError is returned when an action is not allowed in the current phase
type PhaseError struct {
	Action Action
	Phase  Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("cannot %s from phase: %s", e.Action, e.Phase)
}

// Unwrap allows errors.Is(err, ErrInvalidPhase)
func (e *PhaseError) Unwrap() error {
	return ErrInvalidPhase
}
