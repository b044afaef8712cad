package blackjack

import (
	"errors"
	"fmt"
)

// Ledger tracks the player's chips and wager
type Ledger struct {
	chipBalance     int
	currentBet      int
	pendingBetInput string
	startingChips   int
}

// NewLedger returns a ledger holding the starting stake
func NewLedger(startingChips int) *Ledger {
	return &Ledger{
		chipBalance:   startingChips,
		startingChips: startingChips,
	}
}

// ChipBalance returns the chips not currently at stake
func (l *Ledger) ChipBalance() int {
	return l.chipBalance
}

// CurrentBet returns the active wager, or 0 if there isn't one
func (l *Ledger) CurrentBet() int {
	return l.currentBet
}

// PendingBetInput returns the raw bet input
func (l *Ledger) PendingBetInput() string {
	return l.pendingBetInput
}

// UpdatePendingBet stores raw bet input
// Empty input clears the pending bet. Anything that is not a non-negative
// integer is rejected and the pending input is left alone.
func (l *Ledger) UpdatePendingBet(raw string) error {
	if _, err := ParseBet(raw); err != nil {
		var betErr *InvalidBetError
		if errors.As(err, &betErr) && betErr.Reason == BetRejectionEmpty {
			l.pendingBetInput = ""
			return nil
		}

		return err
	}

	l.pendingBetInput = raw
	return nil
}

// ConfirmBet moves the pending bet into play and returns the amount
func (l *Ledger) ConfirmBet() (int, error) {
	if l.currentBet > 0 {
		return 0, &InvalidBetError{Amount: l.currentBet, Balance: l.chipBalance, Reason: BetRejectionBetActive}
	}

	amount, err := ParseBet(l.pendingBetInput)
	if err != nil {
		return 0, err
	}

	if err := ValidateBet(amount, l.chipBalance); err != nil {
		return 0, err
	}

	l.chipBalance -= amount
	l.currentBet = amount
	l.pendingBetInput = ""

	return amount, nil
}

// Settle pays out the active bet and returns the amount credited
// The stake was deducted when the bet was confirmed, so a win pays double and a push returns it.
func (l *Ledger) Settle(outcome Outcome) (int, error) {
	if l.currentBet <= 0 {
		return 0, ErrNoBetPlaced
	}

	var payout int
	switch outcome {
	case OutcomePlayerWin:
		payout = l.currentBet * 2
	case OutcomePush:
		payout = l.currentBet
	case OutcomeDealerWin:
		payout = 0
	default:
		return 0, fmt.Errorf("cannot settle outcome: %q", string(outcome))
	}

	l.chipBalance += payout
	l.currentBet = 0

	return payout, nil
}

// Refund returns the active stake to the balance without an outcome
func (l *Ledger) Refund() int {
	refund := l.currentBet
	l.chipBalance += refund
	l.currentBet = 0

	return refund
}

// Reset restores the starting stake
func (l *Ledger) Reset() {
	l.chipBalance = l.startingChips
	l.currentBet = 0
	l.pendingBetInput = ""
}
