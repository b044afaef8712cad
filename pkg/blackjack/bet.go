package blackjack

import (
	"strconv"
	"strings"
)

// ParseBet parses raw bet input into a non-negative amount
// Rejections are returned as an *InvalidBetError.
func ParseBet(raw string) (int, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return 0, &InvalidBetError{Input: raw, Reason: BetRejectionEmpty}
	}

	amount, err := strconv.Atoi(input)
	if err != nil {
		return 0, &InvalidBetError{Input: raw, Reason: BetRejectionNotNumeric}
	}

	if amount < 0 {
		return 0, &InvalidBetError{Input: raw, Amount: amount, Reason: BetRejectionNotPositive}
	}

	return amount, nil
}

// ValidateBet checks a parsed amount against the balance
func ValidateBet(amount, balance int) error {
	if amount <= 0 {
		return &InvalidBetError{Input: strconv.Itoa(amount), Amount: amount, Balance: balance, Reason: BetRejectionNotPositive}
	}

	if amount > balance {
		return &InvalidBetError{Input: strconv.Itoa(amount), Amount: amount, Balance: balance, Reason: BetRejectionExceedsBalance}
	}

	return nil
}
