package blackjack

import "blackjack-server/pkg/deck"

// Blackjack is the best possible score
const Blackjack = 21

// UnknownScore is reported for a hand that is hidden from the player
const UnknownScore = -1

// HandValue returns the score of the hand
// Aces count as 11 and are downgraded to 1, one at a time, while the total is over 21.
// The result may still be over 21 if every ace has been downgraded.
func HandValue(hand deck.Hand) int {
	total, _ := handValue(hand)
	return total
}

// IsBust returns true if the hand is over 21
func IsBust(hand deck.Hand) bool {
	return HandValue(hand) > Blackjack
}

// IsSoft returns true if an ace in the hand is still counted as 11
func IsSoft(hand deck.Hand) bool {
	_, softAces := handValue(hand)
	return softAces > 0
}

func handValue(hand deck.Hand) (total int, softAces int) {
	for _, card := range hand {
		total += card.BaseValue()
	}

	softAces = hand.CountRank(deck.Ace)
	for total > Blackjack && softAces > 0 {
		total -= 10
		softAces--
	}

	return total, softAces
}
