package blackjack

import "blackjack-server/pkg/deck"

// CardState is how a single card is shown to the player
// A face-down card carries no rank or suit.
type CardState struct {
	Rank     string `json:"rank,omitempty"`
	Suit     string `json:"suit,omitempty"`
	Value    int    `json:"value,omitempty"`
	Image    string `json:"image"`
	FaceDown bool   `json:"faceDown"`
}

// HandState is how a hand is shown to the player
type HandState struct {
	Cards []CardState `json:"cards"`
	Score int         `json:"score"`
	Soft  bool        `json:"soft"`
	Bust  bool        `json:"bust"`
}

// State is the player's view of the game
type State struct {
	Name            string        `json:"name"`
	RoundID         string        `json:"roundId,omitempty"`
	Phase           Phase         `json:"phase"`
	Outcome         Outcome       `json:"outcome,omitempty"`
	Player          HandState     `json:"player"`
	Dealer          HandState     `json:"dealer"`
	ChipBalance     int           `json:"chipBalance"`
	CurrentBet      int           `json:"currentBet"`
	PendingBetInput string        `json:"pendingBetInput"`
	CardsLeft       int           `json:"cardsLeft"`
	Actions         []Action      `json:"actions"`
	Log             []*LogMessage `json:"log"`
}

// State returns the current state of the game as the player is allowed to see it
func (g *Game) State() *State {
	return &State{
		Name:            g.Name(),
		RoundID:         g.roundID,
		Phase:           g.phase,
		Outcome:         g.outcome,
		Player:          newHandState(g.playerHand, -1),
		Dealer:          g.dealerState(),
		ChipBalance:     g.ledger.ChipBalance(),
		CurrentBet:      g.ledger.CurrentBet(),
		PendingBetInput: g.ledger.PendingBetInput(),
		CardsLeft:       g.CardsLeft(),
		Actions:         g.Actions(),
		Log:             g.LogMessages(),
	}
}

func (g *Game) dealerState() HandState {
	if !g.DealerConcealed() {
		return newHandState(g.dealerHand, -1)
	}

	hs := newHandState(g.dealerHand, holeCard)
	hs.Score = UnknownScore
	hs.Soft = false
	hs.Bust = false

	return hs
}

// newHandState renders the hand, hiding the card at index hidden (-1 for none)
func newHandState(hand deck.Hand, hidden int) HandState {
	cards := make([]CardState, len(hand))
	for i, card := range hand {
		if i == hidden {
			cards[i] = CardState{
				Image:    deck.FaceDownImageID,
				FaceDown: true,
			}

			continue
		}

		cards[i] = CardState{
			Rank:  card.RankName(),
			Suit:  string(card.Suit),
			Value: card.BaseValue(),
			Image: card.ImageID(),
		}
	}

	return HandState{
		Cards: cards,
		Score: HandValue(hand),
		Soft:  IsSoft(hand),
		Bust:  IsBust(hand),
	}
}
