package blackjack

import (
	"fmt"
	"strings"
)

// Action is a command the presentation layer can send to the game
type Action string

// Action constants
const (
	ActionBet        Action = "bet"
	ActionConfirmBet Action = "confirm-bet"
	ActionHit        Action = "hit"
	ActionStand      Action = "stand"
	ActionReset      Action = "reset"
)

// ActionDeal names Deal() in errors
// Clients never send it; a round is dealt by confirm-bet.
const ActionDeal Action = "deal"

func (a Action) String() string {
	return string(a)
}

// ActionFromString returns an action from its name
func ActionFromString(action string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(action))); a {
	case ActionBet, ActionConfirmBet, ActionHit, ActionStand, ActionReset:
		return a, nil
	}

	return "", fmt.Errorf("invalid action: %s", action)
}

// Actions returns the actions that are valid in the current phase
func (g *Game) Actions() []Action {
	switch g.phase {
	case PhaseAwaitingBet, PhaseSettled:
		return []Action{ActionBet, ActionConfirmBet, ActionReset}
	case PhasePlayerTurn:
		return []Action{ActionHit, ActionStand, ActionReset}
	}

	return []Action{ActionReset}
}
