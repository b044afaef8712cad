package blackjack

import (
	"blackjack-server/pkg/snapshot"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGame_State_hands(t *testing.T) {
	g := newTestGame(t)
	placeBet(t, g, 100)

	snapshot.ValidateSnapshot(t, g.State().Dealer)

	assert.NoError(t, g.Stand())
	state := g.State()
	snapshot.ValidateSnapshot(t, state.Player)
	snapshot.ValidateSnapshot(t, state.Dealer)
}

func TestGame_State(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t)

	state := g.State()
	a.Equal("Blackjack", state.Name)
	a.Equal(PhaseAwaitingBet, state.Phase)
	a.Equal(1000, state.ChipBalance)
	a.Empty(state.Player.Cards)
	a.Empty(state.Dealer.Cards)
	a.Equal(0, state.Dealer.Score)

	a.NoError(g.UpdatePendingBet("100"))
	a.Equal("100", g.State().PendingBetInput)
	a.NoError(g.ConfirmBet())

	state = g.State()
	a.Equal(g.RoundID(), state.RoundID)
	a.Equal(PhasePlayerTurn, state.Phase)
	a.Equal(OutcomeNone, state.Outcome)
	a.Equal(900, state.ChipBalance)
	a.Equal(100, state.CurrentBet)
	a.Equal(48, state.CardsLeft)
	a.Equal([]Action{ActionHit, ActionStand, ActionReset}, state.Actions)

	a.Equal(HandState{
		Cards: []CardState{
			{Rank: "2", Suit: "hearts", Value: 2, Image: "2_of_hearts"},
			{Rank: "3", Suit: "hearts", Value: 3, Image: "3_of_hearts"},
		},
		Score: 5,
	}, state.Player)

	a.Equal(HandState{
		Cards: []CardState{
			{Image: "cardback", FaceDown: true},
			{Rank: "5", Suit: "hearts", Value: 5, Image: "5_of_hearts"},
		},
		Score: UnknownScore,
	}, state.Dealer)

	a.NoError(g.Stand())
	state = g.State()
	a.Equal(PhaseSettled, state.Phase)
	a.Equal(OutcomePlayerWin, state.Outcome)
	a.Equal("4_of_hearts", state.Dealer.Cards[0].Image)
	a.False(state.Dealer.Cards[0].FaceDown)
	a.Equal(22, state.Dealer.Score)
	a.True(state.Dealer.Bust)
	a.Equal("Player wins ${100}", state.Log[len(state.Log)-1].Message)
}

func TestGame_State_json(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t)
	placeBet(t, g, 100)

	b, err := json.Marshal(g.State())
	a.NoError(err)

	var decoded map[string]interface{}
	a.NoError(json.Unmarshal(b, &decoded))
	a.Equal("player-turn", decoded["phase"])
	a.NotContains(decoded, "outcome")

	dealer := decoded["dealer"].(map[string]interface{})
	a.Equal(float64(-1), dealer["score"])
	hole := dealer["cards"].([]interface{})[0].(map[string]interface{})
	a.Equal(map[string]interface{}{"image": "cardback", "faceDown": true}, hole)
}

func TestGame_addLogMessage(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t)

	for i := 0; i < 30; i++ {
		g.addLogMessage(nil, "message %d", i)
	}

	messages := g.LogMessages()
	a.Equal(25, len(messages))
	a.Equal("message 5", messages[0].Message)
	a.Equal("message 29", messages[24].Message)
	a.NotEmpty(messages[0].UUID)
	a.NotEqual(messages[0].UUID, messages[1].UUID)
}
