package room

import (
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/blackjack"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cbg = context.Background()

func newTestHost(t *testing.T) *Host {
	t.Helper()

	opts := blackjack.DefaultOptions()
	opts.Generator = rng.NewFixed()
	game, err := blackjack.NewGame(logrus.StandardLogger(), opts)
	require.NoError(t, err)

	h := NewHost(logrus.StandardLogger(), game)
	h.StartShift()
	t.Cleanup(h.EndShift)

	return h
}

func TestHost_Do(t *testing.T) {
	a := assert.New(t)
	h := newTestHost(t)

	state, err := h.Do(cbg, &PayloadIn{Action: "bet", Amount: "100"})
	a.NoError(err)
	a.Equal("100", state.PendingBetInput)

	state, err = h.Do(cbg, &PayloadIn{Action: "confirm-bet"})
	a.NoError(err)
	a.Equal(blackjack.PhasePlayerTurn, state.Phase)
	a.Equal(900, state.ChipBalance)

	state, err = h.Do(cbg, &PayloadIn{Action: "stand"})
	a.NoError(err)
	a.Equal(blackjack.PhaseSettled, state.Phase)
	a.Equal(blackjack.OutcomePlayerWin, state.Outcome)
	a.Equal(1100, state.ChipBalance)

	state, err = h.Do(cbg, &PayloadIn{Action: "hit"})
	a.True(errors.Is(err, blackjack.ErrInvalidPhase))
	a.Equal(blackjack.PhaseSettled, state.Phase)

	state, err = h.Do(cbg, &PayloadIn{Action: "confirm-bet", Amount: "5000"})
	a.True(errors.Is(err, blackjack.ErrInvalidBet))
	a.Equal(1100, state.ChipBalance)

	state, err = h.Do(cbg, &PayloadIn{Action: "confirm-bet", Amount: "five"})
	a.True(errors.Is(err, blackjack.ErrInvalidBet))
	a.Equal("5000", state.PendingBetInput)

	state, err = h.Do(cbg, &PayloadIn{Action: "reset"})
	a.NoError(err)
	a.Equal(1000, state.ChipBalance)
	a.Equal(blackjack.PhaseAwaitingBet, state.Phase)

	state, err = h.Do(cbg, &PayloadIn{Action: "split"})
	a.Equal(blackjack.PhaseAwaitingBet, state.Phase)
	a.True(errors.Is(err, ErrUnknownAction))
	a.EqualError(err, "unknown action: split")
}

func TestHost_State(t *testing.T) {
	a := assert.New(t)
	h := newTestHost(t)

	state, err := h.State(cbg)
	a.NoError(err)
	a.Equal(blackjack.PhaseAwaitingBet, state.Phase)
	a.Equal(1000, state.ChipBalance)

	ctx, cancel := context.WithCancel(cbg)
	cancel()
	state, err = h.State(ctx)
	a.Nil(state)
	a.Equal(context.Canceled, err)

	h.EndShift()

	state, err = h.State(cbg)
	a.Nil(state)
	a.Equal(ErrHostClosed, err)
}

func TestHost_clients(t *testing.T) {
	a := assert.New(t)
	h := newTestHost(t)

	c1 := NewClient(nil)
	c2 := NewClient(nil)
	h.AddClient(c1)
	h.AddClient(c2)
	a.Equal(2, len(h.Clients()))

	// both receive the state on connect
	a.Equal("game", receive(t, c1).Key)
	a.Equal("game", receive(t, c2).Key)

	c1.ReceivedMessage(cbg, &PayloadIn{Action: "confirm-bet", Amount: "10", Context: "ctx-1"})
	state := receive(t, c1).Data.(*blackjack.State)
	a.Equal(blackjack.PhasePlayerTurn, state.Phase)
	a.Equal(OK("ctx-1"), receive(t, c1))
	a.Equal(blackjack.PhasePlayerTurn, receive(t, c2).Data.(*blackjack.State).Phase)

	// errors go to the sender only
	c2.ReceivedMessage(cbg, &PayloadIn{Action: "confirm-bet", Context: "ctx-2"})
	resp := receive(t, c2)
	a.Equal("error", resp.Key)
	a.Equal("ctx-2", resp.Context)
	a.Equal("cannot confirm-bet from phase: player-turn", resp.Value)
	select {
	case msg := <-c1.SendChan():
		t.Errorf("unexpected message: %#v", msg)
	default:
	}

	a.False(h.RemoveClient(c1))
	a.True(h.RemoveClient(c2))
}

func TestClient_ReceivedMessage_noHost(t *testing.T) {
	c := NewClient(nil)
	c.ReceivedMessage(cbg, &PayloadIn{Action: "hit"})

	select {
	case msg := <-c.SendChan():
		t.Errorf("unexpected message: %#v", msg)
	default:
	}
}

func TestClient_Send(t *testing.T) {
	a := assert.New(t)
	c := NewClient(nil)
	a.NotEmpty(c.String())

	for i := 0; i < 256; i++ {
		a.True(c.Send(i))
	}

	a.False(c.Send(256))
}

func receive(t *testing.T, c *Client) *Response {
	t.Helper()

	select {
	case msg := <-c.SendChan():
		return msg.(*Response)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}

	return nil
}
