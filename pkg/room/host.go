package room

import (
	"blackjack-server/pkg/blackjack"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrUnknownAction is returned when a payload names an action the game does not have
var ErrUnknownAction = errors.New("unknown action")

// ErrHostClosed is returned when a command is sent after EndShift()
var ErrHostClosed = errors.New("host is closed")

// Host owns a single game and runs every command against it from one run loop
type Host struct {
	game    *blackjack.Game
	logger  logrus.FieldLogger
	clients map[*Client]bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// NewHost creates a new host for the game
// The game must not be used directly once the shift has started
func NewHost(logger logrus.FieldLogger, game *blackjack.Game) *Host {
	return &Host{
		game:          game,
		logger:        logger,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// StartShift starts the run loop
func (h *Host) StartShift() {
	go h.runLoop()
}

// EndShift stops the run loop
func (h *Host) EndShift() {
	h.closeOnce.Do(func() {
		close(h.close)
	})
}

func (h *Host) runLoop() {
	h.logger.Debug("creating host run loop")
	for {
		select {
		case fn := <-h.execInRunLoop:
			fn()
		case <-h.close:
			h.logger.Debug("terminating host run loop")
			return
		}
	}
}

// exec runs fn in the run loop and waits for it to finish
// If ctx is done first, fn may still run, but its result is discarded
func (h *Host) exec(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case <-h.close:
		return ErrHostClosed
	default:
	}

	done := make(chan struct{})
	wrapped := func() {
		fn()
		close(done)
	}

	select {
	case h.execInRunLoop <- wrapped:
	case <-ctx.Done():
		return ctx.Err()
	case <-h.close:
		return ErrHostClosed
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-h.close:
		return ErrHostClosed
	}
}

// Do performs the action in the payload and returns the new state
// The state is returned even when the action is rejected. On success the
// state is also sent to every connected client.
func (h *Host) Do(ctx context.Context, payload *PayloadIn) (*blackjack.State, error) {
	var state *blackjack.State
	var err error

	if execErr := h.exec(ctx, func() {
		err = apply(h.game, payload)
		state = h.game.State()
		if err == nil {
			h.broadcast(state)
		}
	}); execErr != nil {
		return nil, execErr
	}

	if err != nil {
		h.logger.WithError(err).WithField("action", payload.Action).Info("action rejected")
	}

	return state, err
}

// State returns the current state of the game
func (h *Host) State(ctx context.Context) (*blackjack.State, error) {
	var state *blackjack.State
	if err := h.exec(ctx, func() {
		state = h.game.State()
	}); err != nil {
		return nil, err
	}

	return state, nil
}

func apply(game *blackjack.Game, payload *PayloadIn) error {
	action, err := blackjack.ActionFromString(payload.Action)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownAction, payload.Action)
	}

	switch action {
	case blackjack.ActionBet:
		return game.UpdatePendingBet(payload.Amount)
	case blackjack.ActionConfirmBet:
		if payload.Amount != "" {
			if err := game.UpdatePendingBet(payload.Amount); err != nil {
				return err
			}
		}

		return game.ConfirmBet()
	case blackjack.ActionHit:
		return game.Hit()
	case blackjack.ActionStand:
		return game.Stand()
	case blackjack.ActionReset:
		game.ResetGame()
		return nil
	}

	panic(fmt.Sprintf("unhandled action: %s", action))
}

// Clients will return a slice of connected (at the time) clients
func (h *Host) Clients() []*Client {
	h.lock.RLock()
	defer h.lock.RUnlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}

	return clients
}

// NOTE: must only be called from the run loop
func (h *Host) broadcast(state *blackjack.State) {
	for _, client := range h.Clients() {
		if !client.Send(newStateResponse(state)) {
			h.logger.WithField("client", client.String()).Warn("client buffer is full, dropping state")
		}
	}
}

// AddClient adds a client and sends it the current state
// This method must return quickly
func (h *Host) AddClient(client *Client) {
	h.lock.Lock()
	client.host = h
	h.clients[client] = true
	h.lock.Unlock()

	select {
	case h.execInRunLoop <- func() {
		client.Send(newStateResponse(h.game.State()))
	}:
	case <-h.close:
	}
}

// RemoveClient removes a client
// lastClient is true if no more clients are connected
func (h *Host) RemoveClient(client *Client) (lastClient bool) {
	h.lock.Lock()
	delete(h.clients, client)
	nClients := len(h.clients)
	h.lock.Unlock()

	return nClients == 0
}
