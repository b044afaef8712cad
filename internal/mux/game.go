package mux

import (
	"blackjack-server/pkg/room"
	"net/http"
)

type betRequest struct {
	Amount string `json:"amount"`
}

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := m.host.State(r.Context())
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

func (m *Mux) postGameBet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req betRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		m.do(w, r, &room.PayloadIn{Action: "bet", Amount: req.Amount})
	}
}

func (m *Mux) postGameAction(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.do(w, r, &room.PayloadIn{Action: action})
	}
}

func (m *Mux) do(w http.ResponseWriter, r *http.Request, payload *room.PayloadIn) {
	state, err := m.host.Do(r.Context(), payload)
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}
