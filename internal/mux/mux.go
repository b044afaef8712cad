package mux

import (
	"blackjack-server/internal/config"
	"blackjack-server/pkg/room"
	"net/http"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version   string
	assetsDir string
	host      *room.Host
}

// NewMux returns a new HTTP mux
// The host must already be on shift
func NewMux(version string, host *room.Host, cfg config.Config) *Mux {
	this := &Mux{
		Router:    gmux.NewRouter(),
		version:   version,
		assetsDir: cfg.Assets.Dir,
		host:      host,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	{
		gr := r.PathPrefix("/game").Subrouter()
		gr.Methods(http.MethodGet).Path("").Handler(this.getGame())
		gr.Methods(http.MethodGet).Path("/ws").Handler(this.getGameWS())
		gr.Methods(http.MethodPost).Path("/bet").Handler(this.postGameBet())
		gr.Methods(http.MethodPost).Path("/bet/confirm").Handler(this.postGameAction("confirm-bet"))
		gr.Methods(http.MethodPost).Path("/hit").Handler(this.postGameAction("hit"))
		gr.Methods(http.MethodPost).Path("/stand").Handler(this.postGameAction("stand"))
		gr.Methods(http.MethodPost).Path("/reset").Handler(this.postGameAction("reset"))
	}

	if this.assetsDir != "" {
		fs := http.StripPrefix("/cards/", http.FileServer(http.Dir(this.assetsDir)))
		r.Methods(http.MethodGet).PathPrefix("/cards/").Handler(fs)
	}

	return this
}
