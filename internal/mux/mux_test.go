package mux

import (
	"blackjack-server/internal/config"
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/room"
	"net/http/httptest"
	"testing"

	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// newTestServer starts a server whose deck is never shuffled
// The first round deals 2h,3h to the player and 4h,5h to the dealer.
func newTestServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()

	logger, _ := logrustest.NewNullLogger()
	game, err := blackjack.NewGame(logger, blackjack.Options{
		StartingChips: 1000,
		Generator:     rng.NewFixed(),
	})
	require.NoError(t, err)

	host := room.NewHost(logger, game)
	host.StartShift()

	ts := httptest.NewServer(NewMux("v1.2.3", host, cfg))
	t.Cleanup(func() {
		ts.Close()
		host.EndShift()
	})

	return ts
}
