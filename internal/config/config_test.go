package config

import (
	"blackjack-server/internal/util"
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("BJ_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("BJ_LOG_LEVEL", "trace")
	defer clear2()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal(500, cfg.StartingChips)
	a.Equal("seeded", cfg.Shuffle.Source)
	a.Equal(int64(42), cfg.Shuffle.Seed)
	a.Equal("./PNG-cards-1.3", cfg.Assets.Dir)
	a.Equal("trace", cfg.Log.Level)
	a.False(cfg.Log.DisableAccessLogs)
	a.Equal([]string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)

	// ensure that it's only loaded once
	_ = os.Setenv("BJ_LOG_LEVEL", "error")
	// ensure we aren't using a pointer
	cfg.Log.Level = "bad"
	cfg = Instance()
	a.Equal("trace", cfg.Log.Level)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("BJ_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("BJ_LOG_DISABLE_ACCESS_LOGS", "true")
	defer clear2()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, 1000, cfg.StartingChips)
	assert.Equal(t, "crypto", cfg.Shuffle.Source)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.DisableAccessLogs)
}

func TestLoad_invalid(t *testing.T) {
	clear1 := util.SetEnv("BJ_CONFIG_FILE", "testdata/invalid.yaml")
	defer clear1()

	assert.Error(t, Load())

	clear2 := util.SetEnv("BJ_CONFIG_FILE", "testdata/config.yaml")
	defer clear2()
	clear3 := util.SetEnv("BJ_STARTING_CHIPS", "many")
	defer clear3()

	assert.Error(t, Load())
}
