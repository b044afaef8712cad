package config

import (
	"blackjack-server/internal/util"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack server
type Config struct {
	loaded        bool
	Addr          string `yaml:"addr" envconfig:"addr"`
	StartingChips int    `yaml:"startingChips" envconfig:"starting_chips"`
	Shuffle       struct {
		// Source is crypto or seeded
		Source string `yaml:"source" envconfig:"source"`
		Seed   int64  `yaml:"seed" envconfig:"seed"`
	} `yaml:"shuffle"`
	Assets struct {
		// Dir holds the card images, e.g. 10_of_hearts.png and cardback.png
		Dir string `yaml:"dir" envconfig:"dir"`
	} `yaml:"assets"`
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr:          ":5000",
		StartingChips: 1000,
	}

	cfg.Shuffle.Source = "crypto"
	cfg.Log.Level = "info"
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional; environment variables prefixed with BJ_ override it.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	} else {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
