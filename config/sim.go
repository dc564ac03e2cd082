/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Sim configures the terminal simulator
type Sim struct {
	Timing Timing `envPrefix:"SIMON_"`

	// Fixed RNG seed; zero means seed from the clock
	Seed uint64 `env:"SIMON_SEED"`
	// Play cue tones through the host's audio device
	Sound bool `env:"SIMON_SOUND" envDefault:"true"`
	// Diagnostic log destination; empty discards the log
	LogFile string `env:"SIMON_LOG_FILE"`
	// zerolog level name
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadSim reads an optional .env file (or the files named) and then
// parses the simulator settings from the environment
func LoadSim(files ...string) (Sim, error) {

	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Sim{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Sim
	if err := env.Parse(&cfg); err != nil {
		return Sim{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Timing.PollTick <= 0 {
		return Sim{}, fmt.Errorf("parse env: SIMON_POLL_TICK must be positive, got %s", cfg.Timing.PollTick)
	}

	return cfg, nil
}
