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
	"time"
)

// Default pacing
const (
	CUE_ON_MS         int64 = 300
	CUE_GAP_MS        int64 = 200
	ROUND_PAUSE_MS    int64 = 500
	POLL_TICK_MS      int64 = 1
	GAME_OVER_HOLD_MS int64 = 8000
	COOLDOWN_MS       int64 = 4000
)

// Timing holds every pause the game makes. The board uses the defaults;
// the simulator may override them from the environment.
type Timing struct {
	// How long a cue LED stays lit, during playback and as press feedback
	CueOn time.Duration `env:"CUE_ON" envDefault:"300ms"`
	// Pause between two cues of the playback
	CueGap time.Duration `env:"CUE_GAP" envDefault:"200ms"`
	// Pause after a correctly replayed round
	RoundPause time.Duration `env:"ROUND_PAUSE" envDefault:"500ms"`
	// Button polling interval
	PollTick time.Duration `env:"POLL_TICK" envDefault:"1ms"`
	// How long the final score stays up before the dashes appear
	GameOverHold time.Duration `env:"GAME_OVER_HOLD" envDefault:"8s"`
	// Pause after the dashes before a new game starts
	Cooldown time.Duration `env:"COOLDOWN" envDefault:"4s"`
}

func DefaultTiming() Timing {

	return Timing{
		CueOn:        time.Duration(CUE_ON_MS) * time.Millisecond,
		CueGap:       time.Duration(CUE_GAP_MS) * time.Millisecond,
		RoundPause:   time.Duration(ROUND_PAUSE_MS) * time.Millisecond,
		PollTick:     time.Duration(POLL_TICK_MS) * time.Millisecond,
		GameOverHold: time.Duration(GAME_OVER_HOLD_MS) * time.Millisecond,
		Cooldown:     time.Duration(COOLDOWN_MS) * time.Millisecond,
	}
}
