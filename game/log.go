/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package game

import (
	"io"

	"github.com/rs/zerolog"
)

// NewSerialLogger logs one JSON line per event to a serial port. It
// sticks to typed fields so nothing goes through reflection on TinyGo.
func NewSerialLogger(w io.Writer) zerolog.Logger {

	return zerolog.New(w).Level(zerolog.InfoLevel)
}

// LogBoot records the start of play
func LogBoot(logger zerolog.Logger, seed uint64) {

	logger.Info().Uint64("seed", seed).Msg("Simon Says Game Initialized")
}
