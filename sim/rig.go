/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package sim

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomasemanuel/SimonSaysQuick/config"
	"github.com/tomasemanuel/SimonSaysQuick/game"
	"github.com/tomasemanuel/SimonSaysQuick/hc595"
	"github.com/tomasemanuel/SimonSaysQuick/lcd"
	"github.com/tomasemanuel/SimonSaysQuick/panel"
)

// LCD geometry, as on the board
const (
	LCD_COLS int = 20
	LCD_ROWS int = 4
)

// Rig is the game wired to a simulated board through the same drivers
// the hardware build uses
type Rig struct {
	Engine  *game.Engine
	Buttons *panel.Buttons
	Lights  *panel.Lights
	Score   hc595.Display
	Status  *lcd.Device
	Chain   *hc595.Chain
	LCD     *lcd.Emulator
}

func NewRig(board *Board, timing config.Timing, rng game.Rand, logger zerolog.Logger, opts ...game.Option) (*Rig, error) {

	r := &Rig{
		Chain: hc595.NewChain(2),
		LCD:   lcd.NewEmulator(lcd.LCD_ADDRESS, LCD_COLS, LCD_ROWS),
	}

	board.AttachScore(r.Chain)
	board.AttachLCD(r.LCD)

	r.Score = hc595.New(r.Chain.LatchPin(), r.Chain.DataPin(), r.Chain.ClockPin())
	r.Score.Init()

	r.Status = lcd.New(r.LCD, lcd.LCD_ADDRESS, LCD_COLS, LCD_ROWS)
	if err := r.Status.Init(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	r.Lights = panel.NewLights(board.LEDPins())
	r.Buttons = panel.NewButtons(board.ButtonPins(), timing.PollTick)

	hw := game.Hardware{
		Buttons: r.Buttons,
		Lights:  r.Lights,
		Score:   &r.Score,
		Status:  r.Status,
	}
	r.Engine = game.New(hw, rng, timing, logger, opts...)
	return r, nil
}
