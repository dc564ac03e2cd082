//go:build tinygo

/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package main

import (
	"machine"

	"github.com/rs/zerolog"

	"github.com/tomasemanuel/SimonSaysQuick/hc595"
	"github.com/tomasemanuel/SimonSaysQuick/lcd"
	"github.com/tomasemanuel/SimonSaysQuick/panel"
)

/*
 * GLOBALS
 */
// Peripherals
var lights *panel.Lights
var buttons *panel.Buttons
var score hc595.Display
var status *lcd.Device

// Diagnostic log on the UART
var logger zerolog.Logger

// Left unconnected: its noise seeds the RNG
var PIN_SEED machine.ADC = machine.ADC{Pin: machine.GP28}
