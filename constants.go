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
)

/*
 * CONSTANTS
 */
const (
	// GPIO pins
	PIN_SDA machine.Pin = machine.GP8
	PIN_SCL machine.Pin = machine.GP9

	PIN_TX machine.Pin = machine.GP0
	PIN_RX machine.Pin = machine.GP1

	// 74HC595 pins 12, 14 and 11
	PIN_LATCH machine.Pin = machine.GP17
	PIN_DATA  machine.Pin = machine.GP16
	PIN_CLOCK machine.Pin = machine.GP18

	PIN_SPEAKER machine.Pin = machine.GP22

	// Diagnostic serial line rate
	BAUD_RATE uint32 = 9600

	// LCD geometry
	LCD_COLS int = 20
	LCD_ROWS int = 4
)

// LEDs and buttons, in cue order: green, red, yellow, blue
var (
	PINS_LED    = [4]machine.Pin{machine.GP10, machine.GP11, machine.GP12, machine.GP13}
	PINS_BUTTON = [4]machine.Pin{machine.GP2, machine.GP3, machine.GP4, machine.GP5}
)
