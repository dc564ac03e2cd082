//go:build tinygo

/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @version     0.1.0
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package main

import (
	"machine"
	prand "math/rand"
	"time"

	"github.com/tomasemanuel/SimonSaysQuick/config"
	"github.com/tomasemanuel/SimonSaysQuick/game"
	"github.com/tomasemanuel/SimonSaysQuick/hc595"
	"github.com/tomasemanuel/SimonSaysQuick/lcd"
	"github.com/tomasemanuel/SimonSaysQuick/panel"
	"github.com/tomasemanuel/SimonSaysQuick/seed"
)

func main() {

	// Set up the hardware or fail
	if !setup() {
		failLoop()
	}

	// Seed from the floating analog pin
	s := seed.FromADC(PIN_SEED, seed.SAMPLES)
	rng := prand.New(prand.NewSource(int64(s)))
	game.LogBoot(logger, s)

	// Play the game
	hw := game.Hardware{
		Buttons: buttons,
		Lights:  lights,
		Score:   &score,
		Status:  status,
	}
	game.New(hw, rng, config.DefaultTiming(), logger).Run()
}

/*
 *  Initialisation Functions
 */
func setup() bool {

	// Diagnostics go out on UART0
	uart := machine.UART0
	err := uart.Configure(machine.UARTConfig{BaudRate: BAUD_RATE, TX: PIN_TX, RX: PIN_RX})
	if err != nil {
		return false
	}
	logger = game.NewSerialLogger(uart)

	// Set up the LCD
	i2c := machine.I2C0
	err = i2c.Configure(machine.I2CConfig{SCL: PIN_SCL, SDA: PIN_SDA})
	if err != nil {
		logger.Error().Err(err).Msg("couldn't configure I2C")
		return false
	}

	status = lcd.New(i2c, lcd.LCD_ADDRESS, LCD_COLS, LCD_ROWS)
	if err = status.Init(); err != nil {
		logger.Error().Err(err).Msg("couldn't start the LCD")
		return false
	}
	status.Backlight(true)

	// Set up the score display's shift register pins
	for _, pin := range []machine.Pin{PIN_LATCH, PIN_DATA, PIN_CLOCK} {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	score = hc595.New(PIN_LATCH, PIN_DATA, PIN_CLOCK)
	score.Init()

	// Set up the LEDs and the speaker that sounds with them
	leds := make([]panel.OutputPin, len(PINS_LED))
	for i, pin := range PINS_LED {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		leds[i] = pin
	}
	lights = panel.NewLights(leds)

	PIN_SPEAKER.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_SPEAKER.Low()
	lights.Tone = tone

	// Set up the buttons: pulled up, so low when pressed
	inputs := make([]panel.InputPin, len(PINS_BUTTON))
	for i, pin := range PINS_BUTTON {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		inputs[i] = pin
	}
	buttons = panel.NewButtons(inputs, time.Duration(config.POLL_TICK_MS)*time.Millisecond)

	// Set up the seed input
	machine.InitADC()
	err = PIN_SEED.Configure(machine.ADCConfig{})
	if err != nil {
		logger.Error().Err(err).Msg("couldn't configure the ADC")
		return false
	}

	return true
}

/*
 *  Misc Functions
 */
func tone(cue uint8, duration time.Duration) {

	// Get the half-cycle period in microseconds
	// NOTE Input is in Hz
	var period float32 = 1000000.0 / float32(panel.ToneHz[cue])
	period /= 2
	half := time.Duration(period) * time.Microsecond

	// Square wave until the duration has elapsed
	start := time.Now()
	for time.Since(start) < duration {
		PIN_SPEAKER.High()
		time.Sleep(half)
		PIN_SPEAKER.Low()
		time.Sleep(half)
	}
}

func failLoop() {

	// Signal hardware failure on the Pico LED
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Low()
		time.Sleep(time.Millisecond * 100)
		led.High()
		time.Sleep(time.Millisecond * 100)
	}
}
