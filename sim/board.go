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
	"bytes"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomasemanuel/SimonSaysQuick/hc595"
	"github.com/tomasemanuel/SimonSaysQuick/lcd"
	"github.com/tomasemanuel/SimonSaysQuick/panel"
)

const (
	// A key press reads as a button held down for this long,
	// since terminals report no key releases
	PRESS_HOLD_MS int64 = 150

	consoleLines int = 4
)

// Key bindings: digits in a row, or a 2x2 block under the left hand
var keyButtons = map[rune]int{
	'1': 0, '2': 1, '3': 2, '4': 3,
	'q': 0, 'w': 1, 'a': 2, 's': 3,
}

var ledColours = [4]tcell.Color{tcell.ColorGreen, tcell.ColorRed, tcell.ColorYellow, tcell.ColorBlue}

// Board is the simulated front panel: four LEDs and buttons, the score
// digits, the LCD and a serial console, drawn on a terminal
type Board struct {
	mu        sync.Mutex
	screen    tcell.Screen
	closed    bool
	now       func() time.Time
	leds      [4]bool
	pressedAt [4]time.Time
	digits    []byte
	lcdLines  []string
	backlight bool
	console   []string
	partial   []byte
}

func NewBoard(screen tcell.Screen) *Board {

	return &Board{
		screen: screen,
		now:    time.Now,
		digits: []byte{hc595.BLANK, hc595.BLANK},
	}
}

/*
 *  Simulated hardware
 */

// LEDPins returns the four LED outputs for panel.NewLights
func (b *Board) LEDPins() []panel.OutputPin {

	pins := make([]panel.OutputPin, len(b.leds))
	for i := range pins {
		pins[i] = ledPin{b, i}
	}
	return pins
}

// ButtonPins returns the four pulled-up button inputs for panel.NewButtons
func (b *Board) ButtonPins() []panel.InputPin {

	pins := make([]panel.InputPin, len(b.pressedAt))
	for i := range pins {
		pins[i] = buttonPin{b, i}
	}
	return pins
}

// AttachScore shows the register chain's outputs as the score digits
func (b *Board) AttachScore(chain *hc595.Chain) {

	b.mu.Lock()
	b.digits = chain.Outputs()
	b.mu.Unlock()

	chain.OnLatch = func(out []byte) {
		b.mu.Lock()
		b.digits = out
		b.mu.Unlock()
		b.Draw()
	}
}

// AttachLCD shows the emulated LCD's text
func (b *Board) AttachLCD(emu *lcd.Emulator) {

	b.mu.Lock()
	b.lcdLines = emu.Lines()
	b.backlight = emu.Backlight()
	b.mu.Unlock()

	emu.OnChange = func(lines []string, backlight bool) {
		b.mu.Lock()
		b.lcdLines = lines
		b.backlight = backlight
		b.mu.Unlock()
		b.Draw()
	}
}

// Write takes the serial console's output, keeping the last few lines
func (b *Board) Write(p []byte) (int, error) {

	b.mu.Lock()
	b.partial = append(b.partial, p...)
	for {
		i := bytes.IndexByte(b.partial, '\n')
		if i < 0 {
			break
		}

		b.console = append(b.console, strings.TrimRight(string(b.partial[:i]), "\r"))
		b.partial = b.partial[i+1:]
	}
	if len(b.console) > consoleLines {
		b.console = b.console[len(b.console)-consoleLines:]
	}
	b.mu.Unlock()

	b.Draw()
	return len(p), nil
}

// Press holds a button down for PRESS_HOLD_MS
func (b *Board) Press(button int) {

	if button < 0 || button >= len(b.pressedAt) {
		return
	}

	b.mu.Lock()
	b.pressedAt[button] = b.now()
	b.mu.Unlock()
	b.Draw()
}

func (b *Board) isPressed(button int) bool {

	b.mu.Lock()
	defer b.mu.Unlock()

	at := b.pressedAt[button]
	if at.IsZero() {
		return false
	}

	return b.now().Sub(at) < time.Duration(PRESS_HOLD_MS)*time.Millisecond
}

func (b *Board) setLED(led int, isOn bool) {

	b.mu.Lock()
	b.leds[led] = isOn
	b.mu.Unlock()
	b.Draw()
}

// LED reports whether a simulated LED is lit
func (b *Board) LED(led int) bool {

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.leds[led]
}

// Digits returns the segment bytes on the score display, tens first
func (b *Board) Digits() []byte {

	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.digits...)
}

// Console returns the last lines written to the serial console
func (b *Board) Console() []string {

	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.console...)
}

/*
 *  Terminal input
 */

// HandleEvent acts on a terminal event and reports false when the
// user asked to quit
func (b *Board) HandleEvent(ev tcell.Event) bool {

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return b.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		b.mu.Lock()
		if !b.closed {
			b.screen.Sync()
		}
		b.mu.Unlock()
		b.Draw()
	}

	return true
}

func (b *Board) handleKey(key tcell.Key, r rune) bool {

	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return false
	}

	if key == tcell.KeyRune {
		if button, ok := keyButtons[r]; ok {
			b.Press(button)
		}
	}

	return true
}

// Loop reads terminal events until the user quits
func (b *Board) Loop() {

	b.Draw()
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}

		if !b.HandleEvent(ev) {
			return
		}
	}
}

// Close stops all drawing and releases the terminal
func (b *Board) Close() {

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	b.screen.Fini()
}

type ledPin struct {
	board *Board
	led   int
}

func (p ledPin) High() { p.board.setLED(p.led, true) }
func (p ledPin) Low()  { p.board.setLED(p.led, false) }

type buttonPin struct {
	board  *Board
	button int
}

// Get reads low while the button is held, as a pulled-up input would
func (p buttonPin) Get() bool {

	return !p.board.isPressed(p.button)
}
