/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package lcd

import (
	"fmt"
	"strings"
	"sync"

	"tinygo.org/x/drivers/hd44780i2c"
)

// DDRAM address of the first column of each row
var rowOffsets = [4]uint8{0x00, 0x40, 0x14, 0x54}

// Emulator stands in for a PCF8574-backed HD44780 on the I2C bus. It
// decodes the expander's port writes back into controller instructions
// and keeps the visible text.
type Emulator struct {
	mu        sync.Mutex
	address   uint8
	cols      int
	rows      int
	port      uint8
	fourBit   bool
	pending   bool
	high      uint8
	cursor    uint8
	cgram     bool
	displayOn bool
	backlight bool
	ddram     [0x80]byte
	// Called after every transfer that changed the screen
	OnChange func(lines []string, backlight bool)
}

func NewEmulator(address uint8, cols, rows int) *Emulator {

	e := &Emulator{address: address, cols: cols, rows: rows}
	e.clear()
	return e
}

// Tx takes a write to the expander. Reads are not supported.
func (e *Emulator) Tx(addr uint16, w, r []byte) error {

	if addr != uint16(e.address) {
		return fmt.Errorf("lcd emulator: no device at 0x%02X", addr)
	}
	if len(r) > 0 {
		return fmt.Errorf("lcd emulator: reads not supported")
	}

	e.mu.Lock()
	for _, b := range w {
		e.portWrite(b)
	}
	lines := e.lines()
	backlight := e.backlight
	notify := e.OnChange
	e.mu.Unlock()

	if notify != nil {
		notify(lines, backlight)
	}

	return nil
}

// Lines returns the text of every row
func (e *Emulator) Lines() []string {

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lines()
}

func (e *Emulator) Backlight() bool {

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.backlight
}

func (e *Emulator) lines() []string {

	out := make([]string, e.rows)
	for row := 0; row < e.rows && row < len(rowOffsets); row++ {
		if !e.displayOn {
			out[row] = strings.Repeat(" ", e.cols)
			continue
		}

		start := int(rowOffsets[row])
		out[row] = string(e.ddram[start : start+e.cols])
	}

	return out
}

func (e *Emulator) portWrite(b uint8) {

	e.backlight = b&hd44780i2c.BACKLIGHT_ON != 0

	// The controller samples D4-D7 on the falling edge of EN
	falling := e.port&hd44780i2c.En != 0 && b&hd44780i2c.En == 0
	e.port = b
	if !falling || b&PIN_RW != 0 {
		return
	}

	nibble := b & 0xF0
	isData := b&hd44780i2c.Rs != 0
	if !e.fourBit {
		// 8-bit mode: the low data lines are not wired, so they read as 0
		e.execute(nibble, isData)
		return
	}

	if !e.pending {
		e.high = nibble
		e.pending = true
		return
	}

	e.pending = false
	e.execute(e.high|nibble>>4, isData)
}

func (e *Emulator) execute(value uint8, isData bool) {

	if isData {
		if !e.cgram {
			e.ddram[e.cursor&0x7F] = value
			e.cursor = (e.cursor + 1) & 0x7F
		}
		return
	}

	switch {
	case value&hd44780i2c.DDRAM_SET != 0:
		e.cursor = value & 0x7F
		e.cgram = false
	case value&hd44780i2c.CGRAM_SET != 0:
		e.cgram = true
	case value&hd44780i2c.FUNCTION_MODE != 0:
		e.fourBit = value&FUNCTION_8BIT == 0
		e.pending = false
	case value&hd44780i2c.CURSOR_DISPLAY_SHIFT != 0:
		// Cursor and display shifts are not modelled
	case value&hd44780i2c.DISPLAY_ON_OFF != 0:
		e.displayOn = value&hd44780i2c.DISPLAY_ON != 0
	case value&hd44780i2c.ENTRY_MODE != 0:
		// Only left-to-right entry is modelled
	case value&hd44780i2c.CURSOR_HOME != 0:
		e.cursor = 0
		e.cgram = false
	case value == hd44780i2c.DISPLAY_CLEAR:
		e.clear()
	}
}

func (e *Emulator) clear() {

	for i := range e.ddram {
		e.ddram[i] = ' '
	}
	e.cursor = 0
	e.cgram = false
}
