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

	"tinygo.org/x/drivers/hd44780i2c"
)

// Expander lines and controller flags the driver package doesn't export
const (
	PIN_RW        uint8 = 0x02
	FUNCTION_8BIT uint8 = 0x10

	// Usual backpack address
	LCD_ADDRESS uint8 = 0x27
)

// Bus is an I2C controller. TinyGo's *machine.I2C satisfies it.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

// checkedBus keeps the first error of the transfers the driver makes,
// since the driver itself drops them
type checkedBus struct {
	bus Bus
	err error
}

func (b *checkedBus) Tx(addr uint16, w, r []byte) error {

	err := b.bus.Tx(addr, w, r)
	if err != nil && b.err == nil {
		b.err = err
	}
	return err
}

func (b *checkedBus) take() error {

	err := b.err
	b.err = nil
	return err
}

// Device is a character LCD behind a PCF8574 I2C expander
type Device struct {
	bus     *checkedBus
	driver  hd44780i2c.Device
	address uint8
	cols    int
	rows    int
	// Last bus error seen by ShowLines
	err error
}

func New(bus Bus, address uint8, cols, rows int) *Device {

	cb := &checkedBus{bus: bus}
	return &Device{
		bus:     cb,
		driver:  hd44780i2c.New(cb, address),
		address: address,
		cols:    cols,
		rows:    rows,
	}
}

// Init runs the controller's power-on sequence and clears the screen.
// It fails if the expander doesn't answer.
func (p *Device) Init() error {

	err := p.driver.Configure(hd44780i2c.Config{Width: uint8(p.cols), Height: uint8(p.rows)})
	if err != nil {
		return fmt.Errorf("lcd: init: %w", err)
	}

	if err = p.bus.take(); err != nil {
		return fmt.Errorf("lcd: no device at 0x%02X: %w", p.address, err)
	}

	return nil
}

// Backlight turns the backlight on or off
func (p *Device) Backlight(isOn bool) error {

	p.driver.BacklightOn(isOn)
	return p.bus.take()
}

func (p *Device) Clear() error {

	p.driver.ClearDisplay()
	return p.bus.take()
}

func (p *Device) Home() error {

	p.driver.Home()
	return p.bus.take()
}

// SetCursor moves to the given column and row, both from zero
func (p *Device) SetCursor(col, row int) error {

	if row < 0 || row >= p.rows || row > 3 {
		return fmt.Errorf("lcd: row %d out of range", row)
	}
	if col < 0 || col >= p.cols {
		return fmt.Errorf("lcd: column %d out of range", col)
	}

	p.driver.SetCursor(uint8(col), uint8(row))
	return p.bus.take()
}

// Print writes text at the cursor. Characters outside printable ASCII
// are shown as '?'.
func (p *Device) Print(text string) error {

	out := make([]byte, 0, len(text))
	for _, r := range text {
		c := byte('?')
		if r >= 0x20 && r < 0x7F {
			c = byte(r)
		}
		out = append(out, c)
	}

	p.driver.Print(out)
	return p.bus.take()
}

// ShowLines clears the screen and writes one line on each of the first
// two rows, cut to the display's width
func (p *Device) ShowLines(line0, line1 string) {

	p.err = nil
	if err := p.Clear(); err != nil {
		p.err = err
		return
	}

	for row, line := range []string{line0, line1} {
		if row >= p.rows || line == "" {
			continue
		}

		if runes := []rune(line); len(runes) > p.cols {
			line = string(runes[:p.cols])
		}

		if err := p.SetCursor(0, row); err != nil {
			p.err = err
			return
		}
		if err := p.Print(line); err != nil {
			p.err = err
			return
		}
	}
}

// Err returns the bus error, if any, from the last ShowLines
func (p *Device) Err() error {

	return p.err
}
