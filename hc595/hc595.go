/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package hc595

// Segment patterns for a common-anode display: a bit is 0 when its
// segment is lit. Bit 0 is segment a, bit 6 is g, bit 7 the point.
var DIGITS = [10]byte{
	0b11000000, // 0
	0b11111001, // 1
	0b10100100, // 2
	0b10110000, // 3
	0b10011001, // 4
	0b10010010, // 5
	0b10000010, // 6
	0b11111000, // 7
	0b10000000, // 8
	0b10010000, // 9
}

const (
	DASH  byte = 0b10111111
	BLANK byte = 0xFF
)

// Pin is a digital output. TinyGo's machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// Display is a pair of 7-segment digits fed by two daisy-chained
// 74HC595 shift registers
type Display struct {
	latch Pin
	data  Pin
	clock Pin
}

func New(latch, data, clock Pin) Display {

	return Display{latch: latch, data: data, clock: clock}
}

func (p *Display) Init() {

	p.latch.High()
	p.data.Low()
	p.clock.Low()
	p.Clear()
}

// Clear blanks both digits
func (p *Display) Clear() {

	p.Send(BLANK, BLANK)
}

// ShowScore shows the last two decimal digits of the score. A leading
// zero is left blank.
func (p *Display) ShowScore(score uint8) {

	high := score % 100 / 10
	low := score % 10

	highPattern := BLANK
	if high != 0 {
		highPattern = DIGITS[high]
	}

	p.Send(highPattern, DIGITS[low])
}

// ShowDashes puts '--' on the display
func (p *Display) ShowDashes() {

	p.Send(DASH, DASH)
}

// Send latches two raw segment bytes. The low digit goes in first so it
// ends up in the far register once the high digit follows it.
func (p *Display) Send(high, low byte) {

	p.latch.Low()
	p.shiftOut(low)
	p.shiftOut(high)
	p.latch.High()
}

func (p *Display) shiftOut(value byte) {

	// Most significant bit first, clocked in on the rising edge
	for i := 7; i >= 0; i-- {
		if value&(1<<uint(i)) != 0 {
			p.data.High()
		} else {
			p.data.Low()
		}

		p.clock.High()
		p.clock.Low()
	}
}
