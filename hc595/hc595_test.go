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

import (
	"reflect"
	"testing"
)

func newChainDisplay() (*Chain, Display) {

	chain := NewChain(2)
	d := New(chain.LatchPin(), chain.DataPin(), chain.ClockPin())
	d.Init()
	return chain, d
}

func TestShowScore(t *testing.T) {

	tests := []struct {
		score uint8
		tens  byte
		units byte
	}{
		{0, BLANK, DIGITS[0]},
		{7, BLANK, DIGITS[7]},
		{10, DIGITS[1], DIGITS[0]},
		{42, DIGITS[4], DIGITS[2]},
		{99, DIGITS[9], DIGITS[9]},
		{123, DIGITS[2], DIGITS[3]},
	}

	chain, d := newChainDisplay()
	for _, tt := range tests {
		d.ShowScore(tt.score)

		// The tens digit sits in the near register, units in the far one
		if got := chain.Output(0); got != tt.tens {
			t.Errorf("Score %d: tens %08b, want %08b", tt.score, got, tt.tens)
		}
		if got := chain.Output(1); got != tt.units {
			t.Errorf("Score %d: units %08b, want %08b", tt.score, got, tt.units)
		}
	}
}

func TestShowDashes(t *testing.T) {

	chain, d := newChainDisplay()
	d.ShowDashes()

	if got := chain.Outputs(); !reflect.DeepEqual(got, []byte{DASH, DASH}) {
		t.Errorf("Expected dashes, got %08b", got)
	}
}

func TestInitBlanksDisplay(t *testing.T) {

	chain, _ := newChainDisplay()

	if got := chain.Outputs(); !reflect.DeepEqual(got, []byte{BLANK, BLANK}) {
		t.Errorf("Expected a blank display, got %08b", got)
	}
}

// probe records the data level at every rising clock edge
type probe struct {
	data    bool
	clock   bool
	latched int
	bits    []bool
}

type probePin struct{ set func(bool) }

func (p probePin) High() { p.set(true) }
func (p probePin) Low()  { p.set(false) }

func TestSendBitOrder(t *testing.T) {

	pr := &probe{}
	latch := probePin{func(v bool) {
		if v {
			pr.latched += 1
		}
	}}
	data := probePin{func(v bool) { pr.data = v }}
	clock := probePin{func(v bool) {
		if v && !pr.clock {
			pr.bits = append(pr.bits, pr.data)
		}
		pr.clock = v
	}}

	d := New(latch, data, clock)
	d.Send(0b00000001, 0b10000000)

	// Low byte first, most significant bit first
	want := []bool{
		true, false, false, false, false, false, false, false,
		false, false, false, false, false, false, false, true,
	}
	if !reflect.DeepEqual(pr.bits, want) {
		t.Errorf("Expected bits %v, got %v", want, pr.bits)
	}
	if pr.latched != 1 {
		t.Errorf("Expected one latch, got %d", pr.latched)
	}
}

func TestChainNotifiesOnLatch(t *testing.T) {

	chain, d := newChainDisplay()

	var seen [][]byte
	chain.OnLatch = func(out []byte) { seen = append(seen, out) }
	d.ShowScore(5)

	want := [][]byte{{BLANK, DIGITS[5]}}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("Expected %v, got %v", want, seen)
	}
}
