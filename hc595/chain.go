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
	"sync"
)

// Chain models daisy-chained 74HC595s on hosts without the real parts.
// Bits enter the register nearest the controller and ripple outwards on
// each rising clock edge; a rising latch edge copies the shift stages
// to the outputs.
type Chain struct {
	mu      sync.Mutex
	count   int
	data    bool
	clock   bool
	latch   bool
	stages  uint64
	outputs uint64
	// Called with the new outputs, nearest register first, on every latch
	OnLatch func(outputs []byte)
}

func NewChain(count int) *Chain {

	if count < 1 || count > 8 {
		panic("hc595: chain length must be 1 to 8")
	}

	return &Chain{count: count}
}

// Output returns the latched byte of register i, 0 being nearest
func (c *Chain) Output(i int) byte {

	c.mu.Lock()
	defer c.mu.Unlock()
	return byte(c.outputs >> (8 * uint(i)))
}

func (c *Chain) Outputs() []byte {

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unpack()
}

func (c *Chain) unpack() []byte {

	out := make([]byte, c.count)
	for i := range out {
		out[i] = byte(c.outputs >> (8 * uint(i)))
	}
	return out
}

// Pins for the display driver
func (c *Chain) LatchPin() Pin { return chainPin{c, c.setLatch} }
func (c *Chain) DataPin() Pin  { return chainPin{c, c.setData} }
func (c *Chain) ClockPin() Pin { return chainPin{c, c.setClock} }

func (c *Chain) setData(level bool) {

	c.mu.Lock()
	c.data = level
	c.mu.Unlock()
}

func (c *Chain) setClock(level bool) {

	c.mu.Lock()
	rising := level && !c.clock
	c.clock = level
	if rising {
		// Wraps to all ones for a chain of eight
		mask := uint64(1)<<(8*uint(c.count)) - 1
		c.stages <<= 1
		if c.data {
			c.stages |= 1
		}
		c.stages &= mask
	}
	c.mu.Unlock()
}

func (c *Chain) setLatch(level bool) {

	c.mu.Lock()
	rising := level && !c.latch
	c.latch = level
	var out []byte
	if rising {
		c.outputs = c.stages
		out = c.unpack()
	}
	notify := c.OnLatch
	c.mu.Unlock()

	if rising && notify != nil {
		notify(out)
	}
}

type chainPin struct {
	chain *Chain
	set   func(bool)
}

func (p chainPin) High() { p.set(true) }
func (p chainPin) Low()  { p.set(false) }
