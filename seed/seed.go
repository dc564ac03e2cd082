/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package seed

import (
	"time"
)

// Reads taken from the floating input at boot
const SAMPLES int = 16

// Sampler is an analog input. TinyGo's machine.ADC satisfies it.
type Sampler interface {
	Get() uint16
}

// FromADC folds readings of an unconnected analog pin into a seed. Only
// the noisy low bits of each reading are kept.
func FromADC(adc Sampler, samples int) uint64 {

	if samples < 1 {
		samples = 1
	}

	var acc uint64
	for i := 0; i < samples; i++ {
		// Rotate in four bits per reading
		acc = acc<<4 | acc>>60
		acc ^= uint64(adc.Get() & 0x0F)
	}

	return Mix(acc)
}

// FromTime seeds from a clock, for hosts with no spare analog input
func FromTime(t time.Time) uint64 {

	return Mix(uint64(t.UnixNano()))
}

// Mix is the splitmix64 finaliser. It spreads a seed with few
// changing bits across the whole word.
func Mix(x uint64) uint64 {

	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}
