/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package game

const (
	// Longest sequence the buffer holds
	MaxLength int = 100
	// Number of cue colours, and of buttons and LEDs
	Colours int = 4
)

// Sequence is the cue buffer. Only the first State.length entries mean anything.
type Sequence [MaxLength]uint8

// State is the whole of the game's memory. It is owned by one Engine.
type State struct {
	sequence Sequence
	length   int
}

func (s *State) Length() int {

	return s.length
}

// Cue returns the i-th cue of the current sequence
func (s *State) Cue(i int) uint8 {

	if i < 0 || i >= s.length {
		panic("game: cue index out of range")
	}

	return s.sequence[i]
}

// Cues copies out the meaningful part of the sequence
func (s *State) Cues() []uint8 {

	out := make([]uint8, s.length)
	copy(out, s.sequence[:s.length])
	return out
}

// extend writes the cue into the first free slot and grows the sequence.
// Once the buffer is full the length is held at MaxLength - 1, so the last
// slot is rewritten every round and never read.
func (s *State) extend(cue uint8) {

	s.sequence[s.length] = cue
	s.length += 1
	if s.length >= MaxLength {
		s.length = MaxLength - 1
	}
}

// reset discards the sequence. Stale cues stay in the buffer.
func (s *State) reset() {

	s.length = 0
}
