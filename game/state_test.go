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

import (
	"testing"
)

func TestExtendNeverWritesPastTheBuffer(t *testing.T) {

	var s State
	for i := 0; i < MaxLength+10; i++ {
		s.extend(uint8(i % Colours))
		if s.Length() > MaxLength-1 {
			t.Fatalf("Length %d after %d extends exceeds %d", s.Length(), i+1, MaxLength-1)
		}
	}

	// The first 99 cues are untouched by the clamped rounds
	for i := 0; i < MaxLength-1; i++ {
		if s.Cue(i) != uint8(i%Colours) {
			t.Fatalf("Cue %d changed to %d", i, s.Cue(i))
		}
	}
}

func TestClampAtHundred(t *testing.T) {

	var s State
	for i := 0; i < 99; i++ {
		s.extend(1)
	}
	if s.Length() != 99 {
		t.Fatalf("Expected length 99 after 99 rounds, got %d", s.Length())
	}

	// Round 100 fills the last slot and the length is held at 99
	s.extend(2)
	if s.Length() != 99 || s.sequence[99] != 2 {
		t.Errorf("Expected clamped length 99 with slot 99 set, got %d and %d", s.Length(), s.sequence[99])
	}

	s.extend(3)
	if s.Length() != 99 || s.sequence[99] != 3 {
		t.Errorf("Expected round 101 to reuse slot 99, got length %d and %d", s.Length(), s.sequence[99])
	}
}

func TestResetKeepsBufferButEmptiesSequence(t *testing.T) {

	var s State
	s.extend(3)
	s.extend(1)
	s.reset()

	if s.Length() != 0 || len(s.Cues()) != 0 {
		t.Errorf("Expected an empty sequence, got %v", s.Cues())
	}
	if s.sequence[0] != 3 {
		t.Errorf("Expected stale cue to remain in the buffer")
	}
}

func TestCueOutOfRangePanics(t *testing.T) {

	var s State
	s.extend(0)

	defer func() {
		if recover() == nil {
			t.Error("Expected a panic reading past the sequence")
		}
	}()
	s.Cue(1)
}
