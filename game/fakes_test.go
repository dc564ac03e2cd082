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
	"time"

	"github.com/tomasemanuel/SimonSaysQuick/config"
)

// scriptedRand hands out the cues it was given, in order
type scriptedRand struct {
	cues  []int
	next  int
	calls []int
}

func (r *scriptedRand) Intn(n int) int {

	r.calls = append(r.calls, n)
	v := r.cues[r.next%len(r.cues)]
	r.next += 1
	return v
}

// scriptedButtons returns the presses it was given, then panics
type scriptedButtons struct {
	presses []uint8
	reads   int
}

func (b *scriptedButtons) ReadButton() uint8 {

	if b.reads >= len(b.presses) {
		panic("no more presses scripted")
	}

	p := b.presses[b.reads]
	b.reads += 1
	return p
}

// perfectPlayer always presses the right button
type perfectPlayer struct {
	engine *Engine
	pos    int
	reads  int
}

func (p *perfectPlayer) ReadButton() uint8 {

	cues := p.engine.Cues()
	if p.pos >= len(cues) {
		p.pos = 0
	}

	c := cues[p.pos]
	p.pos += 1
	p.reads += 1
	if p.pos == len(cues) {
		p.pos = 0
	}

	return c
}

type flash struct {
	cue      uint8
	duration time.Duration
}

type recordingLights struct {
	flashes []flash
}

func (l *recordingLights) Flash(cue uint8, d time.Duration) {

	l.flashes = append(l.flashes, flash{cue, d})
}

type recordingScore struct {
	shown  []int
	dashes int
}

func (s *recordingScore) ShowScore(score uint8) {

	s.shown = append(s.shown, int(score))
}

func (s *recordingScore) ShowDashes() {

	s.dashes += 1
	s.shown = append(s.shown, -1)
}

type recordingStatus struct {
	lines [][2]string
}

func (s *recordingStatus) ShowLines(line0, line1 string) {

	s.lines = append(s.lines, [2]string{line0, line1})
}

func (s *recordingStatus) last() [2]string {

	return s.lines[len(s.lines)-1]
}

type recordingSleep struct {
	naps []time.Duration
}

func (s *recordingSleep) sleep(d time.Duration) {

	s.naps = append(s.naps, d)
}

// testTiming uses distinct values so the naps can be told apart
func testTiming() config.Timing {

	return config.Timing{
		CueOn:        3 * time.Millisecond,
		CueGap:       2 * time.Millisecond,
		RoundPause:   5 * time.Millisecond,
		PollTick:     time.Millisecond,
		GameOverHold: 80 * time.Millisecond,
		Cooldown:     40 * time.Millisecond,
	}
}
