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
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomasemanuel/SimonSaysQuick/config"
)

/*
 * Hardware the engine drives. None of these ever sees the State.
 */

// Buttons blocks until a button has been pressed and released,
// and returns its index in [0, Colours)
type Buttons interface {
	ReadButton() uint8
}

// Lights shows a cue by lighting its LED for the given time
type Lights interface {
	Flash(cue uint8, duration time.Duration)
}

// Score is the two-digit numeric display
type Score interface {
	ShowScore(score uint8)
	ShowDashes()
}

// Status is the text display
type Status interface {
	ShowLines(line0, line1 string)
}

// Rand draws the cues. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Hardware struct {
	Buttons Buttons
	Lights  Lights
	Score   Score
	Status  Status
}

/*
 * Game phases
 */
type Phase uint8

const (
	RoundStart Phase = iota
	Playback
	Validate
	GameOver
)

func (p Phase) String() string {

	switch p {
	case RoundStart:
		return "round-start"
	case Playback:
		return "playback"
	case Validate:
		return "validate"
	case GameOver:
		return "game-over"
	}

	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Display texts
const (
	textTitle    string = "Simon Says Game"
	textGoodJob  string = "Good Job!"
	textGameOver string = "Game Over!"
)

type Option func(*Engine)

// WithSleep replaces time.Sleep for every pause the engine makes
func WithSleep(sleep func(time.Duration)) Option {

	return func(e *Engine) {
		e.sleep = sleep
	}
}

// Engine runs the game. It is not safe for concurrent use: one goroutine
// calls Step or Run for the lifetime of the device.
type Engine struct {
	hw     Hardware
	rng    Rand
	timing config.Timing
	log    zerolog.Logger
	sleep  func(time.Duration)

	state State
	phase Phase

	// Result of the last finished game
	lastScore int
	games     int
}

func New(hw Hardware, rng Rand, timing config.Timing, logger zerolog.Logger, opts ...Option) *Engine {

	e := &Engine{
		hw:     hw,
		rng:    rng,
		timing: timing,
		log:    logger,
		sleep:  time.Sleep,
		phase:  RoundStart,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) Phase() Phase {

	return e.phase
}

func (e *Engine) Length() int {

	return e.state.Length()
}

// Cues returns a copy of the live part of the sequence
func (e *Engine) Cues() []uint8 {

	return e.state.Cues()
}

// LastScore returns the score of the most recent game over, and the
// number of games finished so far
func (e *Engine) LastScore() (int, int) {

	return e.lastScore, e.games
}

/*
 *  Main Game Loop
 */

// Run plays games for ever
func (e *Engine) Run() {

	for {
		e.Step()
	}
}

// Step performs the current phase and moves to the next one
func (e *Engine) Step() {

	switch e.phase {
	case RoundStart:
		e.startRound()
		e.phase = Playback
	case Playback:
		e.playSequence()
		e.phase = Validate
	case Validate:
		if e.checkUserSequence() {
			e.sleep(e.timing.RoundPause)
			e.phase = RoundStart
		} else {
			e.phase = GameOver
		}
	case GameOver:
		e.gameOver()
		e.phase = RoundStart
	}
}

// Round steps until the next round is about to start, ie. through one
// round and, if the player failed it, the game over. It reports whether
// the round was replayed correctly.
func (e *Engine) Round() bool {

	passed := true
	for {
		if e.phase == GameOver {
			passed = false
		}

		e.Step()
		if e.phase == RoundStart {
			return passed
		}
	}
}

func (e *Engine) startRound() {

	// Show the rounds completed so far
	completed := e.state.Length()
	e.hw.Score.ShowScore(uint8(completed % 100))
	if completed == 0 {
		e.hw.Status.ShowLines(textTitle, "")
	} else {
		e.hw.Status.ShowLines(textGoodJob, fmt.Sprintf("Level: %d", completed))
	}

	// Add the next cue
	cue := uint8(e.rng.Intn(Colours))
	e.state.extend(cue)
	e.log.Debug().Int("length", e.state.Length()).Uint8("cue", cue).Msg("round start")
}

func (e *Engine) playSequence() {

	for i := 0; i < e.state.Length(); i++ {
		e.hw.Lights.Flash(e.state.Cue(i), e.timing.CueOn)
		e.sleep(e.timing.CueGap)
	}
}

func (e *Engine) checkUserSequence() bool {

	// Compare each press with the cue in the same position,
	// giving up at the first wrong one
	for i := 0; i < e.state.Length(); i++ {
		expected := e.state.Cue(i)
		actual := e.hw.Buttons.ReadButton()
		e.hw.Lights.Flash(actual, e.timing.CueOn)
		if actual != expected {
			e.log.Debug().Int("position", i).Uint8("expected", expected).Uint8("pressed", actual).Msg("mismatch")
			return false
		}
	}

	return true
}

func (e *Engine) gameOver() {

	// Report the last round the player completed, not the failed one
	score := e.state.Length() - 1
	e.hw.Status.ShowLines(textGameOver, fmt.Sprintf("Score: %d", score))
	e.log.Info().Int("score", score).Msgf("Game over! Your score: %d", score)

	e.lastScore = score
	e.games += 1
	e.state.reset()

	e.sleep(e.timing.GameOverHold)
	e.hw.Score.ShowDashes()
	e.sleep(e.timing.Cooldown)
}
