/*
 * Simon Says for Raspberry Pi Pico
 * Terminal simulator
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tomasemanuel/SimonSaysQuick/config"
	"github.com/tomasemanuel/SimonSaysQuick/game"
	"github.com/tomasemanuel/SimonSaysQuick/seed"
	"github.com/tomasemanuel/SimonSaysQuick/sim"
)

func main() {

	cfg, err := config.LoadSim()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("simulator exited")
	}
}

func run(cfg config.Sim) error {

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	var logFile io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
		logFile = f
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen: %w", err)
	}

	board := sim.NewBoard(screen)
	defer board.Close()

	// The board's serial console gets the readable form, the file gets JSON
	console := zerolog.ConsoleWriter{Out: board, NoColor: true, TimeFormat: "15:04:05"}
	logger := zerolog.New(zerolog.MultiLevelWriter(console, logFile)).Level(level).With().Timestamp().Logger()

	s := cfg.Seed
	if s == 0 {
		s = seed.FromTime(time.Now())
	}

	rig, err := sim.NewRig(board, cfg.Timing, rand.New(rand.NewSource(int64(s))), logger)
	if err != nil {
		return err
	}

	if cfg.Sound {
		spk := sim.NewSpeaker()
		if err := spk.Init(); err != nil {
			// Non-fatal, the game runs silent
			logger.Warn().Err(err).Msg("no audio")
		} else {
			rig.Lights.Tone = spk.Tone
		}
	}

	game.LogBoot(logger, s)

	// The game owns its goroutine for good; quitting just ends the process
	go rig.Engine.Run()
	board.Loop()
	return nil
}
