package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gridsnake/game"
	"gridsnake/input"
	"gridsnake/ui"
)

func main() {
	speed := flag.Int("speed", 50, "Minimum milliseconds between game steps (lower = faster)")
	width := flag.Int("width", 640, "Window width in pixels")
	height := flag.Int("height", 480, "Window height in pixels")
	cell := flag.Int("cell", ui.DefaultCellSize, "Cell size in pixels")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time-based)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	keys := input.NewTracker()
	win := ui.NewWindow("Snake", *width, *height, keys)
	defer win.Close()

	renderer := ui.NewRenderer(*cell)
	g := game.New(renderer, keys, game.Config{
		TickInterval: time.Duration(*speed) * time.Millisecond,
		Seed:         *seed,
		Logger:       log.Logger,
	})

	bounds := renderer.Bounds()
	log.Info().
		Str("game", g.ID).
		Int("gridWidth", bounds.Width).
		Int("gridHeight", bounds.Height).
		Int("speedMs", *speed).
		Msg("Starting game loop")

	g.Run(win)

	log.Info().Str("game", g.ID).Msg("Window closed, exiting")
}
