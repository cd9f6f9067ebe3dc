package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/types"
	"gridsnake/input"
)

// StartLength is the snake's body length at every (re)spawn.
const StartLength = 6

// DefaultTickInterval is the minimum real time between game steps.
const DefaultTickInterval = 50 * time.Millisecond

// startHead puts the freshly spawned snake along the top row, tail at the
// origin.
var startHead = types.Point{X: StartLength - 1, Y: 0}

// Color names handed to the surface. The ui package maps them onto the
// rendering backend.
const (
	ColorSnake = "green"
	ColorFood  = "red"
)

// Surface is the drawing target, injected at construction.
type Surface interface {
	// Clear fills the whole surface with the background color.
	Clear()
	// FillCell fills one grid cell with the named color.
	FillCell(p types.Point, color string)
	// Bounds reports the grid size derived from the surface dimensions.
	Bounds() types.Grid
}

// FrameHost delivers per-frame callbacks. WaitFrame blocks until the host
// is ready to render the next frame and returns a monotonic timestamp; ok
// is false once the host is shutting down.
type FrameHost interface {
	WaitFrame() (now time.Duration, ok bool)
}

type Config struct {
	TickInterval time.Duration  // minimum time between steps; 0 means DefaultTickInterval
	Seed         uint64         // food placement seed; 0 derives one from the clock
	Logger       zerolog.Logger // zero value disables logging
}

// Game owns the grid, the snake and the food, and drives one step per
// elapsed tick interval.
type Game struct {
	ID    string
	Grid  types.Grid
	Snake *entity.Snake
	Food  types.Point

	surface Surface
	keys    *input.Tracker
	rng     *rand.Rand
	log     zerolog.Logger

	tickInterval time.Duration
	lastUpdate   time.Duration
	stopped      bool
}

func New(surface Surface, keys *input.Tracker, cfg Config) *Game {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := surface.Bounds()
	if grid.Width < 1 {
		grid.Width = 1
	}
	if grid.Height < 1 {
		grid.Height = 1
	}

	g := &Game{
		ID:           uuid.New().String(),
		Grid:         grid,
		surface:      surface,
		keys:         keys,
		rng:          rand.New(rand.NewSource(seed)),
		log:          cfg.Logger,
		tickInterval: cfg.TickInterval,
	}
	g.initialize()
	return g
}

// initialize resets the run: canonical snake, fresh food. Called at
// construction and after every death.
func (g *Game) initialize() {
	g.Snake = entity.NewSnake(startHead, StartLength)
	g.Food = g.randomCell()
	g.log.Debug().Str("game", g.ID).Msg("spawned snake")
}

// randomCell picks a uniform in-bounds cell. It deliberately does not
// exclude cells occupied by the snake: food can land under the body and
// stays unreachable until the body moves off it.
func (g *Game) randomCell() types.Point {
	return types.Point{
		X: g.rng.Intn(g.Grid.Width),
		Y: g.rng.Intn(g.Grid.Height),
	}
}

// resolveCollisions runs once per step, after the snake has advanced.
// Food first: eating grows a new head without a matching tail drop, so a
// pickup frame nets +1 length over the frame's own advance. The death
// check then uses whatever head is current; wall contact or self contact
// restarts the run in place, with no pause and no game-over state.
func (g *Game) resolveCollisions() {
	if g.Snake.Head() == g.Food {
		g.Snake.Grow()
		g.Food = g.randomCell()
	}

	head := g.Snake.Head()
	if !g.Grid.Contains(head) || g.Snake.HasSelfCollision() {
		g.log.Debug().
			Str("game", g.ID).
			Int("length", len(g.Snake.Body)).
			Msg("snake died, restarting")
		g.initialize()
	}
}

// FrameTick draws the current state and runs at most one game step for
// the frame at the given monotonic timestamp. Every frame redraws in
// full: the host presents a fresh buffer per frame, so skipping the draw
// on a gated frame would present stale content. Steps are gated on the
// tick interval; a slow frame widens the gap but never triggers catch-up
// steps.
func (g *Game) FrameTick(now time.Duration) {
	stepped := now-g.lastUpdate > g.tickInterval
	if stepped {
		g.lastUpdate = now
	}

	g.surface.Clear()
	g.surface.FillCell(g.Food, ColorFood)

	// Snake protocol: read input, advance, render. Collision resolution
	// stays out here. Gated frames only re-render the body.
	if stepped {
		g.Snake.SteerFromInput(g.keys)
		g.Snake.Advance()
	}
	g.Snake.Render(func(p types.Point) {
		g.surface.FillCell(p, ColorSnake)
	})

	if stepped {
		g.resolveCollisions()
	}
}

// Run drives FrameTick off the host until the host shuts down or Stop is
// called.
func (g *Game) Run(host FrameHost) {
	for !g.stopped {
		now, ok := host.WaitFrame()
		if !ok {
			return
		}
		g.FrameTick(now)
	}
}

// Stop makes Run return before it waits for another frame.
func (g *Game) Stop() {
	g.stopped = true
}
