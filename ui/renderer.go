package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game/types"
)

// DefaultCellSize is the side of one grid cell in pixels.
const DefaultCellSize = 10

var palette = map[string]rl.Color{
	"green": rl.Green,
	"red":   rl.Red,
	"white": rl.RayWhite,
}

// Renderer draws grid cells onto the raylib frame buffer. It satisfies
// game.Surface.
type Renderer struct {
	cellSize int32
	bounds   types.Grid
}

// NewRenderer derives the grid bounds once from the current screen size.
// The window is not resizable, so the bounds hold for the whole run. Must
// be called after the window exists.
func NewRenderer(cellSize int) *Renderer {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	// A cell larger than the window would derive a zero-cell grid; keep
	// at least one cell per axis.
	bounds := types.Grid{
		Width:  rl.GetScreenWidth() / cellSize,
		Height: rl.GetScreenHeight() / cellSize,
	}
	if bounds.Width < 1 {
		bounds.Width = 1
	}
	if bounds.Height < 1 {
		bounds.Height = 1
	}
	return &Renderer{
		cellSize: int32(cellSize),
		bounds:   bounds,
	}
}

func (r *Renderer) Bounds() types.Grid {
	return r.bounds
}

// Clear fills the whole surface with the background color.
func (r *Renderer) Clear() {
	rl.ClearBackground(rl.RayWhite)
}

// FillCell fills one cell with the named color and strokes its border in
// white. Unknown color names fall back to black.
func (r *Renderer) FillCell(p types.Point, color string) {
	c, ok := palette[color]
	if !ok {
		c = rl.Black
	}
	x := int32(p.X) * r.cellSize
	y := int32(p.Y) * r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, c)
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.RayWhite)
}
