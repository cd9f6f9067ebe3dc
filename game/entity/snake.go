package entity

import (
	"gridsnake/game/types"
	"gridsnake/input"
)

// Snake is the player body. Body is head-first: Body[0] is the head, and
// consecutive cells are always one unit step apart.
type Snake struct {
	Body      []types.Point
	Direction types.Point
}

// NewSnake lays the body out horizontally with the head at start and the
// tail extending to the left, moving right. Length is clamped to at least
// one cell.
func NewSnake(start types.Point, length int) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]types.Point, length)
	for i := range body {
		body[i] = types.Point{X: start.X - i, Y: start.Y}
	}
	return &Snake{Body: body, Direction: types.Right}
}

// Head returns the leading body cell.
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// steering pairs each arrow key with its direction, in check order.
var steering = []struct {
	key input.Key
	dir types.Point
}{
	{input.KeyLeft, types.Left},
	{input.KeyRight, types.Right},
	{input.KeyUp, types.Up},
	{input.KeyDown, types.Down},
}

// SteerFromInput applies the first held arrow key whose direction is not
// the exact reverse of the current one. Reversing keys are skipped, not
// blocking: with left and right both held while moving right, left is
// rejected and right keeps the snake on course. No held key leaves the
// direction unchanged.
func (s *Snake) SteerFromInput(keys *input.Tracker) {
	for _, c := range steering {
		if !keys.IsPressed(c.key) {
			continue
		}
		if c.dir == s.Direction.Neg() {
			continue
		}
		s.Direction = c.dir
		return
	}
}

// Grow inserts a new head one step along the current direction. The tail
// is untouched, so the body gains one cell.
func (s *Snake) Grow() {
	head := s.Head().Add(s.Direction)
	s.Body = append([]types.Point{head}, s.Body...)
}

// Advance moves the snake one step: a new head is added and the tail cell
// dropped, keeping the length constant.
func (s *Snake) Advance() {
	s.Grow()
	s.Body = s.Body[:len(s.Body)-1]
}

// HasSelfCollision reports whether the head occupies the same cell as any
// other body segment. Call it after Advance or Grow, before the next
// frame's steering.
func (s *Snake) HasSelfCollision() bool {
	head := s.Head()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Render invokes draw for every body cell, head first. The whole body is
// drawn in one color; the callback owns the color choice.
func (s *Snake) Render(draw func(types.Point)) {
	for _, p := range s.Body {
		draw(p)
	}
}
