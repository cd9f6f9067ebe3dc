package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsnake/game/entity"
	"gridsnake/game/types"
	"gridsnake/input"
)

func assertUnitAdjacent(t *testing.T, body []types.Point) {
	t.Helper()
	for i := 1; i < len(body); i++ {
		dx := body[i-1].X - body[i].X
		dy := body[i-1].Y - body[i].Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		assert.Equal(t, 1, dx+dy, "cells %d and %d are not unit-adjacent", i-1, i)
	}
}

func TestNewSnakeLayout(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 0}, 6)

	assert.Len(t, s.Body, 6)
	assert.Equal(t, types.Point{X: 5, Y: 0}, s.Head())
	assert.Equal(t, types.Point{X: 0, Y: 0}, s.Body[5])
	assert.Equal(t, types.Right, s.Direction)
	assertUnitAdjacent(t, s.Body)
}

func TestNewSnakeClampsLength(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 2, Y: 2}, 0)
	assert.Len(t, s.Body, 1)
}

func TestAdvancePreservesLength(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 0}, 6)

	s.Advance()

	assert.Len(t, s.Body, 6)
	assert.Equal(t, types.Point{X: 6, Y: 0}, s.Head())
	assert.NotContains(t, s.Body, types.Point{X: 0, Y: 0}, "old tail cell should be gone")
	assertUnitAdjacent(t, s.Body)
}

func TestGrowAddsOneCell(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 0}, 6)

	s.Grow()

	assert.Len(t, s.Body, 7)
	assert.Equal(t, types.Point{X: 6, Y: 0}, s.Head())
	assert.Equal(t, types.Point{X: 0, Y: 0}, s.Body[6], "tail untouched")
	assertUnitAdjacent(t, s.Body)
}

func TestBodyStaysAdjacentThroughMixedMoves(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 5}, 4)
	keys := input.NewTracker()

	script := []struct {
		key  input.Key
		grow bool
	}{
		{input.KeyDown, false},
		{input.KeyDown, true},
		{input.KeyLeft, false},
		{input.KeyUp, true},
		{input.KeyRight, false},
		{input.KeyRight, false},
	}
	for _, step := range script {
		keys.KeyDown(step.key)
		s.SteerFromInput(keys)
		if step.grow {
			s.Grow()
		} else {
			s.Advance()
		}
		keys.KeyUp(step.key)
		assertUnitAdjacent(t, s.Body)
	}
	assert.Len(t, s.Body, 6)
}

func TestSteerIgnoresReversal(t *testing.T) {
	keys := input.NewTracker()

	for _, tc := range []struct {
		dir     types.Point
		reverse input.Key
	}{
		{types.Right, input.KeyLeft},
		{types.Left, input.KeyRight},
		{types.Up, input.KeyDown},
		{types.Down, input.KeyUp},
	} {
		s := entity.NewSnake(types.Point{X: 5, Y: 5}, 3)
		s.Direction = tc.dir

		keys.KeyDown(tc.reverse)
		s.SteerFromInput(keys)
		keys.KeyUp(tc.reverse)

		assert.Equal(t, tc.dir, s.Direction)
	}
}

func TestSteerOppositeKeysHeldTieBreak(t *testing.T) {
	// Left is checked first but rejected as the reverse; right matches the
	// current direction, so the snake stays on course.
	s := entity.NewSnake(types.Point{X: 5, Y: 0}, 3)
	keys := input.NewTracker()

	keys.KeyDown(input.KeyLeft)
	keys.KeyDown(input.KeyRight)
	s.SteerFromInput(keys)

	assert.Equal(t, types.Right, s.Direction)
}

func TestSteerPriorityOrder(t *testing.T) {
	// Up and down both held while moving right: up wins by check order.
	s := entity.NewSnake(types.Point{X: 5, Y: 5}, 3)
	keys := input.NewTracker()

	keys.KeyDown(input.KeyUp)
	keys.KeyDown(input.KeyDown)
	s.SteerFromInput(keys)

	assert.Equal(t, types.Up, s.Direction)
}

func TestSteerNoInputKeepsDirection(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 5}, 3)
	s.Direction = types.Down

	s.SteerFromInput(input.NewTracker())

	assert.Equal(t, types.Down, s.Direction)
}

func TestHasSelfCollision(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 5}, 5)
	assert.False(t, s.HasSelfCollision())

	// Tight clockwise loop: right, down, left, up lands the head back on
	// the body.
	keys := input.NewTracker()
	for _, k := range []input.Key{input.KeyDown, input.KeyLeft, input.KeyUp} {
		keys.KeyDown(k)
		s.SteerFromInput(keys)
		s.Advance()
		keys.KeyUp(k)
	}

	assert.True(t, s.HasSelfCollision())
}

func TestRenderVisitsEveryCellHeadFirst(t *testing.T) {
	s := entity.NewSnake(types.Point{X: 5, Y: 0}, 6)

	var drawn []types.Point
	s.Render(func(p types.Point) {
		drawn = append(drawn, p)
	})

	assert.Equal(t, s.Body, drawn)
}
