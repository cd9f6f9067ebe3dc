package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/input"
)

// arrowKeys are the keys mirrored into the tracker each frame.
var arrowKeys = []input.Key{input.KeyLeft, input.KeyRight, input.KeyUp, input.KeyDown}

// Window owns the raylib window and implements game.FrameHost. Each
// WaitFrame finishes the previous frame (blocking until the display is
// ready for the next one), mirrors key state into the tracker, and opens
// the next frame.
type Window struct {
	keys    *input.Tracker
	prev    map[input.Key]bool
	inFrame bool
}

func NewWindow(title string, width, height int, keys *input.Tracker) *Window {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(60)
	return &Window{
		keys: keys,
		prev: make(map[input.Key]bool),
	}
}

func (w *Window) Close() {
	if w.inFrame {
		rl.EndDrawing()
		w.inFrame = false
	}
	rl.CloseWindow()
}

// pollKeys turns raylib's polled key state into press/release events on
// the tracker, one transition per key per frame.
func (w *Window) pollKeys() {
	for _, k := range arrowKeys {
		down := rl.IsKeyDown(int32(k))
		if down == w.prev[k] {
			continue
		}
		w.prev[k] = down
		if down {
			w.keys.KeyDown(k)
		} else {
			w.keys.KeyUp(k)
		}
	}
}

func (w *Window) WaitFrame() (time.Duration, bool) {
	if w.inFrame {
		rl.EndDrawing()
		w.inFrame = false
	}
	if rl.WindowShouldClose() {
		return 0, false
	}
	w.pollKeys()
	rl.BeginDrawing()
	w.inFrame = true
	return time.Duration(rl.GetTime() * float64(time.Second)), true
}
