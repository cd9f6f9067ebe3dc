package input

// Key is a platform key code as delivered by the host.
type Key int32

// Arrow key codes (GLFW values, which raylib shares).
const (
	KeyRight Key = 262
	KeyLeft  Key = 263
	KeyDown  Key = 264
	KeyUp    Key = 265
)

// Tracker mirrors the host's currently-held key state. It is a best-effort
// mirror: if the host drops an event the tracker simply stays stale until
// the next one. The host delivers events on the same thread as the game
// loop, so no locking is needed.
type Tracker struct {
	held map[Key]bool
}

func NewTracker() *Tracker {
	return &Tracker{held: make(map[Key]bool)}
}

// KeyDown marks k as held. Repeat events are idempotent.
func (t *Tracker) KeyDown(k Key) {
	t.held[k] = true
}

// KeyUp marks k as released. Releasing a key that was never held is a no-op.
func (t *Tracker) KeyUp(k Key) {
	delete(t.held, k)
}

// IsPressed reports whether k is currently held.
func (t *Tracker) IsPressed(k Key) bool {
	return t.held[k]
}
