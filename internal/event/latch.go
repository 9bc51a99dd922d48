package event

// Latch tracks a single key's press state across key-down and key-up and
// fires its release action exactly once per press/release pair. A release
// with no preceding press (lost focus, key held before the latch existed)
// falls through to the rest of the chain and fires nothing.
type Latch struct {
	key       Key
	pressed   bool
	onRelease func()
}

// NewLatch creates a latch for the given key. The action may be nil,
// in which case a valid press/release pair is consumed silently.
func NewLatch(key Key, onRelease func()) *Latch {
	return &Latch{key: key, onRelease: onRelease}
}

// Pressed reports whether the tracked key is currently held.
func (l *Latch) Pressed() bool {
	return l.pressed
}

// HandleKeyDown consumes a press of the tracked key without acting on it.
// Other keys are left for the rest of the chain.
func (l *Latch) HandleKeyDown(k Key) bool {
	if k != l.key {
		return false
	}
	l.pressed = true
	return true
}

// HandleKeyUp fires the release action when the tracked key is released
// after a press this latch observed. Releases of other keys, and releases
// without a tracked press, are not consumed.
func (l *Latch) HandleKeyUp(k Key) bool {
	if k != l.key || !l.pressed {
		return false
	}
	l.pressed = false
	if l.onRelease != nil {
		l.onRelease()
	}
	return true
}
