package tui

import "github.com/glyphkit/glyphkit/internal/event"

// Terminals report key presses only; a held key shows up as the initial
// press followed by autorepeat, and there is no release event at all.
// keyState reconstructs both transitions: the first sighting of a key
// becomes a key-down, and a key that stops repeating for holdTicks is
// treated as released so games can latch on press/release pairs.
type keyState struct {
	lastSeen map[event.Key]int
}

func newKeyState() *keyState {
	return &keyState{lastSeen: make(map[event.Key]int)}
}

// Observe records a sighting of k at the given tick.
// Returns true when this is a fresh press rather than autorepeat.
func (s *keyState) Observe(k event.Key, tick int) bool {
	_, held := s.lastSeen[k]
	s.lastSeen[k] = tick
	return !held
}

// Expire returns the keys that have not been seen for holdTicks and
// forgets them; the caller emits a key-up for each.
func (s *keyState) Expire(tick, holdTicks int) []event.Key {
	var released []event.Key
	for k, seen := range s.lastSeen {
		if tick-seen >= holdTicks {
			released = append(released, k)
			delete(s.lastSeen, k)
		}
	}
	return released
}

// ReleaseAll forgets every held key and returns them, for focus loss
// and shutdown paths.
func (s *keyState) ReleaseAll() []event.Key {
	released := make([]event.Key, 0, len(s.lastSeen))
	for k := range s.lastSeen {
		released = append(released, k)
		delete(s.lastSeen, k)
	}
	return released
}

// holdTicksFor converts the release window to ticks. The window has to
// outlast the terminal's autorepeat initial delay (typically around half
// a second) or held keys flutter.
func holdTicksFor(tickRate int) int {
	ticks := tickRate * 11 / 20 // 550ms
	if ticks < 1 {
		return 1
	}
	return ticks
}
