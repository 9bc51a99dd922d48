// Package event defines the kit's keyboard event model: key codes, a
// capability-based handler interface, and an explicit delegation chain.
// Scenes compose behavior by wiring small handlers into a chain instead of
// overriding methods; a handler that does not consume an event lets it fall
// through to the next one.
package event

// Key identifies a logical key, abstracted from the terminal's encoding.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyPause
	KeyRestart
	KeyQuit
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeySpace:
		return "Space"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyPause:
		return "Pause"
	case KeyRestart:
		return "Restart"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key transition delivered by the platform.
// Released is false for key-down and true for key-up.
type KeyEvent struct {
	Key      Key
	Released bool
}

// KeyHandler is the capability interface for key event consumers.
// Both methods report whether the event was consumed; an unconsumed
// event is forwarded to the next handler in the chain.
type KeyHandler interface {
	HandleKeyDown(k Key) bool
	HandleKeyUp(k Key) bool
}

// Chain dispatches key events through an ordered list of handlers.
// Dispatch stops at the first handler that consumes the event.
type Chain struct {
	handlers []KeyHandler
}

// NewChain creates a chain with the given handlers, dispatched in order.
func NewChain(handlers ...KeyHandler) *Chain {
	return &Chain{handlers: handlers}
}

// Append adds a handler to the end of the chain.
func (c *Chain) Append(h KeyHandler) {
	c.handlers = append(c.handlers, h)
}

// KeyDown dispatches a key-down event.
// Returns true if some handler consumed it.
func (c *Chain) KeyDown(k Key) bool {
	for _, h := range c.handlers {
		if h.HandleKeyDown(k) {
			return true
		}
	}
	return false
}

// KeyUp dispatches a key-up event.
// Returns true if some handler consumed it.
func (c *Chain) KeyUp(k Key) bool {
	for _, h := range c.handlers {
		if h.HandleKeyUp(k) {
			return true
		}
	}
	return false
}

// Dispatch routes a KeyEvent to the matching chain direction.
func (c *Chain) Dispatch(ev KeyEvent) bool {
	if ev.Released {
		return c.KeyUp(ev.Key)
	}
	return c.KeyDown(ev.Key)
}

// Func adapts plain functions into a KeyHandler. Nil functions
// never consume, so a Func can handle only one direction.
type Func struct {
	Down func(k Key) bool
	Up   func(k Key) bool
}

// HandleKeyDown implements KeyHandler.
func (f Func) HandleKeyDown(k Key) bool {
	if f.Down == nil {
		return false
	}
	return f.Down(k)
}

// HandleKeyUp implements KeyHandler.
func (f Func) HandleKeyUp(k Key) bool {
	if f.Up == nil {
		return false
	}
	return f.Up(k)
}
