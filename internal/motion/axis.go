// Package motion provides per-axis movement controllers for movable bodies.
// A controller owns a fixed speed magnitude for one axis and exposes
// directional commands plus an edge-clamped advance step; games run one
// advance per simulation tick after applying that tick's input.
package motion

import (
	"fmt"

	"github.com/glyphkit/glyphkit/internal/core"
)

// Axis selects which body coordinate a Controller mutates.
type Axis int

const (
	AxisX Axis = iota // horizontal: negative is left, positive is right
	AxisY             // vertical: negative is up, positive is down
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	if a == AxisX {
		return "X"
	}
	return "Y"
}

// Body is a movable entity: a float position and size, a velocity, and the
// container it is confined to. Controllers hold a non-owning reference to it;
// the owning game reads the position back when rendering.
type Body struct {
	X, Y   float64 // Top-left corner
	W, H   float64
	VX, VY float64 // Velocity in cells per tick
	Bounds core.Rect
}

// Left returns the x-coordinate of the left edge.
func (b *Body) Left() float64 { return b.X }

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 { return b.X + b.W }

// Top returns the y-coordinate of the top edge.
func (b *Body) Top() float64 { return b.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 { return b.Y + b.H }

// Rect returns the body's current cell rectangle, truncating the position.
func (b *Body) Rect() core.Rect {
	return core.NewRect(int(b.X), int(b.Y), int(b.W), int(b.H))
}

// Controller drives one axis of a Body with a fixed speed magnitude.
// After any directional command the axis velocity is one of
// {-speed, 0, +speed}; Advance may force it to 0 at a container edge.
type Controller struct {
	body  *Body
	axis  Axis
	speed float64
}

// NewController creates a controller for one axis of a body.
// The speed must be positive and the body must fit inside its bounds;
// a garbage configuration here would silently reverse or wedge movement,
// so it is rejected up front.
func NewController(body *Body, axis Axis, speed float64) (*Controller, error) {
	if body == nil {
		return nil, fmt.Errorf("motion: nil body")
	}
	if speed <= 0 {
		return nil, fmt.Errorf("motion: speed must be positive, got %v", speed)
	}
	if body.W > float64(body.Bounds.W) || body.H > float64(body.Bounds.H) {
		return nil, fmt.Errorf("motion: body %vx%v does not fit bounds %dx%d",
			body.W, body.H, body.Bounds.W, body.Bounds.H)
	}
	return &Controller{body: body, axis: axis, speed: speed}, nil
}

// Speed returns the controller's fixed speed magnitude.
func (c *Controller) Speed() float64 {
	return c.speed
}

// velocity returns a pointer to the axis component of the body's velocity.
func (c *Controller) velocity() *float64 {
	if c.axis == AxisX {
		return &c.body.VX
	}
	return &c.body.VY
}

// MoveNegative sets the axis velocity to -speed (left or up).
// The return value signals that the body needs a repaint.
func (c *Controller) MoveNegative() bool {
	*c.velocity() = -c.speed
	return true
}

// MovePositive sets the axis velocity to +speed (right or down).
// The return value signals that the body needs a repaint.
func (c *Controller) MovePositive() bool {
	*c.velocity() = c.speed
	return true
}

// Stop zeroes the axis velocity. Safe to call repeatedly.
func (c *Controller) Stop() bool {
	*c.velocity() = 0
	return true
}

// Advance moves the body along the axis by its velocity, clamping at the
// container edges. The projected position (current + velocity) is tested so
// a fast body snaps to the boundary instead of overshooting for a frame:
//
//  1. leading far edge past the far bound: clamp flush to the far bound, stop
//  2. leading near edge past the near bound: clamp to the near bound, stop
//  3. otherwise: advance freely, velocity unchanged
//
// Exactly one branch applies per call. Always returns a repaint signal,
// mirroring the directional commands.
func (c *Controller) Advance() bool {
	b := c.body
	if c.axis == AxisX {
		nearBound := float64(b.Bounds.X)
		farBound := float64(b.Bounds.Right())
		switch {
		case b.Right()+b.VX > farBound:
			b.X = farBound - b.W
			c.Stop()
		case b.Left()+b.VX < nearBound:
			b.X = nearBound
			c.Stop()
		default:
			b.X += b.VX
		}
	} else {
		nearBound := float64(b.Bounds.Y)
		farBound := float64(b.Bounds.Bottom())
		switch {
		case b.Bottom()+b.VY > farBound:
			b.Y = farBound - b.H
			c.Stop()
		case b.Top()+b.VY < nearBound:
			b.Y = nearBound
			c.Stop()
		default:
			b.Y += b.VY
		}
	}
	return true
}
