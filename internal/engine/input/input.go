// Package input turns polled key state into orbit changes.
package input

import (
	"github.com/Faultbox/objview/internal/engine/camera"
)

// Key identifies one of the directional keys the viewer polls.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// KeySource reports whether a key is currently held.
type KeySource interface {
	KeyDown(k Key) bool
}

// Default per-frame steps.
const (
	DefaultZoomStep   float32 = 1.0 // world units
	DefaultRotateStep float32 = 5.0 // degrees
)

// Handler applies held keys to an orbit once per frame.
type Handler struct {
	ZoomStep   float32
	RotateStep float32
}

// New creates a handler with the default steps.
func New() *Handler {
	return &Handler{
		ZoomStep:   DefaultZoomStep,
		RotateStep: DefaultRotateStep,
	}
}

// Poll reads the four directional keys and mutates the orbit.
// Up/Down move closer/farther, Left/Right rotate the yaw.
// Returns true if any key was held.
func (h *Handler) Poll(src KeySource, o *camera.Orbit) bool {
	held := false

	if src.KeyDown(KeyUp) {
		o.Zoom(-h.ZoomStep)
		held = true
	}
	if src.KeyDown(KeyDown) {
		o.Zoom(h.ZoomStep)
		held = true
	}
	if src.KeyDown(KeyLeft) {
		o.Rotate(-h.RotateStep)
		held = true
	}
	if src.KeyDown(KeyRight) {
		o.Rotate(h.RotateStep)
		held = true
	}

	return held
}
