// Package window handles window and OpenGL context creation.
package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Faultbox/objview/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// ErrUnknownBackend is returned for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown window backend")

// Config holds window configuration.
type Config struct {
	Title   string
	Width   int
	Height  int
	VSync   bool
	Backend string
}

// Window is a fixed-size window with a current OpenGL 4.1 core context.
type Window interface {
	input.KeySource

	// PollEvents processes pending events. Returns true if the window
	// should close.
	PollEvents() bool
	SwapBuffers()
	Size() (int, int)
	Close()
}

// New creates a window using the configured backend. An empty backend
// selects SDL2.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case "", BackendSDL:
		w, err := newSDLWindow(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case BackendGLFW:
		w, err := newGLFWWindow(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
