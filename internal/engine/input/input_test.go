package input

import (
	"testing"

	"github.com/Faultbox/objview/internal/engine/camera"
)

// heldKeys is a KeySource backed by a set.
type heldKeys map[Key]bool

func (h heldKeys) KeyDown(k Key) bool { return h[k] }

func TestPoll(t *testing.T) {
	tests := []struct {
		name     string
		keys     heldKeys
		distance float32
		yaw      float32
		held     bool
	}{
		{"nothing held", heldKeys{}, 50, 0, false},
		{"up zooms in", heldKeys{KeyUp: true}, 49, 0, true},
		{"down zooms out", heldKeys{KeyDown: true}, 51, 0, true},
		{"left rotates", heldKeys{KeyLeft: true}, 50, -5, true},
		{"right rotates", heldKeys{KeyRight: true}, 50, 5, true},
		{"opposites cancel", heldKeys{KeyUp: true, KeyDown: true, KeyLeft: true, KeyRight: true}, 50, 0, true},
		{"diagonal", heldKeys{KeyUp: true, KeyRight: true}, 49, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := camera.NewOrbit()
			held := New().Poll(tt.keys, o)

			if held != tt.held {
				t.Errorf("held: got %v, want %v", held, tt.held)
			}
			if o.Distance != tt.distance {
				t.Errorf("distance: got %v, want %v", o.Distance, tt.distance)
			}
			if o.Yaw != tt.yaw {
				t.Errorf("yaw: got %v, want %v", o.Yaw, tt.yaw)
			}
			if o.Pitch != 0 {
				t.Errorf("pitch should never change, got %v", o.Pitch)
			}
		})
	}
}

func TestPollRepeatsEveryFrame(t *testing.T) {
	o := camera.NewOrbit()
	h := New()
	keys := heldKeys{KeyUp: true}

	for i := 0; i < 60; i++ {
		h.Poll(keys, o)
	}

	// Unclamped by default: distance passes through zero.
	if o.Distance != -10 {
		t.Errorf("expected distance -10 after 60 frames, got %v", o.Distance)
	}
}

func TestPollCustomSteps(t *testing.T) {
	o := camera.NewOrbit()
	h := &Handler{ZoomStep: 0.5, RotateStep: 2}

	h.Poll(heldKeys{KeyDown: true, KeyLeft: true}, o)
	if o.Distance != 50.5 || o.Yaw != -2 {
		t.Errorf("got distance %v yaw %v, want 50.5 and -2", o.Distance, o.Yaw)
	}
}

func TestKeyString(t *testing.T) {
	if KeyLeft.String() != "Left" {
		t.Errorf("expected Left, got %s", KeyLeft)
	}
	if Key(99).String() != "Unknown" {
		t.Errorf("expected Unknown, got %s", Key(99))
	}
}
