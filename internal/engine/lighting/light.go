// Package lighting provides the directional light used to shade mesh faces.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/objview/pkg/math"
)

// DefaultAmbient is the global ambient term added to every lit face.
const DefaultAmbient float32 = 0.2

// Light is a single directional light in eye space.
type Light struct {
	Direction [3]float32 // Unit vector pointing towards the light
	Ambient   float32
}

// Headlight returns a light shining along the view direction.
func Headlight() Light {
	return Light{
		Direction: [3]float32{0, 0, 1},
		Ambient:   DefaultAmbient,
	}
}

// Direction converts yaw/pitch angles in degrees to a unit vector.
// Yaw rotates around Y starting at +Z, pitch is elevation from the XZ plane.
func Direction(yaw, pitch float32) [3]float32 {
	yawRad := math.Radians(yaw)
	pitchRad := math.Radians(pitch)

	return [3]float32{
		math32.Cos(pitchRad) * math32.Sin(yawRad),
		math32.Sin(pitchRad),
		math32.Cos(pitchRad) * math32.Cos(yawRad),
	}
}

// New builds a light from angles and an ambient term clamped to [0, 1].
func New(yaw, pitch, ambient float32) Light {
	return Light{
		Direction: Direction(yaw, pitch),
		Ambient:   max(0, min(ambient, 1)),
	}
}
