// Package camera provides the orbit camera used to view a mesh.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/objview/pkg/math"
)

// Projection parameters.
const (
	FieldOfView float32 = 45.0 // vertical, degrees
	NearPlane   float32 = 1.0
	FarPlane    float32 = 100.0
)

// Orbit holds spherical orbit parameters around a target point.
type Orbit struct {
	Yaw      float32 // Horizontal angle, degrees
	Pitch    float32 // Vertical angle, degrees
	Distance float32 // Distance from target, world units

	Limits Limits
}

// Limits constrains an orbit. Disabled unless Enabled is set.
type Limits struct {
	Enabled     bool
	PitchLimit  float32 // Pitch is kept within [-PitchLimit, PitchLimit]
	MinDistance float32
}

// NewOrbit creates an orbit with the viewer's starting parameters.
func NewOrbit() *Orbit {
	return &Orbit{
		Yaw:      0.0,
		Pitch:    0.0,
		Distance: 50.0,
	}
}

// Eye returns the camera position for the given target.
func (o *Orbit) Eye(center math.Vec3) math.Vec3 {
	yaw := math.Radians(o.Yaw)
	pitch := math.Radians(o.Pitch)

	return math.Vec3{
		X: center.X + o.Distance*math32.Sin(yaw)*math32.Cos(pitch),
		Y: center.Y + o.Distance*math32.Sin(pitch),
		Z: center.Z + o.Distance*math32.Cos(yaw)*math32.Cos(pitch),
	}
}

// ViewMatrix returns the look-at matrix from Eye toward center with +Y up.
func (o *Orbit) ViewMatrix(center math.Vec3) math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(o.Eye(center), center, up)
}

// Projection returns the fixed perspective projection for the aspect ratio.
func Projection(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(FieldOfView), aspect, NearPlane, FarPlane)
}

// Zoom changes the orbit distance. Negative delta moves closer.
func (o *Orbit) Zoom(delta float32) {
	o.Distance += delta
	o.Clamp()
}

// Rotate changes the yaw angle in degrees.
func (o *Orbit) Rotate(deltaYaw float32) {
	o.Yaw += deltaYaw
}

// Clamp applies Limits to the current parameters.
func (o *Orbit) Clamp() {
	if !o.Limits.Enabled {
		return
	}
	if o.Limits.PitchLimit > 0 {
		o.Pitch = max(-o.Limits.PitchLimit, min(o.Pitch, o.Limits.PitchLimit))
	}
	if o.Distance < o.Limits.MinDistance {
		o.Distance = o.Limits.MinDistance
	}
}
