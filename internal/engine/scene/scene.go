// Package scene issues the viewer's draw commands.
//
// Drawing is expressed against Sink, an immediate-mode style command stream:
// Begin a primitive, set per-vertex attributes, emit vertices, End. Color and
// normal are sticky between vertices and primitives, as in fixed-function GL.
package scene

import (
	"github.com/Faultbox/objview/pkg/math"
)

// Primitive is the kind of geometry between Begin and End.
type Primitive int

const (
	Lines Primitive = iota
	Triangles
	Quads
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case Lines:
		return "Lines"
	case Triangles:
		return "Triangles"
	case Quads:
		return "Quads"
	default:
		return "Unknown"
	}
}

// Sink receives draw commands.
type Sink interface {
	Begin(p Primitive)
	Color(r, g, b float32)
	Normal(x, y, z float32)
	TexCoord(u, v float32)
	Vertex(x, y, z float32)
	End()
}

// AxisExtent is the half-length of each axis gizmo line.
const AxisExtent float32 = 100.0

// DrawAxes draws red X, green Y and blue Z lines through the origin.
func DrawAxes(s Sink) {
	s.Begin(Lines)

	s.Color(1, 0, 0)
	s.Vertex(-AxisExtent, 0, 0)
	s.Vertex(AxisExtent, 0, 0)

	s.Color(0, 1, 0)
	s.Vertex(0, -AxisExtent, 0)
	s.Vertex(0, AxisExtent, 0)

	s.Color(0, 0, 1)
	s.Vertex(0, 0, -AxisExtent)
	s.Vertex(0, 0, AxisExtent)

	s.End()
}

// DrawLines draws a flat list of line endpoints, [x, y, z] per vertex.
func DrawLines(s Sink, verts []float32, color math.Vec3) {
	if len(verts) < 6 {
		return
	}
	s.Begin(Lines)
	s.Color(color.X, color.Y, color.Z)
	for i := 0; i+2 < len(verts); i += 3 {
		s.Vertex(verts[i], verts[i+1], verts[i+2])
	}
	s.End()
}
