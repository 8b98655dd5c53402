// Package obj parses Wavefront OBJ mesh files.
package obj

import "github.com/Faultbox/objview/pkg/math"

// boundsSentinel seeds the running bounding box before any vertex is seen.
const boundsSentinel = 1e6

// Vertex is a vertex position.
type Vertex struct {
	X, Y, Z float32
}

// Normal is a vertex normal.
type Normal struct {
	X, Y, Z float32
}

// TexCoord is a texture coordinate.
type TexCoord struct {
	U, V float32
}

// Face is a polygon. Each sequence holds 1-based indices as read from the
// file. TexCoords and Normals are only appended when the corner supplies them,
// so callers must gate on len() rather than assume alignment with Positions.
type Face struct {
	Positions []int
	TexCoords []int
	Normals   []int
}

// Corners returns the number of polygon corners.
func (f *Face) Corners() int {
	return len(f.Positions)
}

// IsTriangle reports whether the face has exactly three corners.
func (f *Face) IsTriangle() bool {
	return len(f.Positions) == 3
}

// Mesh holds every record loaded from one OBJ file.
type Mesh struct {
	Vertices  []Vertex
	Normals   []Normal
	TexCoords []TexCoord
	Faces     []Face

	// Running bounding box over Vertices.
	Min math.Vec3
	Max math.Vec3

	// Center is the midpoint of Min and Max.
	Center math.Vec3
}

// Stats summarizes a mesh.
type Stats struct {
	Vertices  int
	Normals   int
	TexCoords int
	Faces     int
	Triangles int
	Quads     int // four or more corners
	Empty     int // fewer than three corners, nothing is drawn
}

// Stats returns record counts for the mesh.
func (m *Mesh) Stats() Stats {
	s := Stats{
		Vertices:  len(m.Vertices),
		Normals:   len(m.Normals),
		TexCoords: len(m.TexCoords),
		Faces:     len(m.Faces),
	}
	for i := range m.Faces {
		switch n := m.Faces[i].Corners(); {
		case n == 3:
			s.Triangles++
		case n > 3:
			s.Quads++
		default:
			s.Empty++
		}
	}
	return s
}

// Bounds returns the tracked bounding box.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	return m.Min, m.Max
}

// Vertex returns the vertex referenced by a 1-based index.
func (m *Mesh) Vertex(idx int) Vertex {
	return m.Vertices[idx-1]
}

// Normal returns the normal referenced by a 1-based index.
func (m *Mesh) Normal(idx int) Normal {
	return m.Normals[idx-1]
}

// TexCoord returns the texture coordinate referenced by a 1-based index.
func (m *Mesh) TexCoord(idx int) TexCoord {
	return m.TexCoords[idx-1]
}

// reset clears all records and seeds the bounding box.
func (m *Mesh) reset() {
	*m = Mesh{
		Min: math.Vec3{X: boundsSentinel, Y: boundsSentinel, Z: boundsSentinel},
		Max: math.Vec3{X: -boundsSentinel, Y: -boundsSentinel, Z: -boundsSentinel},
	}
}

// addVertex appends a vertex and grows the bounding box.
func (m *Mesh) addVertex(v Vertex) {
	m.Vertices = append(m.Vertices, v)

	m.Min.X = min(m.Min.X, v.X)
	m.Min.Y = min(m.Min.Y, v.Y)
	m.Min.Z = min(m.Min.Z, v.Z)
	m.Max.X = max(m.Max.X, v.X)
	m.Max.Y = max(m.Max.Y, v.Y)
	m.Max.Z = max(m.Max.Z, v.Z)
}
