package scene

import (
	"github.com/Faultbox/objview/pkg/obj"
)

// PrimitiveFor selects Triangles for three-corner faces and Quads otherwise.
func PrimitiveFor(f *obj.Face) Primitive {
	if f.IsTriangle() {
		return Triangles
	}
	return Quads
}

// DrawFace emits one primitive for a face. Each corner supplies its normal and
// texture coordinate when the face carries those sequences, then its position.
func DrawFace(s Sink, m *obj.Mesh, f *obj.Face) {
	hasNormals := len(f.Normals) > 0
	hasTexCoords := len(f.TexCoords) > 0

	s.Begin(PrimitiveFor(f))
	for i, idx := range f.Positions {
		if hasNormals {
			n := m.Normal(f.Normals[i])
			s.Normal(n.X, n.Y, n.Z)
		}
		if hasTexCoords {
			tc := m.TexCoord(f.TexCoords[i])
			s.TexCoord(tc.U, tc.V)
		}
		v := m.Vertex(idx)
		s.Vertex(v.X, v.Y, v.Z)
	}
	s.End()
}

// DrawMesh draws every face of the mesh in file order.
func DrawMesh(s Sink, m *obj.Mesh) {
	for i := range m.Faces {
		DrawFace(s, m, &m.Faces[i])
	}
}
