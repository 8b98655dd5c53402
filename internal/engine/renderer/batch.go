package renderer

import (
	"github.com/Faultbox/objview/internal/engine/scene"
)

// Vertex is the interleaved vertex format uploaded to the GPU.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [3]float32
	TexCoord [2]float32
}

// vertexStride is the size of Vertex in bytes.
const vertexStride = 11 * 4

// Batch collects immediate-mode commands for one frame and converts them
// into line and triangle lists. Color, normal and texture coordinate are
// sticky across vertices and frames.
type Batch struct {
	Lines     []Vertex
	Triangles []Vertex

	current Vertex
	prim    scene.Primitive
	open    bool
	corners []Vertex
}

// NewBatch creates a batch with white color and a +Z normal.
func NewBatch() *Batch {
	return &Batch{
		current: Vertex{
			Normal: [3]float32{0, 0, 1},
			Color:  [3]float32{1, 1, 1},
		},
	}
}

// Reset drops geometry from the previous frame. Sticky state is kept.
func (b *Batch) Reset() {
	b.Lines = b.Lines[:0]
	b.Triangles = b.Triangles[:0]
	b.corners = b.corners[:0]
	b.open = false
}

// Begin starts a primitive.
func (b *Batch) Begin(p scene.Primitive) {
	b.prim = p
	b.open = true
	b.corners = b.corners[:0]
}

// Color sets the current color.
func (b *Batch) Color(r, g, bl float32) {
	b.current.Color = [3]float32{r, g, bl}
}

// Normal sets the current normal.
func (b *Batch) Normal(x, y, z float32) {
	b.current.Normal = [3]float32{x, y, z}
}

// TexCoord sets the current texture coordinate.
func (b *Batch) TexCoord(u, v float32) {
	b.current.TexCoord = [2]float32{u, v}
}

// Vertex emits a vertex with the current attributes. Outside Begin/End it
// is ignored.
func (b *Batch) Vertex(x, y, z float32) {
	if !b.open {
		return
	}
	v := b.current
	v.Position = [3]float32{x, y, z}
	b.corners = append(b.corners, v)
}

// End closes the primitive. Incomplete trailing groups are dropped:
// pairs for Lines, triples for Triangles, quadruples for Quads.
func (b *Batch) End() {
	if !b.open {
		return
	}
	c := b.corners

	switch b.prim {
	case scene.Lines:
		n := len(c) - len(c)%2
		b.Lines = append(b.Lines, c[:n]...)
	case scene.Triangles:
		n := len(c) - len(c)%3
		b.Triangles = append(b.Triangles, c[:n]...)
	case scene.Quads:
		for i := 0; i+3 < len(c); i += 4 {
			b.Triangles = append(b.Triangles,
				c[i], c[i+1], c[i+2],
				c[i], c[i+2], c[i+3],
			)
		}
	}

	b.corners = b.corners[:0]
	b.open = false
}

// Len returns the number of buffered vertices.
func (b *Batch) Len() int {
	return len(b.Lines) + len(b.Triangles)
}
