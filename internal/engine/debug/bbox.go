// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/objview/pkg/math"
)

// bboxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const bboxWireframeVertexCount = 24

// BBoxColor is the default wireframe color.
var BBoxColor = math.Vec3{X: 1, Y: 1, Z: 0}

// generateBBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func generateBBoxWireframeVertices(min, max math.Vec3) []float32 {
	return []float32{
		// Bottom face (4 edges)
		min.X, min.Y, min.Z, max.X, min.Y, min.Z,
		max.X, min.Y, min.Z, max.X, min.Y, max.Z,
		max.X, min.Y, max.Z, min.X, min.Y, max.Z,
		min.X, min.Y, max.Z, min.X, min.Y, min.Z,
		// Top face (4 edges)
		min.X, max.Y, min.Z, max.X, max.Y, min.Z,
		max.X, max.Y, min.Z, max.X, max.Y, max.Z,
		max.X, max.Y, max.Z, min.X, max.Y, max.Z,
		min.X, max.Y, max.Z, min.X, max.Y, min.Z,
		// Vertical edges (4 edges)
		min.X, min.Y, min.Z, min.X, max.Y, min.Z,
		max.X, min.Y, min.Z, max.X, max.Y, min.Z,
		max.X, min.Y, max.Z, max.X, max.Y, max.Z,
		min.X, min.Y, max.Z, min.X, max.Y, max.Z,
	}
}

// BBoxWireframe returns wireframe vertices for min/max expanded by padding
// on every side. Returns nil for an empty box (min > max on any axis).
func BBoxWireframe(min, max math.Vec3, padding float32) []float32 {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return nil
	}
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	return generateBBoxWireframeVertices(min.Sub(pad), max.Add(pad))
}
