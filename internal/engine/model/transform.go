package model

import (
	"github.com/Faultbox/goraster/pkg/math"
)

// TransformedVertices applies the model transform to every vertex:
// per-axis scale, then rotation, then translation. The result is
// index-aligned with Positions.
func (m *Model) TransformedVertices() []math.Vec3 {
	out := make([]math.Vec3, len(m.Positions))
	for i, p := range m.Positions {
		scaled := p.Mul(m.Scale)
		rotated := m.Rotation.Rotate(scaled)
		out[i] = rotated.Add(m.Position)
	}
	return out
}

// FaceVertices returns the three transformed vertices of face f,
// in winding order. verts must come from TransformedVertices.
func (m *Model) FaceVertices(verts []math.Vec3, f Face) (v1, v2, v3 math.Vec3) {
	return verts[f[0].Position-1], verts[f[1].Position-1], verts[f[2].Position-1]
}
