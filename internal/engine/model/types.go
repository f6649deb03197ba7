// Package model holds renderable mesh instances and their transforms.
package model

import (
	"github.com/Faultbox/goraster/pkg/math"
)

// VertexRef references vertex attributes by 1-based index, matching
// the OBJ convention. TexCoord and Normal are 0 when absent.
type VertexRef struct {
	Position int
	TexCoord int
	Normal   int
}

// Face is a triangle of vertex references. Winding order determines
// the facing direction of the face normal.
type Face [3]VertexRef

// Model is a triangulated mesh with a per-instance transform.
// The transform fields are mutated between frames by the animation
// driver; the renderer only reads them.
type Model struct {
	Positions []math.Vec3
	TexCoords []math.Vec2
	Normals   []math.Vec3
	Faces     []Face

	Scale    math.Vec3
	Rotation math.Quat
	Position math.Vec3
}

// Bounds returns the axis-aligned bounding box of the untransformed
// vertex positions.
func (m *Model) Bounds() (min, max math.Vec3) {
	if len(m.Positions) == 0 {
		return math.Vec3{}, math.Vec3{}
	}

	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return min, max
}
