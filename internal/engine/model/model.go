package model

import (
	"errors"
	"fmt"

	"github.com/Faultbox/goraster/pkg/formats"
	"github.com/Faultbox/goraster/pkg/math"
)

// Model construction errors.
var (
	ErrEmptyMesh       = errors.New("mesh has no positions")
	ErrIndexOutOfRange = errors.New("face index out of range")
)

// FromOBJ builds a Model from parsed OBJ data with the default
// transform: unit scale, identity rotation, zero position.
// Face indices are validated against the attribute arrays; an invalid
// mesh yields an error and no model.
func FromOBJ(obj *formats.OBJ) (*Model, error) {
	if len(obj.Positions) == 0 {
		return nil, ErrEmptyMesh
	}

	m := &Model{
		Positions: make([]math.Vec3, len(obj.Positions)),
		TexCoords: make([]math.Vec2, len(obj.TexCoords)),
		Normals:   make([]math.Vec3, len(obj.Normals)),
		Faces:     make([]Face, len(obj.Faces)),

		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		Rotation: math.QuatIdentity(),
		Position: math.Vec3{},
	}

	for i, p := range obj.Positions {
		m.Positions[i] = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	for i, t := range obj.TexCoords {
		m.TexCoords[i] = math.Vec2{X: t[0], Y: t[1]}
	}
	for i, n := range obj.Normals {
		m.Normals[i] = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
	}

	for i, face := range obj.Faces {
		for j, ref := range face {
			if ref.Position < 1 || ref.Position > len(m.Positions) {
				return nil, fmt.Errorf("%w: face %d vertex %d references position %d of %d",
					ErrIndexOutOfRange, i, j, ref.Position, len(m.Positions))
			}
			if ref.TexCoord != 0 && (ref.TexCoord < 1 || ref.TexCoord > len(m.TexCoords)) {
				return nil, fmt.Errorf("%w: face %d vertex %d references texcoord %d of %d",
					ErrIndexOutOfRange, i, j, ref.TexCoord, len(m.TexCoords))
			}
			if ref.Normal != 0 && (ref.Normal < 1 || ref.Normal > len(m.Normals)) {
				return nil, fmt.Errorf("%w: face %d vertex %d references normal %d of %d",
					ErrIndexOutOfRange, i, j, ref.Normal, len(m.Normals))
			}
			m.Faces[i][j] = VertexRef{
				Position: ref.Position,
				TexCoord: ref.TexCoord,
				Normal:   ref.Normal,
			}
		}
	}

	return m, nil
}

// LoadOBJFile parses an OBJ file and builds a Model from it.
func LoadOBJFile(path string) (*Model, error) {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return nil, err
	}
	return FromOBJ(obj)
}
