// Package camera provides camera types for the software renderer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/goraster/pkg/math"
)

// Camera describes the viewpoint for one frame. The renderer reads it;
// ownership stays with the control driver that updates it between
// frames.
type Camera struct {
	Position math.Vec3
	Rotation math.Quat
	FOV      float32 // field of view in degrees
	Width    int     // viewport width in pixels
	Height   int     // viewport height in pixels
}

// New returns a camera at the origin with identity rotation.
func New(width, height int, fov float32) *Camera {
	return &Camera{
		Rotation: math.QuatIdentity(),
		FOV:      fov,
		Width:    width,
		Height:   height,
	}
}

// PerspectiveDivide returns 1/tan(fov/2), the projection scale factor.
// Derived from FOV on every call so it cannot drift from it.
func (c *Camera) PerspectiveDivide() float32 {
	return float32(1 / gomath.Tan(float64(math.Radians(c.FOV))/2))
}

// AspectRatio returns width/height.
func (c *Camera) AspectRatio() float32 {
	return float32(c.Width) / float32(c.Height)
}
