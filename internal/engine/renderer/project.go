package renderer

import (
	gomath "math"

	"github.com/Faultbox/goraster/internal/engine/camera"
	"github.com/Faultbox/goraster/internal/engine/raster"
	"github.com/Faultbox/goraster/pkg/math"
)

// ProjectVertex maps a world-space vertex onto integer screen
// coordinates. invRot is the conjugate of the camera rotation, computed
// once per frame and shared across all vertices.
//
// The second return value is false when the vertex is not visible:
// behind or on the camera plane (camera-space z <= 0), or projected
// outside the viewport. There is no frustum clipping; an invisible
// vertex later drops every face referencing it.
func ProjectVertex(v math.Vec3, cam *camera.Camera, invRot math.Quat) (raster.Point, bool) {
	cs := invRot.Rotate(v.Sub(cam.Position))
	if cs.Z <= 0 {
		return raster.Point{}, false
	}

	pdz := cam.PerspectiveDivide() / cs.Z
	ndcX := cs.X * pdz
	ndcY := cs.Y * pdz

	px := (ndcX/cam.AspectRatio() + 1) * float32(cam.Width) / 2
	py := (1 - ndcY) * float32(cam.Height) / 2

	if px < 0 || px > float32(cam.Width) || py < 0 || py > float32(cam.Height) {
		return raster.Point{}, false
	}

	return raster.Point{X: roundHalfUp(px), Y: roundHalfUp(py)}, true
}

// roundHalfUp rounds to the nearest integer with halves rounding up.
func roundHalfUp(x float32) int {
	return int(gomath.Floor(float64(x) + 0.5))
}
