// Package lighting provides the fixed light direction and flat shading
// for the software pipeline.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/goraster/pkg/math"
)

// Direction converts longitude/latitude angles to a light direction
// vector. Longitude is rotation around the Y axis (0-360), latitude is
// elevation from the horizon (0-90). Returns a normalized direction
// pointing towards the light.
func Direction(longitude, latitude float32) math.Vec3 {
	lonRad := float64(math.Radians(longitude))
	latRad := float64(math.Radians(latitude))

	return math.Vec3{
		X: float32(gomath.Cos(latRad) * gomath.Sin(lonRad)),
		Y: float32(gomath.Sin(latRad)),
		Z: float32(gomath.Cos(latRad) * gomath.Cos(lonRad)),
	}
}
