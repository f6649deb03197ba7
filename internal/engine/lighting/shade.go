package lighting

import (
	"github.com/Faultbox/goraster/pkg/math"
)

// Levels is the number of discrete light levels. Shade returns values
// in [0, Levels-1]; mapping a level to a display color is a palette
// concern outside the pipeline.
const Levels = 5

// Shade computes the discrete light level of a face from its normal
// and the light direction. The normal is normalized here, so callers
// may pass the raw winding-order normal. Negative incidence clamps to
// level 0.
func Shade(normal, lightDir math.Vec3) int {
	d := normal.Normalize().Dot(lightDir)
	if d < 0 {
		d = 0
	}

	level := int(d * Levels)
	if level > Levels-1 {
		level = Levels - 1
	}
	return level
}
