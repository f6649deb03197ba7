// Package renderer composes the software rendering pipeline: transform,
// back-face culling, painter's-algorithm depth ordering, projection,
// flat shading and scanline rasterization.
package renderer

import (
	"log/slog"
	"sort"

	"github.com/Faultbox/goraster/internal/engine/camera"
	"github.com/Faultbox/goraster/internal/engine/lighting"
	"github.com/Faultbox/goraster/internal/engine/model"
	"github.com/Faultbox/goraster/internal/engine/raster"
	"github.com/Faultbox/goraster/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	// LightDir is the fixed light direction used for flat shading.
	LightDir math.Vec3
}

// Renderer renders models through the software pipeline. One DrawModel
// call processes one frame to completion; there is no shared state
// between frames.
type Renderer struct {
	lightDir math.Vec3
}

// New creates a renderer with the given configuration.
func New(cfg Config) *Renderer {
	return &Renderer{
		lightDir: cfg.LightDir.Normalize(),
	}
}

// FrameStats reports what happened to each face of a frame.
type FrameStats struct {
	FacesDrawn   int // rasterized
	FacesCulled  int // rejected by back-face culling
	FacesClipped int // dropped because a projected vertex was not visible
}

// faceInfo carries per-face data computed during the visibility pass.
type faceInfo struct {
	face    model.Face
	normal  math.Vec3 // unnormalized, winding-dependent
	depth   float32   // camera distance to the face centroid
	visible bool
}

// orderFaces computes normals, visibility and depth for every face and
// returns them sorted farthest first. The sort is stable so faces at
// equal depth keep their mesh order.
func orderFaces(cam *camera.Camera, m *model.Model, verts []math.Vec3) []faceInfo {
	faces := make([]faceInfo, 0, len(m.Faces))
	for _, f := range m.Faces {
		v1, v2, v3 := m.FaceVertices(verts, f)

		normal := math.Normal(v1, v2, v3)
		view := cam.Position.Sub(v1)
		centroid := v1.Add(v2).Add(v3).Scale(1.0 / 3.0)

		faces = append(faces, faceInfo{
			face:    f,
			normal:  normal,
			depth:   cam.Position.Distance(centroid),
			visible: normal.Dot(view) > 0,
		})
	}

	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].depth > faces[j].depth
	})
	return faces
}

// DrawModel renders one frame of the model into dst.
//
// Faces are drawn farthest first so nearer faces overdraw farther
// ones; the draw order must not be rearranged or the painter's
// approximation breaks. A frame where nothing survives culling is a
// reported no-op, not an error.
func (r *Renderer) DrawModel(dst raster.SpanFiller, cam *camera.Camera, m *model.Model) FrameStats {
	verts := m.TransformedVertices()
	faces := orderFaces(cam, m, verts)

	// Project each vertex once; faces share the results.
	invRot := cam.Rotation.Conjugate()
	points := make([]raster.Point, len(verts))
	onScreen := make([]bool, len(verts))
	for i, v := range verts {
		points[i], onScreen[i] = ProjectVertex(v, cam, invRot)
	}

	var stats FrameStats
	for _, fi := range faces {
		if !fi.visible {
			stats.FacesCulled++
			continue
		}

		i1 := fi.face[0].Position - 1
		i2 := fi.face[1].Position - 1
		i3 := fi.face[2].Position - 1
		if !onScreen[i1] || !onScreen[i2] || !onScreen[i3] {
			stats.FacesClipped++
			continue
		}

		level := lighting.Shade(fi.normal, r.lightDir)
		raster.FillTriangle(dst, points[i1], points[i2], points[i3], level)
		stats.FacesDrawn++
	}

	if stats.FacesDrawn == 0 && len(m.Faces) > 0 {
		slog.Debug("no visible faces this frame",
			"culled", stats.FacesCulled,
			"clipped", stats.FacesClipped,
		)
	}
	return stats
}
