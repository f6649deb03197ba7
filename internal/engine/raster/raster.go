// Package raster fills screen-space triangles using scanline interpolation.
package raster

import gomath "math"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// SpanFiller consumes horizontal pixel spans. FillSpan fills the row y
// between x1 and x2 inclusive with the given light level; it is called
// once per scanline by FillTriangle.
type SpanFiller interface {
	FillSpan(x1, x2, y, level int)
}

// FillTriangle fills the triangle (p1, p2, p3) with a flat light level.
//
// The points are sorted by ascending y, then the triangle is split into
// at most one flat-bottom and one flat-top half, each walked scanline
// by scanline with two edge trackers advanced by inverse slopes.
// Degenerate zero-height halves are skipped.
func FillTriangle(dst SpanFiller, p1, p2, p3 Point, level int) {
	// Pairwise compare-and-swap sort on y
	if p2.Y < p1.Y {
		p1, p2 = p2, p1
	}
	if p3.Y < p1.Y {
		p1, p3 = p3, p1
	}
	if p3.Y < p2.Y {
		p2, p3 = p3, p2
	}

	switch {
	case p2.Y == p3.Y:
		fillFlatBottom(dst, float32(p1.X), p1.Y, float32(p2.X), float32(p3.X), p2.Y, level)
	case p1.Y == p2.Y:
		fillFlatTop(dst, float32(p1.X), float32(p2.X), p1.Y, float32(p3.X), p3.Y, level)
	default:
		// Split on the long edge at p2's height
		x4 := float32(p1.X) + float32(p2.Y-p1.Y)/float32(p3.Y-p1.Y)*float32(p3.X-p1.X)
		fillFlatBottom(dst, float32(p1.X), p1.Y, float32(p2.X), x4, p2.Y, level)
		fillFlatTop(dst, float32(p2.X), x4, p2.Y, float32(p3.X), p3.Y, level)
	}
}

// fillFlatBottom walks scanlines from the apex at (xTop, yTop) down to
// the horizontal edge between xb1 and xb2 at yBottom.
func fillFlatBottom(dst SpanFiller, xTop float32, yTop int, xb1, xb2 float32, yBottom, level int) {
	dy := yBottom - yTop
	if dy == 0 {
		return
	}

	inv1 := (xb1 - xTop) / float32(dy)
	inv2 := (xb2 - xTop) / float32(dy)

	cx1, cx2 := xTop, xTop
	for y := yTop; y <= yBottom; y++ {
		span(dst, cx1, cx2, y, level)
		cx1 += inv1
		cx2 += inv2
	}
}

// fillFlatTop walks scanlines from the apex at (xBottom, yBottom) up to
// the horizontal edge between xt1 and xt2 at yTop.
func fillFlatTop(dst SpanFiller, xt1, xt2 float32, yTop int, xBottom float32, yBottom, level int) {
	dy := yBottom - yTop
	if dy == 0 {
		return
	}

	inv1 := (xBottom - xt1) / float32(dy)
	inv2 := (xBottom - xt2) / float32(dy)

	cx1, cx2 := xBottom, xBottom
	for y := yBottom; y >= yTop; y-- {
		span(dst, cx1, cx2, y, level)
		cx1 -= inv1
		cx2 -= inv2
	}
}

// span emits one horizontal fill with both x endpoints truncated toward
// the lower integer.
func span(dst SpanFiller, x1, x2 float32, y, level int) {
	ix1 := int(gomath.Floor(float64(x1)))
	ix2 := int(gomath.Floor(float64(x2)))
	if ix1 > ix2 {
		ix1, ix2 = ix2, ix1
	}
	dst.FillSpan(ix1, ix2, y, level)
}
