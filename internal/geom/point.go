// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package geom

import "math"

// Point is an (x, y) coordinate pair. Points are values and never mutated.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointSet is an ordered, non-empty list of points as they appeared in the
// input. Duplicates are preserved.
type PointSet []Point

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}

// RotateAbout returns p rotated counterclockwise by angle degrees around
// center. A zero angle, or a point that coincides with center, yields p
// unchanged.
func (p Point) RotateAbout(angle float64, center Point) Point {
	dx := p.X - center.X
	dy := p.Y - center.Y
	if dx == 0 && dy == 0 {
		return p
	}

	sin, cos := math.Sincos(angle * math.Pi / 180)
	if sin == 0 && cos == 1 {
		return p
	}

	return Point{
		X: cos*dx - sin*dy + center.X,
		Y: sin*dx + cos*dy + center.Y,
	}
}

// Rotate rotates (x, y) by angle degrees around (cx, cy).
func Rotate(x, y, angle, cx, cy float64) Point {
	return Pt(x, y).RotateAbout(angle, Pt(cx, cy))
}

// Rotate returns a new set with every point rotated around center.
func (ps PointSet) Rotate(angle float64, center Point) PointSet {
	out := make(PointSet, len(ps))
	for i, p := range ps {
		out[i] = p.RotateAbout(angle, center)
	}
	return out
}

// IsFinite reports whether every point in the set is finite.
func (ps PointSet) IsFinite() bool {
	for _, p := range ps {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}
