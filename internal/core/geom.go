// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in world units.
// Y grows downward, matching screen space.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance to another point.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Triangle is a three-cornered shape. Collision uses its bounding region;
// the corner points are kept for rendering.
type Triangle struct {
	P [3]Point
}

// Bounds returns the axis-aligned bounding box of the triangle.
func (t Triangle) Bounds() Rect {
	minX, minY := t.P[0].X, t.P[0].Y
	maxX, maxY := minX, minY
	for _, p := range t.P[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// CircleRectOverlap returns true if a circle centered at (cx, cy) with
// radius r overlaps the rectangle. Tests the closest point on the rect
// against the radius.
func CircleRectOverlap(cx, cy, r float64, rect Rect) bool {
	nx := ClampF(cx, rect.X, rect.Right())
	ny := ClampF(cy, rect.Y, rect.Bottom())
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= r*r
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
