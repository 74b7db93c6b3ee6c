// Package game implements the skyhop simulation: procedural level
// generation, fixed-step physics, and the session state machine.
// It draws into a core.Screen and knows nothing about the terminal.
package game

import (
	"github.com/pgalkin/skyhop/internal/core"
)

// Platform is a solid surface the player can land on. Immutable once
// generated; only the top edge is collidable.
type Platform struct {
	core.Rect
}

// Spike is a hazard triangle sitting on a platform. Touching its bounding
// region costs a life.
type Spike struct {
	Tri core.Triangle
}

// Bounds returns the spike's collision region.
func (s Spike) Bounds() core.Rect {
	return s.Tri.Bounds()
}

// Goal is the circular region that ends the level when touched.
// X, Y is the top-left corner of the enclosing square, like the platforms.
type Goal struct {
	X, Y     float64
	Diameter float64
}

// Center returns the goal's center point.
func (g Goal) Center() core.Point {
	return core.Point{X: g.X + g.Diameter/2, Y: g.Y + g.Diameter/2}
}

// Touches returns true if the player's box overlaps the goal circle.
func (g Goal) Touches(player core.Rect) bool {
	c := g.Center()
	return core.CircleRectOverlap(c.X, c.Y, g.Diameter/2, player)
}

// Level is one generated arrangement. The whole object set is replaced on
// every transition; nothing here is mutated during play.
type Level struct {
	Index     int
	Spawn     core.Point // Respawn anchor for this level
	Goal      Goal
	Platforms []Platform
	Spikes    []Spike
}
