// Package core provides fundamental types and utilities shared by the game
// and its hosts. It contains no external dependencies (especially no Bubble
// Tea or Ebiten) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned block of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Bounds is an axis-aligned bounding box in world units.
// X and Y are the top-left corner; y grows downward.
type Bounds struct {
	X, Y float64
	W, H float64
}

// NewBounds creates a bounding box with the given position and size.
func NewBounds(x, y, w, h float64) Bounds {
	return Bounds{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Bounds) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Bounds) Bottom() float64 {
	return b.Y + b.H
}

// Intersects reports whether two boxes overlap.
// Edges are closed: boxes that only touch along an edge or a corner intersect.
func (b Bounds) Intersects(other Bounds) bool {
	if b.X > other.Right() || other.X > b.Right() {
		return false
	}
	if b.Y > other.Bottom() || other.Y > b.Bottom() {
		return false
	}
	return true
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
