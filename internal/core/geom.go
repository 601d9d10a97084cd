// Package core provides fundamental types and utilities shared by the engine
// and the terminal front end. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

// Vec2 is a 2D vector of playfield units. It is treated as a value type.
type Vec2 struct {
	X, Y float64
}

// V creates a vector.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Mul multiplies component-wise. Used to apply reflection vectors.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Box is an axis-aligned box: top-left position plus size.
// Edges are always derived from Pos and Size, never stored.
type Box struct {
	Pos  Vec2
	Size Vec2
}

// NewBox creates a box at (x, y) with the given width and height.
func NewBox(x, y, w, h float64) Box {
	return Box{Pos: V(x, y), Size: V(w, h)}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Pos.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Pos.X + b.Size.X }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Pos.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Pos.Y + b.Size.Y }

// CenterX returns the horizontal midpoint.
func (b Box) CenterX() float64 { return b.Pos.X + b.Size.X/2 }

// CenterY returns the vertical midpoint.
func (b Box) CenterY() float64 { return b.Pos.Y + b.Size.Y/2 }

// Rect represents an integer axis-aligned rectangle in screen cells.
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

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
// When hi < lo the result is lo.
func ClampF(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
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
