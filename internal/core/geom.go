// Package core provides fundamental types and utilities shared by the puzzle
// and the terminal platform: screen buffer, input intents, layout geometry
// and the deferred-callback scheduler. It has no external dependencies.
package core

// Rect is an axis-aligned screen area, used for mouse hit testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
