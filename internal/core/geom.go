// Package core provides the terminal-side building blocks shared by the
// renderer and the input layer: cell geometry, a colored character buffer and
// semantic input actions. It has no Bubble Tea dependency so drawing code can
// be tested on plain buffers.
package core

import "math"

// Rect is an axis-aligned rectangle in terminal cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps a pixel-space arena onto a block of terminal cells.
// Terminal cells are roughly twice as tall as they are wide, so a square in
// pixels becomes twice as many columns as rows.
type Viewport struct {
	Origin Rect    // Cells covered by the arena
	ScaleX float64 // Cells per pixel, horizontally
	ScaleY float64 // Cells per pixel, vertically
}

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// FitViewport picks the largest arena rendering that fits in w x h cells,
// preserving the arena aspect ratio, centered horizontally at row top.
func FitViewport(arenaW, arenaH float64, top, w, h int) Viewport {
	if arenaW <= 0 || arenaH <= 0 || w <= 0 || h <= 0 {
		return Viewport{Origin: NewRect(0, top, 0, 0)}
	}

	rows := h
	cols := int(math.Round(float64(rows) * arenaW / arenaH * cellAspect))
	if cols > w {
		cols = w
		rows = int(math.Round(float64(cols) * arenaH / arenaW / cellAspect))
	}
	rows = Max(rows, 1)
	cols = Max(cols, 1)

	return Viewport{
		Origin: NewRect((w-cols)/2, top, cols, rows),
		ScaleX: float64(cols) / arenaW,
		ScaleY: float64(rows) / arenaH,
	}
}

// Col converts an arena x coordinate to an absolute terminal column.
func (v Viewport) Col(px float64) int {
	return v.Origin.X + int(math.Floor(px*v.ScaleX))
}

// Row converts an arena y coordinate to an absolute terminal row.
func (v Viewport) Row(py float64) int {
	return v.Origin.Y + int(math.Floor(py*v.ScaleY))
}

// Span converts a pixel rectangle to cells, never collapsing below one cell.
func (v Viewport) Span(px, py, pw, ph float64) Rect {
	x0, y0 := v.Col(px), v.Row(py)
	x1, y1 := v.Col(px+pw), v.Row(py+ph)
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
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
