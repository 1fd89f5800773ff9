// Package gamemath holds engine-independent geometry shared by the game core
// and the renderers. It has no dependencies on ebitengine, donburi or resolv.
package gamemath

// Rect is an axis-aligned box. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Empty reports whether the rect covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Moved returns r translated by (dx, dy).
func (r Rect) Moved(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.Right(), o.Right()) - x,
		H: max(r.Bottom(), o.Bottom()) - y,
	}
}

// Inset grows (negative d) or shrinks (positive d) the rect on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Intersects reports whether a and b overlap. Boxes are half-open, so boxes
// that only share an edge do not intersect, and empty boxes never do.
func Intersects(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}
