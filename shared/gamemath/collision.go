package gamemath

// Axis selects which coordinate a resolution pass works on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// ResolveAxis pushes box out of the obstacles it overlaps after it was moved
// by delta along axis. box must already include the displacement; the sign of
// delta picks the side to snap to:
//
//	x, delta > 0: right edge to the obstacle's left edge
//	x, delta < 0: left edge to the obstacle's right edge
//	y, delta > 0: bottom edge to the obstacle's top edge (landing)
//	y, delta < 0: top edge to the obstacle's bottom edge (ceiling)
//
// Obstacles are visited in order and each one is tested against the box as
// already snapped by the previous ones. A zero delta never snaps.
func ResolveAxis(box Rect, obstacles []Rect, axis Axis, delta float64) (Rect, bool) {
	if delta == 0 {
		return box, false
	}

	collided := false
	for _, o := range obstacles {
		if !Intersects(box, o) {
			continue
		}
		collided = true
		switch axis {
		case AxisX:
			if delta > 0 {
				box.X = o.X - box.W
			} else {
				box.X = o.Right()
			}
		case AxisY:
			if delta > 0 {
				box.Y = o.Y - box.H
			} else {
				box.Y = o.Bottom()
			}
		}
	}
	return box, collided
}
