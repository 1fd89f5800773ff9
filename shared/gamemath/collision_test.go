package gamemath

import "testing"

func TestResolveAxis(t *testing.T) {
	floor := NewRect(0, 550, 200, 50)
	wall := NewRect(300, 400, 50, 200)
	obstacles := []Rect{floor, wall}

	tests := []struct {
		name     string
		box      Rect
		axis     Axis
		delta    float64
		want     Rect
		collided bool
	}{
		{
			name:     "landing snaps bottom to floor top",
			box:      NewRect(100, 495, 40, 60),
			axis:     AxisY,
			delta:    5,
			want:     NewRect(100, 490, 40, 60),
			collided: true,
		},
		{
			name:     "rising snaps top to obstacle bottom",
			box:      NewRect(100, 595, 40, 60),
			axis:     AxisY,
			delta:    -5,
			want:     NewRect(100, 600, 40, 60),
			collided: true,
		},
		{
			name:     "moving right snaps to wall left",
			box:      NewRect(265, 450, 40, 60),
			axis:     AxisX,
			delta:    5,
			want:     NewRect(260, 450, 40, 60),
			collided: true,
		},
		{
			name:     "moving left snaps to wall right",
			box:      NewRect(345, 450, 40, 60),
			axis:     AxisX,
			delta:    -5,
			want:     NewRect(350, 450, 40, 60),
			collided: true,
		},
		{
			name:     "zero delta never snaps",
			box:      NewRect(100, 520, 40, 60),
			axis:     AxisY,
			delta:    0,
			want:     NewRect(100, 520, 40, 60),
			collided: false,
		},
		{
			name:     "free space",
			box:      NewRect(100, 100, 40, 60),
			axis:     AxisY,
			delta:    10,
			want:     NewRect(100, 100, 40, 60),
			collided: false,
		},
		{
			name:     "resting exactly on top is not a collision",
			box:      NewRect(100, 490, 40, 60),
			axis:     AxisX,
			delta:    5,
			want:     NewRect(100, 490, 40, 60),
			collided: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, collided := ResolveAxis(tt.box, obstacles, tt.axis, tt.delta)
			if got != tt.want || collided != tt.collided {
				t.Errorf("ResolveAxis() = %+v, %v; want %+v, %v", got, collided, tt.want, tt.collided)
			}
		})
	}
}

func TestResolveAxisVisitsObstaclesInOrder(t *testing.T) {
	// The second obstacle only overlaps once the first one has snapped the box.
	first := NewRect(0, 100, 100, 10)
	second := NewRect(0, 70, 100, 10)
	box := NewRect(10, 81, 20, 24)

	got, collided := ResolveAxis(box, []Rect{first, second}, AxisY, 5)
	if !collided {
		t.Fatal("expected a collision")
	}
	if got.Bottom() != second.Y {
		t.Errorf("bottom = %v, want %v", got.Bottom(), second.Y)
	}

	got, _ = ResolveAxis(box, []Rect{second, first}, AxisY, 5)
	if got.Bottom() != first.Y {
		t.Errorf("reversed order bottom = %v, want %v", got.Bottom(), first.Y)
	}
}

func TestResolvedBoxDoesNotOverlapSingleObstacle(t *testing.T) {
	floor := NewRect(0, 550, 2000, 50)
	for dy := 1.0; dy <= 10; dy++ {
		box := NewRect(50, 490+dy, 40, 60)
		got, _ := ResolveAxis(box, []Rect{floor}, AxisY, dy)
		if Intersects(got, floor) {
			t.Errorf("dy=%v: resolved box %+v still overlaps floor", dy, got)
		}
	}
}
