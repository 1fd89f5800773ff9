package gamemath

import "testing"

func TestIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 2, 2), true},
		{"touching right edge", NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", NewRect(0, 10, 10, 10), false},
		{"touching corner", NewRect(10, 10, 5, 5), false},
		{"apart", NewRect(20, 20, 5, 5), false},
		{"empty width", NewRect(5, 5, 0, 3), false},
		{"empty height", NewRect(5, 5, 3, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(base, tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", base, tt.b, got, tt.want)
			}
			if got := Intersects(tt.b, base); got != tt.want {
				t.Errorf("Intersects is not symmetric for %v", tt.b)
			}
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := NewRect(10, 20, 40, 60)
	if r.Right() != 50 || r.Bottom() != 80 || r.CenterX() != 30 || r.CenterY() != 50 {
		t.Fatalf("edges wrong: %+v", r)
	}

	u := r.Union(NewRect(0, 70, 5, 20))
	if u != NewRect(0, 20, 50, 70) {
		t.Errorf("Union = %+v", u)
	}

	if got := r.Inset(-1); got != NewRect(9, 19, 42, 62) {
		t.Errorf("Inset(-1) = %+v", got)
	}
	if got := r.Moved(5, -5); got != NewRect(15, 15, 40, 60) {
		t.Errorf("Moved = %+v", got)
	}
}
