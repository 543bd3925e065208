package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 4 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (4, 5)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 9, true},
		{10, 10, false}, // Right/bottom edges are exclusive
		{-1, 5, false},
		{5, -1, false},
		{5, 5, true},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should pass through in-range values")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp should raise low values to min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should lower high values to max")
	}
}

func TestClampF(t *testing.T) {
	if ClampF(0.5, 0.0, 1.0) != 0.5 {
		t.Error("ClampF should pass through in-range values")
	}
	if ClampF(-0.5, 0.0, 1.0) != 0.0 {
		t.Error("ClampF should raise low values to min")
	}
	if ClampF(1.5, 0.0, 1.0) != 1.0 {
		t.Error("ClampF should lower high values to max")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min wrong")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max wrong")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs wrong")
	}
}
