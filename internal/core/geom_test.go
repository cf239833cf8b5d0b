package core

import "testing"

func TestRectIntersects(t *testing.T) {
	board := NewRect(12, 1, 22, 22)

	tests := []struct {
		name     string
		panel    Rect
		expected bool
	}{
		{"hold panel left of board", NewRect(0, 1, 12, 6), false},
		{"preview panel right of board", NewRect(34, 1, 10, 20), false},
		{"panel overlapping right edge", NewRect(33, 1, 10, 20), true},
		{"panel below board", NewRect(12, 23, 22, 1), false},
		{"panel inside board", NewRect(14, 5, 4, 4), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := board.Intersects(tc.panel); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.panel.Intersects(board); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{5, 5, true},
		{14, 14, true},
		{15, 15, false},
		{4, 10, false},
		{10, 4, false},
		{10, 10, true},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
	if x, y := r.Center(); x != 25 || y != 40 {
		t.Errorf("Center() = (%d, %d), expected (25, 40)", x, y)
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		n    int
		want Rect
	}{
		{"box border", NewRect(0, 0, 22, 22), 1, NewRect(1, 1, 20, 20)},
		{"no inset", NewRect(3, 4, 5, 6), 0, NewRect(3, 4, 5, 6)},
		{"too small", NewRect(0, 0, 1, 8), 1, NewRect(0, 4, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.n); got != tc.want {
				t.Errorf("Inset(%d) = %+v, expected %+v", tc.n, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %v, expected 0", got)
	}
	if got := ClampF(0.35, 0, 1); got != 0.35 {
		t.Errorf("ClampF(0.35, 0, 1) = %v, expected 0.35", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min should return the smaller value")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max should return the larger value")
	}
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs should return the magnitude")
	}
}
