package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"touching right edge", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"touching bottom edge", Box{0, 0, 10, 10}, Box{0, 10, 10, 10}, false},
		{"sub-pixel overlap", Box{0, 0, 10, 10}, Box{9.5, 9.5, 10, 10}, true},
		{"contained", Box{0, 0, 64, 64}, Box{16, 16, 8, 8}, true},
		{"far apart", Box{0, 0, 10, 10}, Box{100, 100, 10, 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 100, Y: 400, W: 32, H: 48}
	if b.Right() != 132 {
		t.Errorf("Right() = %v, expected 132", b.Right())
	}
	if b.Bottom() != 448 {
		t.Errorf("Bottom() = %v, expected 448", b.Bottom())
	}
	if b.CenterX() != 116 || b.CenterY() != 424 {
		t.Errorf("Center = (%v, %v), expected (116, 424)", b.CenterX(), b.CenterY())
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float64
	}{
		{0, 100, 0.1, 10},
		{100, 0, 0.5, 50},
		{5, 5, 0.7, 5},
		{0, 10, 1, 10},
	}

	for _, tc := range tests {
		if got := Lerp(tc.a, tc.b, tc.t); got != tc.expected {
			t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.t, got, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(-3.5) != -1 || Sign(2) != 1 || Sign(0) != 0 {
		t.Error("Sign returned unexpected values")
	}
	if AbsF(-2.5) != 2.5 || AbsF(2.5) != 2.5 {
		t.Error("AbsF returned unexpected values")
	}
}
