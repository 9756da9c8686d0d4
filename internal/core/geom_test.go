package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{3, 0, 3, 3},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestFieldWrap(t *testing.T) {
	f := NewField(100, 50)

	tests := []struct {
		name     string
		in, want Point
	}{
		{"inside unchanged", Point{10, 20}, Point{10, 20}},
		{"origin stays", Point{0, 0}, Point{0, 0}},
		{"right edge maps to left", Point{100, 10}, Point{0, 10}},
		{"past right", Point{105, 10}, Point{5, 10}},
		{"past left", Point{-5, 10}, Point{95, 10}},
		{"past bottom", Point{10, 52}, Point{10, 2}},
		{"past top", Point{10, -1}, Point{10, 49}},
		{"both axes", Point{-10, 60}, Point{90, 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := f.Wrap(tc.in)
			if !got.ApproxEqual(tc.want) {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.want)
			}
			if !f.Contains(got) {
				t.Errorf("Wrap(%v) = %v is outside the field", tc.in, got)
			}
		})
	}
}

func TestFieldWrapTinyNegative(t *testing.T) {
	f := NewField(100, 100)
	got := f.Wrap(Point{-1e-18, 0})
	if !f.Contains(got) {
		t.Errorf("Wrap of a tiny negative coordinate left the field: %v", got)
	}
}

func TestFieldDelta(t *testing.T) {
	f := NewField(100, 100)

	tests := []struct {
		name string
		a, b Point
		want Dist
	}{
		{"direct", Point{10, 10}, Point{20, 15}, Dist{10, 5}},
		{"across right edge", Point{95, 50}, Point{5, 50}, Dist{10, 0}},
		{"across left edge", Point{5, 50}, Point{95, 50}, Dist{-10, 0}},
		{"across bottom edge", Point{50, 98}, Point{50, 3}, Dist{0, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := f.Delta(tc.a, tc.b)
			if !got.ApproxEqual(tc.want) {
				t.Errorf("Delta(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 0}, {359, 359}, {360, 0}, {370, 10}, {-10, 350}, {-720, 0},
	}
	for _, tc := range tests {
		if got := NormalizeDegrees(tc.in); got != tc.want {
			t.Errorf("NormalizeDegrees(%d) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestHeadingIsClockwise(t *testing.T) {
	right := Heading(0)
	down := Heading(90)

	if math.Abs(right[0]-1) > 1e-9 || math.Abs(right[1]) > 1e-9 {
		t.Errorf("Heading(0) = %v, expected +x", right)
	}
	// y grows downward, so clockwise from +x points down the screen
	if math.Abs(down[0]) > 1e-9 || math.Abs(down[1]-1) > 1e-9 {
		t.Errorf("Heading(90) = %v, expected +y", down)
	}

	rotated := Rotate(Vec2{1, 0}, math.Pi/2)
	if !rotated.ApproxEqualThreshold(down, 1e-9) {
		t.Errorf("Rotate by 90deg = %v, expected %v", rotated, down)
	}
}

func TestUnitDegenerate(t *testing.T) {
	if got := Unit(Vec2{}); got != (Vec2{}) {
		t.Errorf("Unit(zero) = %v, expected zero", got)
	}
	if got := Unit(Vec2{3, 4}); math.Abs(got.Len()-1) > 1e-12 {
		t.Errorf("Unit length = %f, expected 1", got.Len())
	}
}

func TestClampLen(t *testing.T) {
	v := ClampLen(Vec2{30, 40}, 10)
	if math.Abs(v.Len()-10) > 1e-9 {
		t.Errorf("ClampLen length = %f, expected 10", v.Len())
	}
	short := Vec2{1, 1}
	if ClampLen(short, 10) != short {
		t.Error("ClampLen should not change a short vector")
	}
}
