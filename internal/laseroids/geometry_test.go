package laseroids

import (
	"math"
	"testing"

	"github.com/vovakirdan/laseroids/internal/core"
)

var square = []core.Point{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}}

func TestPointInPolygon(t *testing.T) {
	tests := []struct {
		p    core.Point
		want bool
	}{
		{core.Point{0, 0}, true},
		{core.Point{9, -9}, true},
		{core.Point{11, 0}, false},
		{core.Point{0, -20}, false},
		{core.Point{math.NaN(), 0}, false},
	}
	for _, tt := range tests {
		if got := pointInPolygon(tt.p, square); got != tt.want {
			t.Errorf("pointInPolygon(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if pointInPolygon(core.Point{0, 0}, square[:2]) {
		t.Error("polygon with fewer than 3 vertices should contain nothing")
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, q1, q2 core.Point
		want           bool
	}{
		{"crossing", core.Point{-1, 0}, core.Point{1, 0}, core.Point{0, -1}, core.Point{0, 1}, true},
		{"touching end", core.Point{0, 0}, core.Point{1, 0}, core.Point{1, 0}, core.Point{1, 1}, true},
		{"apart", core.Point{0, 0}, core.Point{1, 0}, core.Point{2, -1}, core.Point{2, 1}, false},
		{"parallel", core.Point{0, 0}, core.Point{1, 0}, core.Point{0, 1}, core.Point{1, 1}, false},
		{"collinear overlap", core.Point{0, 0}, core.Point{2, 0}, core.Point{1, 0}, core.Point{3, 0}, true},
		{"collinear apart", core.Point{0, 0}, core.Point{1, 0}, core.Point{2, 0}, core.Point{3, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentsIntersect(tt.p1, tt.p2, tt.q1, tt.q2); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentHitsPolygon(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Point
		want bool
	}{
		{"inside", core.Point{-1, 0}, core.Point{1, 0}, true},
		{"through", core.Point{-20, 0}, core.Point{20, 0}, true},
		{"entering", core.Point{5, 0}, core.Point{30, 0}, true},
		{"outside", core.Point{20, 20}, core.Point{30, 30}, false},
		{"zero length inside", core.Point{0, 0}, core.Point{0, 0}, false},
		{"nan", core.Point{math.NaN(), 0}, core.Point{1, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentHitsPolygon(tt.a, tt.b, square); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentHitsDisc(t *testing.T) {
	c := core.Point{0, 0}
	if !segmentHitsDisc(core.Point{-10, 3}, core.Point{10, 3}, c, 5) {
		t.Error("segment passing within radius should hit")
	}
	if segmentHitsDisc(core.Point{-10, 6}, core.Point{10, 6}, c, 5) {
		t.Error("segment passing outside radius should miss")
	}
	if segmentHitsDisc(core.Point{0, 0}, core.Point{0, 0}, c, 5) {
		t.Error("zero-length segment should never hit")
	}
	if segmentHitsDisc(core.Point{-10, 0}, core.Point{10, 0}, c, 0) {
		t.Error("zero-radius disc should never be hit")
	}
}

func TestDiscHitsPolygon(t *testing.T) {
	if !discHitsPolygon(core.Point{0, 0}, 1, square) {
		t.Error("disc centered inside should hit")
	}
	if !discHitsPolygon(core.Point{14, 0}, 5, square) {
		t.Error("disc overlapping an edge should hit")
	}
	if discHitsPolygon(core.Point{16, 0}, 5, square) {
		t.Error("disc clear of the polygon should miss")
	}
	if discHitsPolygon(core.Point{0, 0}, 5, nil) {
		t.Error("empty polygon should never be hit")
	}
}

func TestDiscsOverlap(t *testing.T) {
	if !discsOverlap(core.Dist{3, 4}, 2, 3) {
		t.Error("touching discs should overlap")
	}
	if discsOverlap(core.Dist{3, 4}, 2, 2.9) {
		t.Error("separated discs should not overlap")
	}
	if discsOverlap(core.Dist{math.Inf(1), 0}, 2, 2) {
		t.Error("infinite separation should not overlap")
	}
}
