package laseroids

import (
	"math"

	"github.com/vovakirdan/laseroids/internal/core"
)

// Hit tests. All shapes are given in a common local frame, usually centered
// on one of the two bodies. Degenerate inputs never collide.

const eps = 1e-9

func finite(v core.Vec2) bool {
	return !math.IsNaN(v[0]) && !math.IsNaN(v[1]) && !math.IsInf(v[0], 0) && !math.IsInf(v[1], 0)
}

func cross(a, b core.Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// pointInPolygon uses the crossing-number rule. Works for any simple polygon.
func pointInPolygon(p core.Point, poly []core.Point) bool {
	if len(poly) < 3 || !finite(p) {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a[1] > p[1]) != (b[1] > p[1]) {
			x := (b[0]-a[0])*(p[1]-a[1])/(b[1]-a[1]) + a[0]
			if p[0] < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// segmentsIntersect reports whether segments p1-p2 and q1-q2 share a point.
func segmentsIntersect(p1, p2, q1, q2 core.Point) bool {
	r := p2.Sub(p1)
	s := q2.Sub(q1)
	denom := cross(r, s)
	qp := q1.Sub(p1)
	if math.Abs(denom) < eps {
		// Parallel. Collinear overlap counts as a hit.
		if math.Abs(cross(qp, r)) > eps {
			return false
		}
		rr := r.Dot(r)
		if rr < eps {
			return false
		}
		t0 := qp.Dot(r) / rr
		t1 := t0 + s.Dot(r)/rr
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		return t1 >= 0 && t0 <= 1
	}
	t := cross(qp, s) / denom
	u := cross(qp, r) / denom
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// segmentHitsPolygon reports whether segment a-b touches polygon poly.
func segmentHitsPolygon(a, b core.Point, poly []core.Point) bool {
	if len(poly) < 3 || !finite(a) || !finite(b) {
		return false
	}
	if b.Sub(a).Len() < eps {
		return false
	}
	if pointInPolygon(a, poly) || pointInPolygon(b, poly) {
		return true
	}
	j := len(poly) - 1
	for i := range poly {
		if segmentsIntersect(a, b, poly[j], poly[i]) {
			return true
		}
		j = i
	}
	return false
}

// distToSegment returns the distance from p to segment a-b.
func distToSegment(p, a, b core.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 < eps {
		return p.Sub(a).Len()
	}
	t := core.ClampF(p.Sub(a).Dot(ab)/l2, 0, 1)
	return p.Sub(a.Add(ab.Mul(t))).Len()
}

// segmentHitsDisc reports whether segment a-b comes within r of center.
func segmentHitsDisc(a, b, center core.Point, r float64) bool {
	if r <= 0 || !finite(a) || !finite(b) || !finite(center) {
		return false
	}
	if b.Sub(a).Len() < eps {
		return false
	}
	return distToSegment(center, a, b) <= r
}

// discHitsPolygon reports whether the disc (center, r) overlaps poly.
func discHitsPolygon(center core.Point, r float64, poly []core.Point) bool {
	if len(poly) < 3 || r < 0 || !finite(center) {
		return false
	}
	if pointInPolygon(center, poly) {
		return true
	}
	j := len(poly) - 1
	for i := range poly {
		if distToSegment(center, poly[j], poly[i]) <= r {
			return true
		}
		j = i
	}
	return false
}

// discsOverlap reports whether two discs separated by d overlap.
func discsOverlap(d core.Dist, r1, r2 float64) bool {
	if r1 <= 0 || r2 <= 0 || !finite(d) {
		return false
	}
	rs := r1 + r2
	return d.Dot(d) <= rs*rs
}
