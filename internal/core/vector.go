package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the 2D vector type shared by all simulation code.
type Vec2 = mgl64.Vec2

// Point is a position in field units.
type Point = Vec2

// Dist is a displacement (or a velocity per tick) in field units.
type Dist = Vec2

// Field is the toroidal play-field. Coordinates live in the half-open
// ranges [0,W) and [0,H).
type Field struct {
	W, H float64
}

// NewField creates a play-field of the given size.
func NewField(w, h float64) Field {
	return Field{W: w, H: h}
}

// Center returns the middle of the field.
func (f Field) Center() Point {
	return Point{f.W / 2, f.H / 2}
}

// Wrap maps p back into the field. Both axes wrap independently.
func (f Field) Wrap(p Point) Point {
	return Point{wrapAxis(p[0], f.W), wrapAxis(p[1], f.H)}
}

// Contains reports whether p is inside the half-open field bounds.
func (f Field) Contains(p Point) bool {
	return p[0] >= 0 && p[0] < f.W && p[1] >= 0 && p[1] < f.H
}

// Delta returns the shortest displacement from a to b on the torus.
func (f Field) Delta(a, b Point) Dist {
	return Dist{deltaAxis(b[0]-a[0], f.W), deltaAxis(b[1]-a[1], f.H)}
}

func wrapAxis(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// -tiny + size can round up to size itself
	if v >= size {
		v = 0
	}
	return v
}

func deltaAxis(d, size float64) float64 {
	if size <= 0 {
		return d
	}
	d = math.Mod(d, size)
	if d >= size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// NormalizeDegrees maps an angle in degrees into [0,360).
func NormalizeDegrees(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Heading returns the unit vector for an orientation in degrees.
// 0° faces +x and angles grow clockwise on screen (y points down).
func Heading(deg int) Vec2 {
	rad := mgl64.DegToRad(float64(deg))
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Unit returns v scaled to length 1, or the zero vector if v is degenerate.
func Unit(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}
	}
	return v.Mul(1 / l)
}

// Rotate rotates v by rad radians (clockwise on screen).
func Rotate(v Vec2, rad float64) Vec2 {
	return mgl64.Rotate2D(rad).Mul2x1(v)
}

// ClampLen shortens v to at most max length.
func ClampLen(v Vec2, max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}
