package laseroids

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/laseroids/internal/config"
	"github.com/vovakirdan/laseroids/internal/core"
)

// AsteroidSize is the size class of an asteroid.
type AsteroidSize int

const (
	SizeSmall  AsteroidSize = 1
	SizeMedium AsteroidSize = 2
	SizeLarge  AsteroidSize = 3

	MinAsteroidSize = SizeSmall
	MaxAsteroidSize = SizeLarge
)

// MaxVertices bounds the polygon of any asteroid.
const MaxVertices = 16

// baseShapes holds one unit outline per size class, as radial factors at
// evenly spaced angles. Larger rocks get more vertices.
var baseShapes = [...][]float64{
	SizeSmall:  {1.0, 0.92, 0.98, 0.9, 1.0, 0.94, 0.97, 0.91},
	SizeMedium: {0.95, 1.0, 0.9, 0.97, 0.93, 1.0, 0.91, 0.96, 0.99, 0.92},
	SizeLarge:  {1.0, 0.93, 0.97, 0.9, 0.98, 0.94, 1.0, 0.91, 0.96, 0.92, 0.99, 0.95},
}

// Valid reports whether s is a known size class.
func (s AsteroidSize) Valid() bool {
	return s >= MinAsteroidSize && s <= MaxAsteroidSize
}

// String returns the size class name.
func (s AsteroidSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return fmt.Sprintf("size(%d)", int(s))
	}
}

// radius returns the nominal radius of the size class.
func (s AsteroidSize) radius(cfg config.AsteroidConfig) float64 {
	switch s {
	case SizeSmall:
		return cfg.SmallRadius
	case SizeMedium:
		return cfg.MediumRadius
	default:
		return cfg.LargeRadius
	}
}

// Asteroid is a rotating rock drawn as an irregular polygon.
// Its orientation is fixed at construction; Move never spins it.
type Asteroid struct {
	Body
	Size        AsteroidSize
	NumVertices int
	Vertices    [MaxVertices]core.Vec2 // unrotated, relative to Position
	Radians     float64                // Orientation in radians
	Radius      float64                // bounding radius

	destroyed bool
}

// NewAsteroid builds an asteroid of the given size class. The outline is the
// base shape for the class, scaled by its radius and perturbed by rng.
// It panics on an unknown size class.
func NewAsteroid(rng *rand.Rand, size AsteroidSize, pos core.Point, vel core.Dist, orientation, rotation int, cfg config.AsteroidConfig) Asteroid {
	if !size.Valid() {
		panic(fmt.Sprintf("laseroids: invalid asteroid size %d", int(size)))
	}

	shape := baseShapes[size]
	r := size.radius(cfg)
	orientation = core.NormalizeDegrees(orientation)

	a := Asteroid{
		Body: Body{
			Kind:        KindAsteroid,
			Position:    pos,
			Velocity:    vel,
			Orientation: orientation,
			Rotation:    rotation,
		},
		Size:        size,
		NumVertices: len(shape),
		Radians:     mgl64.DegToRad(float64(orientation)),
	}

	step := 2 * math.Pi / float64(len(shape))
	for i, factor := range shape {
		d := r * factor * (1 - cfg.Jitter*rng.Float64())
		v := core.Vec2{math.Cos(step * float64(i)), math.Sin(step * float64(i))}.Mul(d)
		a.Vertices[i] = v
		a.Radius = math.Max(a.Radius, d)
	}
	return a
}

// Move translates and wraps the asteroid. Orientation is left unchanged.
func (a *Asteroid) Move(f core.Field) {
	a.translate(f)
}

// Outline returns the polygon rotated by Radians, relative to Position.
func (a *Asteroid) Outline() []core.Vec2 {
	out := make([]core.Vec2, a.NumVertices)
	for i := range out {
		out[i] = core.Rotate(a.Vertices[i], a.Radians)
	}
	return out
}

// Fragments returns the children produced when the asteroid is destroyed:
// two rocks of the next smaller class, or none for the smallest class.
func (a *Asteroid) Fragments(rng *rand.Rand, cfg config.AsteroidConfig) []Asteroid {
	if a.Size <= MinAsteroidSize {
		return nil
	}
	children := make([]Asteroid, 2)
	for i := range children {
		kick := core.Heading(rng.Intn(360)).Mul(cfg.FragmentKick)
		children[i] = NewAsteroid(rng, a.Size-1, a.Position, a.Velocity.Add(kick),
			rng.Intn(360), randomSpin(rng, cfg.MaxSpin), cfg)
	}
	return children
}

// randomSpin returns a rotation in [-max, max].
func randomSpin(rng *rand.Rand, max int) int {
	if max <= 0 {
		return 0
	}
	return rng.Intn(2*max+1) - max
}
