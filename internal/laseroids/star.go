package laseroids

import (
	"math/rand"

	"github.com/vovakirdan/laseroids/internal/core"
)

// StarCount is the size of the background star field.
const StarCount = 15

// maxStarDrift is the top star speed in field units per tick.
const maxStarDrift = 4.0

// Star is a decorative drifting point. Stars never collide.
type Star struct {
	Body
}

// newStarField scatters StarCount stars over f, all drifting the same way
// at slightly different speeds.
func newStarField(rng *rand.Rand, f core.Field) [StarCount]Star {
	var stars [StarCount]Star
	dir := core.Heading(rng.Intn(360))
	for i := range stars {
		stars[i] = Star{Body: Body{
			Kind:     KindStar,
			Position: core.Point{rng.Float64() * f.W, rng.Float64() * f.H},
			Velocity: dir.Mul(1 + rng.Float64()*(maxStarDrift-1)),
		}}
	}
	return stars
}
