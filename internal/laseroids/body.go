// Package laseroids is the simulation core of the Laseroids arcade shooter.
//
// A World owns a player ship, an alien ship, pooled asteroids and bullets
// and a fixed star field. Each call to RunOneFrame advances the world by one
// fixed tick: queued commands are applied, every live body moves and wraps
// around the toroidal field, collisions are resolved and the attached
// Renderer is invoked for every live body.
package laseroids

import "github.com/vovakirdan/laseroids/internal/core"

// Kind identifies the variant of a simulated body.
type Kind int

const (
	KindStar Kind = iota
	KindAsteroid
	KindPlayer
	KindAlien
	KindBullet
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindAsteroid:
		return "asteroid"
	case KindPlayer:
		return "player"
	case KindAlien:
		return "alien"
	case KindBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// Body is the state shared by every simulated entity.
// Velocity is in field units per tick, Rotation in degrees per tick.
type Body struct {
	Kind        Kind
	Position    core.Point
	Velocity    core.Dist
	Orientation int // degrees, 0 = +x, clockwise
	Rotation    int // degrees per tick
}

// Move advances the body by one tick and wraps it back into the field.
func (b *Body) Move(f core.Field) {
	b.translate(f)
	b.Orientation = core.NormalizeDegrees(b.Orientation + b.Rotation)
}

// translate applies velocity and wraparound without touching orientation.
func (b *Body) translate(f core.Field) {
	b.Position = f.Wrap(b.Position.Add(b.Velocity))
}

// Heading returns the unit vector the body is facing.
func (b *Body) Heading() core.Vec2 {
	return core.Heading(b.Orientation)
}
