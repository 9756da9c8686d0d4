package laseroids

import (
	"github.com/vovakirdan/laseroids/internal/config"
	"github.com/vovakirdan/laseroids/internal/core"
)

// MaxAcceleration is the highest thrust level.
const MaxAcceleration = 3

// SpawnOrientation points the ship up the screen.
const SpawnOrientation = 270

// PlayerShip is the ship under player control.
type PlayerShip struct {
	Body
	Shield       bool
	Acceleration int // 0..MaxAcceleration
	Radius       float64

	thrust   float64
	maxSpeed float64
	drag     float64
}

// NewPlayerShip creates a ship at pos facing up.
func NewPlayerShip(pos core.Point, cfg config.PlayerConfig) PlayerShip {
	return PlayerShip{
		Body: Body{
			Kind:        KindPlayer,
			Position:    pos,
			Orientation: SpawnOrientation,
		},
		Radius:   cfg.Radius,
		thrust:   cfg.Thrust,
		maxSpeed: cfg.MaxSpeed,
		drag:     cfg.Drag,
	}
}

// Move applies thrust along the heading (or drag when idle), clamps the
// speed and then translates and wraps. The ship does not spin by itself.
func (p *PlayerShip) Move(f core.Field) {
	if p.Acceleration > 0 {
		p.Velocity = p.Velocity.Add(p.Heading().Mul(float64(p.Acceleration) * p.thrust))
	} else {
		p.Velocity = p.Velocity.Mul(p.drag)
	}
	p.Velocity = core.ClampLen(p.Velocity, p.maxSpeed)
	p.translate(f)
}

// Accelerate raises the thrust level by one, up to MaxAcceleration.
func (p *PlayerShip) Accelerate() {
	p.Acceleration = core.Clamp(p.Acceleration+1, 0, MaxAcceleration)
}

// Decelerate lowers the thrust level by one, down to zero.
func (p *PlayerShip) Decelerate() {
	p.Acceleration = core.Clamp(p.Acceleration-1, 0, MaxAcceleration)
}

// Turn rotates the ship by deg degrees (positive is clockwise).
func (p *PlayerShip) Turn(deg int) {
	p.Orientation = core.NormalizeDegrees(p.Orientation + deg)
}

// Nose returns the tip of the ship, where bullets are launched.
func (p *PlayerShip) Nose() core.Point {
	return p.Position.Add(p.Heading().Mul(p.Radius))
}

// Respawn puts the ship back at pos, at rest and facing up.
// The shield setting is kept.
func (p *PlayerShip) Respawn(pos core.Point) {
	p.Position = pos
	p.Velocity = core.Dist{}
	p.Orientation = SpawnOrientation
	p.Rotation = 0
	p.Acceleration = 0
}

// AlienShip is the saucer. A hidden alien neither moves, collides nor draws.
type AlienShip struct {
	Body
	Visible bool
	Radius  float64
}

// NewAlienShip creates a hidden alien.
func NewAlienShip(cfg config.AlienConfig) AlienShip {
	return AlienShip{
		Body:   Body{Kind: KindAlien},
		Radius: cfg.Radius,
	}
}

// Show makes the alien appear at pos moving with vel.
func (a *AlienShip) Show(pos core.Point, vel core.Dist) {
	a.Position = pos
	a.Velocity = vel
	a.Visible = true
}

// Hide removes the alien from play until it is shown again.
func (a *AlienShip) Hide() {
	a.Velocity = core.Dist{}
	a.Visible = false
}
