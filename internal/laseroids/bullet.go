package laseroids

import "github.com/vovakirdan/laseroids/internal/core"

// Bullet defaults.
const (
	BulletLifetime = 20           // ticks
	BulletLength   = 100.0        // field units
	BulletSpeed    = 10000.0 / 20 // field units per tick
)

// Bullet is a short segment from Position to Position+Size.
type Bullet struct {
	Body
	Size      core.Dist
	CountDown int

	destroyed bool
}

// NewBullet creates a bullet travelling along dir at speed. A zero dir gives
// a zero-length bullet that never collides.
func NewBullet(pos core.Point, dir core.Vec2, speed float64) Bullet {
	u := core.Unit(dir)
	return Bullet{
		Body: Body{
			Kind:     KindBullet,
			Position: pos,
			Velocity: u.Mul(speed),
		},
		Size:      u.Mul(BulletLength),
		CountDown: BulletLifetime,
	}
}

// Move translates and wraps the bullet.
func (b *Bullet) Move(f core.Field) {
	b.translate(f)
}

// Age counts down one tick of lifetime and reports whether the bullet has
// expired.
func (b *Bullet) Age() bool {
	if b.CountDown > 0 {
		b.CountDown--
	}
	return b.CountDown == 0
}

// Degenerate reports whether the bullet has no length.
func (b *Bullet) Degenerate() bool {
	return b.Size.Len() == 0
}

// Sweep returns the segment covered during the last tick, relative to
// Position: from the previous position to the current tip.
func (b *Bullet) Sweep() (from, to core.Dist) {
	return b.Velocity.Mul(-1), b.Size
}
