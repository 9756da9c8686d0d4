package laseroids

import (
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot captures the world state for determinism testing and the
// headless simulator. Bodies are flattened into float slices.
type Snapshot struct {
	Tick  uint64 `msgpack:"tick"`
	Phase string `msgpack:"phase"`
	Lives int    `msgpack:"lives"`
	Score int    `msgpack:"score"`

	// Player: X, Y, VX, VY
	Player       []float64 `msgpack:"player"`
	Orientation  int       `msgpack:"orientation"`
	Acceleration int       `msgpack:"acceleration"`
	Shield       bool      `msgpack:"shield"`

	AlienVisible bool      `msgpack:"alien_visible"`
	Alien        []float64 `msgpack:"alien"` // X, Y, VX, VY

	// Each asteroid is 6 values: Size, X, Y, VX, VY, Radius
	AsteroidCount int       `msgpack:"asteroid_count"`
	AsteroidData  []float64 `msgpack:"asteroid_data"`

	// Each bullet is 5 values: X, Y, VX, VY, CountDown
	BulletCount int       `msgpack:"bullet_count"`
	BulletData  []float64 `msgpack:"bullet_data"`

	Stats Stats `msgpack:"stats"`
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	asteroidData := make([]float64, 0, w.asteroids.Len()*6)
	w.asteroids.Each(func(a *Asteroid) {
		asteroidData = append(asteroidData, float64(a.Size),
			a.Position[0], a.Position[1], a.Velocity[0], a.Velocity[1], a.Radius)
	})

	bulletData := make([]float64, 0, w.bullets.Len()*5)
	w.bullets.Each(func(b *Bullet) {
		bulletData = append(bulletData,
			b.Position[0], b.Position[1], b.Velocity[0], b.Velocity[1], float64(b.CountDown))
	})

	p, a := w.player, w.alien
	return Snapshot{
		Tick:  w.tick,
		Phase: w.phase.String(),
		Lives: w.lives,
		Score: w.score,

		Player:       []float64{p.Position[0], p.Position[1], p.Velocity[0], p.Velocity[1]},
		Orientation:  p.Orientation,
		Acceleration: p.Acceleration,
		Shield:       p.Shield,

		AlienVisible: a.Visible,
		Alien:        []float64{a.Position[0], a.Position[1], a.Velocity[0], a.Velocity[1]},

		AsteroidCount: w.asteroids.Len(),
		AsteroidData:  asteroidData,
		BulletCount:   w.bullets.Len(),
		BulletData:    bulletData,

		Stats: w.stats,
	}
}

// Encode serializes the snapshot with msgpack.
func (s Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(s)
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	err := msgpack.Unmarshal(data, &s)
	return s, err
}

// Hash returns the FNV-64a hash of the encoded snapshot.
func (s Snapshot) Hash() uint64 {
	data, err := s.Encode()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64()
}
