package laseroids

import "github.com/vovakirdan/laseroids/internal/core"

// spawnAttempts bounds the search for an edge point away from the player.
const spawnAttempts = 8

// spawnWave refills an empty field with large asteroids on the edges.
// Wave size and speed grow with difficulty.
func (w *World) spawnWave() {
	if !w.cfg.Waves.Enabled || w.asteroids.Len() > 0 {
		return
	}
	ticks := int(w.tick) //#nosec G115 -- tick count fits in int
	n := w.difficulty.WaveSize(w.cfg.Waves.Size, w.score, ticks, w.asteroids.Cap())
	speed := w.difficulty.Speed(w.cfg.Asteroids.Speed, w.score, ticks)

	for range n {
		pos := w.safeEdgePoint()
		vel := core.Heading(w.rng.Intn(360)).Mul(speed)
		if err := w.AddAsteroid(w.NewAsteroid(SizeLarge, pos, vel)); err != nil {
			w.stats.DroppedSpawns++
		}
	}
	w.stats.Waves++
}

// updateAlien runs the saucer policy: a hidden alien reappears on an edge
// after AppearEvery ticks, a visible one changes course every CourseEvery ticks.
func (w *World) updateAlien() {
	if !w.cfg.Alien.Enabled {
		return
	}
	w.alienClock++

	if !w.alien.Visible {
		if w.alienClock >= w.cfg.Alien.AppearEvery {
			w.alien.Show(w.edgePoint(), w.alienVelocity())
			w.alienClock = 0
		}
		return
	}

	if w.alienClock%w.cfg.Alien.CourseEvery == 0 {
		w.alien.Velocity = w.alienVelocity()
	}
}

func (w *World) alienVelocity() core.Dist {
	speed := w.difficulty.Speed(w.cfg.Alien.Speed, w.score, int(w.tick)) //#nosec G115 -- tick count fits in int
	return core.Heading(w.rng.Intn(360)).Mul(speed)
}

// edgePoint returns a random point on the left or top edge of the field.
// On a torus these cover every edge.
func (w *World) edgePoint() core.Point {
	if w.rng.Intn(2) == 0 {
		return core.Point{0, w.rng.Float64() * w.field.H}
	}
	return core.Point{w.rng.Float64() * w.field.W, 0}
}

// safeEdgePoint returns an edge point at least SafeDistance from the player,
// or the last candidate if none qualifies.
func (w *World) safeEdgePoint() core.Point {
	var p core.Point
	for range spawnAttempts {
		p = w.edgePoint()
		if w.field.Delta(w.player.Position, p).Len() >= w.cfg.Waves.SafeDistance {
			return p
		}
	}
	return p
}
