package laseroids

import "github.com/vovakirdan/laseroids/internal/core"

// resolveCollisions tests every relevant pair once per tick. Destroyed bodies
// are marked during the pass and skipped by later tests, then swept from
// their pools; fragments are spawned last.
func (w *World) resolveCollisions() {
	alienHit := false

	for bi := 0; bi < w.bullets.Len(); bi++ {
		b := w.bullets.At(bi)
		if b.destroyed || b.Degenerate() {
			continue
		}
		for ai := 0; ai < w.asteroids.Len(); ai++ {
			a := w.asteroids.At(ai)
			if a.destroyed || !w.bulletHitsAsteroid(b, a) {
				continue
			}
			b.destroyed = true
			a.destroyed = true
			w.score += w.cfg.Scoring.Asteroid
			w.stats.AsteroidsDestroyed++
			break
		}
		if b.destroyed {
			continue
		}
		if w.alien.Visible && !alienHit && w.bulletHitsAlien(b) {
			b.destroyed = true
			alienHit = true
			w.score += w.cfg.Scoring.Alien
			w.stats.AliensDestroyed++
		}
	}

	alienHit = w.collidePlayer(alienHit)
	w.sweep(alienHit)
}

// collidePlayer tests the ship against asteroids and the alien. Testing
// stops as soon as the ship loses a life. It returns whether the alien has
// been destroyed this tick.
func (w *World) collidePlayer(alienHit bool) bool {
	if !w.Vulnerable() {
		return alienHit
	}
	for ai := 0; ai < w.asteroids.Len(); ai++ {
		a := w.asteroids.At(ai)
		if a.destroyed || !w.playerHitsAsteroid(a) {
			continue
		}
		a.destroyed = true
		w.stats.AsteroidsDestroyed++
		if w.damagePlayer(w.cfg.Scoring.Asteroid) {
			return alienHit
		}
	}
	if w.alien.Visible && !alienHit && w.playerHitsAlien() {
		w.stats.AliensDestroyed++
		w.damagePlayer(w.cfg.Scoring.Alien)
		return true
	}
	return alienHit
}

// damagePlayer resolves a hit on the ship. A shielded ship scores points for
// the destroyed body; otherwise a life is lost and the ship respawns.
// It reports whether a life was lost.
func (w *World) damagePlayer(points int) bool {
	if w.player.Shield {
		w.score += points
		return false
	}
	if w.lives > 0 {
		w.lives--
	}
	w.stats.Deaths++
	w.player.Respawn(w.field.Center())
	w.graceUntil = w.tick + 1 + uint64(w.cfg.Player.RespawnGrace) //#nosec G115 -- validated non-negative
	return true
}

// sweep removes marked bodies and spawns fragments for destroyed asteroids.
// Fragments that do not fit in the pool are dropped.
func (w *World) sweep(alienHit bool) {
	var parents []Asteroid
	w.asteroids.RemoveFunc(func(a *Asteroid) bool {
		if a.destroyed {
			parents = append(parents, *a)
		}
		return a.destroyed
	})
	w.bullets.RemoveFunc(func(b *Bullet) bool {
		return b.destroyed
	})

	for i := range parents {
		for _, f := range parents[i].Fragments(w.rng, w.cfg.Asteroids) {
			if !w.asteroids.Add(f) {
				w.stats.DroppedSpawns++
			}
		}
	}

	if alienHit {
		w.alien.Hide()
		w.alienClock = 0
	}
}

func (w *World) bulletHitsAsteroid(b *Bullet, a *Asteroid) bool {
	d := w.field.Delta(a.Position, b.Position)
	from, to := b.Sweep()
	if d.Len() > a.Radius+from.Len()+to.Len() {
		return false
	}
	return segmentHitsPolygon(d.Add(from), d.Add(to), a.Outline())
}

func (w *World) bulletHitsAlien(b *Bullet) bool {
	d := w.field.Delta(w.alien.Position, b.Position)
	from, to := b.Sweep()
	return segmentHitsDisc(d.Add(from), d.Add(to), core.Point{}, w.alien.Radius)
}

func (w *World) playerHitsAsteroid(a *Asteroid) bool {
	d := w.field.Delta(a.Position, w.player.Position)
	if d.Len() > a.Radius+w.player.Radius {
		return false
	}
	return discHitsPolygon(d, w.player.Radius, a.Outline())
}

func (w *World) playerHitsAlien() bool {
	return discsOverlap(w.field.Delta(w.alien.Position, w.player.Position), w.player.Radius, w.alien.Radius)
}
