package laseroids

// moveAll advances every live body by one tick.
func (w *World) moveAll() {
	for i := range w.stars {
		w.stars[i].Move(w.field)
	}
	w.asteroids.Each(func(a *Asteroid) {
		a.Move(w.field)
	})
	w.bullets.Each(func(b *Bullet) {
		b.Move(w.field)
	})
	w.player.Move(w.field)
	if w.alien.Visible {
		w.alien.Move(w.field)
	}
}

// expireBullets ages every bullet by one tick and removes those whose
// lifetime is over. It runs after drawing, so a bullet is tested and drawn
// on every tick of its lifetime.
func (w *World) expireBullets() {
	w.bullets.RemoveFunc(func(b *Bullet) bool {
		return b.Age()
	})
}
