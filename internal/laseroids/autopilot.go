package laseroids

import "math/rand"

// Autopilot issues a seeded stream of plausible commands. It drives the
// headless simulator and determinism tests.
type Autopilot struct {
	rng *rand.Rand
}

// NewAutopilot creates an autopilot with its own random source.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: rand.New(rand.NewSource(seed))}
}

// Drive queues the commands for the next frame of w.
func (a *Autopilot) Drive(w *World) {
	switch a.rng.Intn(8) {
	case 0:
		w.Enqueue(CommandRotateClockwise)
	case 1:
		w.Enqueue(CommandRotateCounterClockwise)
	case 2:
		w.Enqueue(CommandAccelerate)
	case 3:
		w.Enqueue(CommandDecelerate)
	}
	if a.rng.Intn(3) == 0 {
		w.Enqueue(CommandFire)
	}
	if a.rng.Intn(50) == 0 {
		if w.Player().Shield {
			w.Enqueue(CommandShieldOff)
		} else {
			w.Enqueue(CommandShieldOn)
		}
	}
}
