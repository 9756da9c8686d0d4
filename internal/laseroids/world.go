package laseroids

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/laseroids/internal/config"
	"github.com/vovakirdan/laseroids/internal/core"
)

// World limits.
const (
	AsteroidCapacity = 20
	BulletCapacity   = 20
	StartingLives    = 4
	maxQueued        = 32
)

// ErrPoolFull is returned when an asteroid or bullet pool is at capacity.
var ErrPoolFull = errors.New("laseroids: pool full")

// Phase is the state of the frame orchestrator.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "running"
}

// Command is a player intent applied at the start of the next tick.
type Command int

const (
	CommandAccelerate Command = iota
	CommandDecelerate
	CommandRotateClockwise
	CommandRotateCounterClockwise
	CommandShieldOn
	CommandShieldOff
	CommandFire
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandAccelerate:
		return "accelerate"
	case CommandDecelerate:
		return "decelerate"
	case CommandRotateClockwise:
		return "rotate_cw"
	case CommandRotateCounterClockwise:
		return "rotate_ccw"
	case CommandShieldOn:
		return "shield_on"
	case CommandShieldOff:
		return "shield_off"
	case CommandFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Stats counts notable events since the last Reset.
type Stats struct {
	BulletsFired       int `msgpack:"bullets_fired"`
	AsteroidsDestroyed int `msgpack:"asteroids_destroyed"`
	AliensDestroyed    int `msgpack:"aliens_destroyed"`
	Deaths             int `msgpack:"deaths"`
	DroppedSpawns      int `msgpack:"dropped_spawns"` // adds refused by a full pool
	DroppedCommands    int `msgpack:"dropped_commands"`
	Waves              int `msgpack:"waves"`
}

// World is the complete simulation state. It is not safe for concurrent use;
// a single caller drives it one RunOneFrame at a time.
type World struct {
	cfg        config.LaseroidsConfig
	field      core.Field
	seed       int64
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	renderer   Renderer

	player    PlayerShip
	alien     AlienShip
	asteroids *Pool[Asteroid]
	bullets   *Pool[Bullet]
	stars     [StarCount]Star

	lives int
	score int
	tick  uint64
	phase Phase
	queue []Command
	stats Stats

	nextFire   uint64 // first tick at which the ship may fire again
	graceUntil uint64 // player ignores collisions before this tick
	alienClock int    // ticks since the alien was hidden or last turned
}

// NewWorld creates a world ready to run. It panics if cfg does not validate.
func NewWorld(cfg config.LaseroidsConfig, seed int64) *World {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("laseroids: %v", err))
	}
	w := &World{
		cfg:       cfg,
		field:     core.NewField(cfg.Field.Width, cfg.Field.Height),
		seed:      seed,
		asteroids: NewPool[Asteroid](AsteroidCapacity),
		bullets:   NewPool[Bullet](BulletCapacity),
		queue:     make([]Command, 0, maxQueued),
	}
	w.Reset()
	return w
}

// Reset reinitializes every part of the world to its starting value and
// reseeds the random source. The attached renderer is kept.
func (w *World) Reset() {
	w.rng = rand.New(rand.NewSource(w.seed))
	w.difficulty = config.NewDifficultyManager(w.cfg.Difficulty)

	w.player = NewPlayerShip(w.field.Center(), w.cfg.Player)
	w.alien = NewAlienShip(w.cfg.Alien)
	w.asteroids.Clear()
	w.bullets.Clear()
	w.stars = newStarField(w.rng, w.field)

	w.lives = StartingLives
	w.score = 0
	w.tick = 0
	w.phase = PhaseRunning
	w.queue = w.queue[:0]
	w.stats = Stats{}

	w.nextFire = 0
	w.graceUntil = 0
	w.alienClock = 0
}

// SetRenderer attaches the draw hook invoked once per tick. Nil disables drawing.
func (w *World) SetRenderer(r Renderer) {
	w.renderer = r
}

// RunOneFrame advances the world by one tick. It does nothing once the game is over.
func (w *World) RunOneFrame() {
	if w.phase == PhaseGameOver {
		return
	}
	w.tick++

	w.applyCommands()
	w.moveAll()
	w.resolveCollisions()
	if w.renderer != nil {
		w.Draw(w.renderer)
	}
	w.expireBullets()

	if w.lives == 0 {
		w.phase = PhaseGameOver
		return
	}

	w.spawnWave()
	w.updateAlien()
}

// IsGameOver reports whether the world has reached its terminal state.
func (w *World) IsGameOver() bool {
	return w.phase == PhaseGameOver
}

// Enqueue queues a command for the start of the next tick.
// Commands beyond the queue limit are dropped.
func (w *World) Enqueue(c Command) {
	if len(w.queue) >= maxQueued {
		w.stats.DroppedCommands++
		return
	}
	w.queue = append(w.queue, c)
}

func (w *World) applyCommands() {
	for _, c := range w.queue {
		switch c {
		case CommandAccelerate:
			w.Accelerate()
		case CommandDecelerate:
			w.Decelerate()
		case CommandRotateClockwise:
			w.RotateClockwise()
		case CommandRotateCounterClockwise:
			w.RotateCounterClockwise()
		case CommandShieldOn:
			w.ActivateShield(true)
		case CommandShieldOff:
			w.ActivateShield(false)
		case CommandFire:
			w.Fire()
		}
	}
	w.queue = w.queue[:0]
}

// Accelerate raises the ship's thrust level.
func (w *World) Accelerate() { w.player.Accelerate() }

// Decelerate lowers the ship's thrust level.
func (w *World) Decelerate() { w.player.Decelerate() }

// RotateClockwise turns the ship by one rotate step.
func (w *World) RotateClockwise() { w.player.Turn(w.cfg.Player.RotateStep) }

// RotateCounterClockwise turns the ship back by one rotate step.
func (w *World) RotateCounterClockwise() { w.player.Turn(-w.cfg.Player.RotateStep) }

// ActivateShield switches the ship's shield on or off.
func (w *World) ActivateShield(on bool) { w.player.Shield = on }

// Fire launches a bullet from the ship's nose if the cooldown has elapsed.
// It reports whether a bullet was added.
func (w *World) Fire() bool {
	if w.tick < w.nextFire {
		return false
	}
	b := NewBullet(w.player.Nose(), w.player.Heading(), BulletSpeed)
	if err := w.AddBullet(b); err != nil {
		w.stats.DroppedSpawns++
		return false
	}
	w.stats.BulletsFired++
	w.nextFire = w.tick + uint64(w.cfg.Player.FireCooldown) //#nosec G115 -- validated non-negative
	return true
}

// NewAsteroid builds an asteroid with a random orientation using the
// world's random source and asteroid settings.
func (w *World) NewAsteroid(size AsteroidSize, pos core.Point, vel core.Dist) Asteroid {
	return NewAsteroid(w.rng, size, w.field.Wrap(pos), vel,
		w.rng.Intn(360), randomSpin(w.rng, w.cfg.Asteroids.MaxSpin), w.cfg.Asteroids)
}

// AddAsteroid adds a to the asteroid pool.
func (w *World) AddAsteroid(a Asteroid) error {
	if !w.asteroids.Add(a) {
		return ErrPoolFull
	}
	return nil
}

// AddBullet adds b to the bullet pool.
func (w *World) AddBullet(b Bullet) error {
	if !w.bullets.Add(b) {
		return ErrPoolFull
	}
	return nil
}

// Asteroids returns a copy of the live asteroids.
func (w *World) Asteroids() []Asteroid {
	out := make([]Asteroid, 0, w.asteroids.Len())
	w.asteroids.Each(func(a *Asteroid) { out = append(out, *a) })
	return out
}

// Bullets returns a copy of the live bullets.
func (w *World) Bullets() []Bullet {
	out := make([]Bullet, 0, w.bullets.Len())
	w.bullets.Each(func(b *Bullet) { out = append(out, *b) })
	return out
}

// Stars returns the star field.
func (w *World) Stars() [StarCount]Star { return w.stars }

// Player returns the player ship.
func (w *World) Player() PlayerShip { return w.player }

// Alien returns the alien ship.
func (w *World) Alien() AlienShip { return w.alien }

// Field returns the play-field bounds.
func (w *World) Field() core.Field { return w.field }

// Config returns the configuration the world was built with.
func (w *World) Config() config.LaseroidsConfig { return w.cfg }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Tick returns the number of frames run since Reset.
func (w *World) Tick() uint64 { return w.tick }

// Phase returns the orchestrator state.
func (w *World) Phase() Phase { return w.phase }

// Stats returns the event counters.
func (w *World) Stats() Stats { return w.stats }

// Vulnerable reports whether the player can currently be hit.
func (w *World) Vulnerable() bool { return w.tick >= w.graceUntil }
