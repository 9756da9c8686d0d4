// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// LaseroidsConfig contains all tunable parameters of the simulation.
// Distances are field units, speeds are field units per tick.
type LaseroidsConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Alien      AlienConfig      `yaml:"alien"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Waves      WaveConfig       `yaml:"waves"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the size of the toroidal play-field.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship's handling.
type PlayerConfig struct {
	Radius       float64 `yaml:"radius"`        // Hit-region radius
	Thrust       float64 `yaml:"thrust"`        // Velocity gained per tick per acceleration level
	MaxSpeed     float64 `yaml:"max_speed"`     // Speed clamp
	Drag         float64 `yaml:"drag"`          // Velocity factor per tick while not thrusting (1.0 = none)
	RotateStep   int     `yaml:"rotate_step"`   // Degrees turned per rotate command
	FireCooldown int     `yaml:"fire_cooldown"` // Ticks between shots
	RespawnGrace int     `yaml:"respawn_grace"` // Ticks of collision immunity after a respawn
}

// AlienConfig defines the alien ship's maneuvering policy.
type AlienConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`
	AppearEvery int     `yaml:"appear_every"` // Ticks spent hidden before reappearing
	CourseEvery int     `yaml:"course_every"` // Ticks between course changes while visible
}

// AsteroidConfig defines asteroid geometry and fragmentation.
type AsteroidConfig struct {
	SmallRadius  float64 `yaml:"small_radius"`
	MediumRadius float64 `yaml:"medium_radius"`
	LargeRadius  float64 `yaml:"large_radius"`
	Jitter       float64 `yaml:"jitter"`        // Max radial vertex perturbation as a fraction of radius
	Speed        float64 `yaml:"speed"`         // Base speed of wave asteroids
	FragmentKick float64 `yaml:"fragment_kick"` // Deflection speed added to fragments
	MaxSpin      int     `yaml:"max_spin"`      // Max rotation (deg/tick) given to new asteroids
}

// ScoringConfig defines the flat points awarded per kill.
type ScoringConfig struct {
	Asteroid int `yaml:"asteroid"`
	Alien    int `yaml:"alien"`
}

// WaveConfig defines how the field is refilled once it is cleared.
type WaveConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Size         int     `yaml:"size"`          // Large asteroids in the first wave
	SafeDistance float64 `yaml:"safe_distance"` // Minimum spawn distance from the player
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to wave speed factor at max difficulty
	WaveGrowth      int     `yaml:"wave_growth"`      // Extra wave asteroids at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return "", true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
