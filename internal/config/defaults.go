package config

import (
	_ "embed"
)

//go:embed defaults/laseroids.yaml
var defaultLaseroidsYAML []byte

// DefaultLaseroidsConfig returns the built-in configuration.
// It mirrors defaults/laseroids.yaml and is the fallback when the embedded
// YAML cannot be parsed.
func DefaultLaseroidsConfig() LaseroidsConfig {
	return LaseroidsConfig{
		Field: FieldConfig{
			Width:  10000,
			Height: 7500,
		},
		Player: PlayerConfig{
			Radius:       250,
			Thrust:       4,
			MaxSpeed:     300,
			Drag:         0.98,
			RotateStep:   15,
			FireCooldown: 4,
			RespawnGrace: 45,
		},
		Alien: AlienConfig{
			Enabled:     true,
			Radius:      300,
			Speed:       60,
			AppearEvery: 600,
			CourseEvery: 90,
		},
		Asteroids: AsteroidConfig{
			SmallRadius:  400,
			MediumRadius: 800,
			LargeRadius:  1200,
			Jitter:       0.15,
			Speed:        40,
			FragmentKick: 30,
			MaxSpin:      3,
		},
		Scoring: ScoringConfig{
			Asteroid: 10,
			Alien:    50,
		},
		Waves: WaveConfig{
			Enabled:      true,
			Size:         4,
			SafeDistance: 2500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				WaveGrowth:      4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLaseroidsYAML
}
