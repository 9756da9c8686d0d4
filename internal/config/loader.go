package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name searched for in the config directories.
const configFile = "laseroids.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.laseroids/configs/laseroids.yaml ->
// ./configs/laseroids.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error.
func Load(customPath string) (LaseroidsConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LaseroidsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return LaseroidsConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultLaseroidsYAML)
	if err != nil {
		return DefaultLaseroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a partial file only
// overrides the keys it names.
func Parse(data []byte) (LaseroidsConfig, error) {
	cfg := DefaultLaseroidsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LaseroidsConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg LaseroidsConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".laseroids", "configs", filename)
}

// Validate reports every field that would make the simulation misbehave.
func (c LaseroidsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0, "field.width must be positive, got %v", c.Field.Width)
	check(c.Field.Height > 0, "field.height must be positive, got %v", c.Field.Height)

	check(c.Player.Radius > 0, "player.radius must be positive, got %v", c.Player.Radius)
	check(c.Player.Thrust >= 0, "player.thrust must not be negative, got %v", c.Player.Thrust)
	check(c.Player.MaxSpeed > 0, "player.max_speed must be positive, got %v", c.Player.MaxSpeed)
	check(c.Player.Drag > 0 && c.Player.Drag <= 1, "player.drag must be in (0, 1], got %v", c.Player.Drag)
	check(c.Player.RotateStep > 0 && c.Player.RotateStep < 360, "player.rotate_step must be in (0, 360), got %d", c.Player.RotateStep)
	check(c.Player.FireCooldown >= 0, "player.fire_cooldown must not be negative, got %d", c.Player.FireCooldown)
	check(c.Player.RespawnGrace >= 0, "player.respawn_grace must not be negative, got %d", c.Player.RespawnGrace)

	if c.Alien.Enabled {
		check(c.Alien.Radius > 0, "alien.radius must be positive, got %v", c.Alien.Radius)
		check(c.Alien.Speed >= 0, "alien.speed must not be negative, got %v", c.Alien.Speed)
		check(c.Alien.AppearEvery > 0, "alien.appear_every must be positive, got %d", c.Alien.AppearEvery)
		check(c.Alien.CourseEvery > 0, "alien.course_every must be positive, got %d", c.Alien.CourseEvery)
	}

	a := c.Asteroids
	check(a.SmallRadius > 0, "asteroids.small_radius must be positive, got %v", a.SmallRadius)
	check(a.MediumRadius > a.SmallRadius, "asteroids.medium_radius must exceed small_radius")
	check(a.LargeRadius > a.MediumRadius, "asteroids.large_radius must exceed medium_radius")
	check(a.Jitter >= 0 && a.Jitter < 0.5, "asteroids.jitter must be in [0, 0.5), got %v", a.Jitter)
	check(a.Speed >= 0, "asteroids.speed must not be negative, got %v", a.Speed)
	check(a.FragmentKick >= 0, "asteroids.fragment_kick must not be negative, got %v", a.FragmentKick)
	check(a.MaxSpin >= 0, "asteroids.max_spin must not be negative, got %d", a.MaxSpin)

	check(c.Scoring.Asteroid >= 0, "scoring.asteroid must not be negative, got %d", c.Scoring.Asteroid)
	check(c.Scoring.Alien >= 0, "scoring.alien must not be negative, got %d", c.Scoring.Alien)

	if c.Waves.Enabled {
		check(c.Waves.Size > 0, "waves.size must be positive, got %d", c.Waves.Size)
		check(c.Waves.SafeDistance >= 0, "waves.safe_distance must not be negative, got %v", c.Waves.SafeDistance)
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// ApplyLaseroidsPreset modifies the config based on a difficulty preset.
func ApplyLaseroidsPreset(cfg *LaseroidsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Waves.Size = 3
		cfg.Asteroids.Speed = 30
		cfg.Player.RespawnGrace = 90
	case DifficultyHard:
		cfg.Waves.Size = 6
		cfg.Asteroids.Speed = 55
		cfg.Alien.AppearEvery = 300
	}
}
