package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range is a [Min, Max) interval used for randomized stats.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// IntRange is the integer counterpart of Range.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type PlayerSettings struct {
	Name     string  `yaml:"name"`
	Speed    float64 `yaml:"speed"`
	Health   int     `yaml:"health"`
	FireRate float64 `yaml:"fire_rate"` // seconds between shots
}

type SpawnerSettings struct {
	Interval Range    `yaml:"interval"`
	Health   IntRange `yaml:"health"`
	Speed    Range    `yaml:"speed"`
}

type AssetSettings struct {
	PlayerSheet  string  `yaml:"player_sheet"`
	DefaultSheet string  `yaml:"default_sheet"`
	BulletSprite string  `yaml:"bullet_sprite"`
	Font         string  `yaml:"font"`
	FontSize     float64 `yaml:"font_size"`
}

// Settings are the tunables that may be overridden from a YAML file.
type Settings struct {
	Player  PlayerSettings  `yaml:"player"`
	Spawner SpawnerSettings `yaml:"spawner"`
	Assets  AssetSettings   `yaml:"assets"`
	Seed    int64           `yaml:"seed"` // 0 picks a time-based seed
	Debug   bool            `yaml:"debug"`
	LogFile string          `yaml:"log_file"`
}

// DefaultSettings returns the values the game ships with.
func DefaultSettings() Settings {
	return Settings{
		Player: PlayerSettings{
			Name:     "Player",
			Speed:    50,
			Health:   100,
			FireRate: 0.5,
		},
		Spawner: SpawnerSettings{
			Interval: Range{Min: 2.0, Max: 4.0},
			Health:   IntRange{Min: 10, Max: 20},
			Speed:    Range{Min: 20, Max: 40},
		},
		Assets: AssetSettings{
			PlayerSheet:  "assets/survivor_sheet.png",
			DefaultSheet: "assets/spritesheet_characters.png",
			BulletSprite: "assets/missile.png",
			Font:         "assets/fonts/arial.ttf",
			FontSize:     18,
		},
		Debug:   true,
		LogFile: "arena.log",
	}
}

// Load reads a YAML settings file on top of DefaultSettings.
// A missing file is not an error: the defaults are returned and found is false.
func Load(path string) (s Settings, found bool, err error) {
	s = DefaultSettings()
	if path == "" {
		return s, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, false, nil
		}
		return s, false, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, true, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, true, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, true, nil
}

// Validate checks ranges and stats for values the game cannot run with.
func (s Settings) Validate() error {
	if s.Player.Health <= 0 {
		return fmt.Errorf("player health must be positive, got %d", s.Player.Health)
	}
	if s.Player.FireRate < 0 {
		return fmt.Errorf("player fire rate must not be negative, got %v", s.Player.FireRate)
	}
	if s.Spawner.Interval.Min <= 0 {
		return fmt.Errorf("spawner interval min must be positive, got %v", s.Spawner.Interval.Min)
	}
	if s.Spawner.Interval.Min > s.Spawner.Interval.Max {
		return fmt.Errorf("spawner interval min %v > max %v", s.Spawner.Interval.Min, s.Spawner.Interval.Max)
	}
	if s.Spawner.Health.Min > s.Spawner.Health.Max {
		return fmt.Errorf("spawner health min %d > max %d", s.Spawner.Health.Min, s.Spawner.Health.Max)
	}
	if s.Spawner.Health.Min <= 0 {
		return fmt.Errorf("spawner health min must be positive, got %d", s.Spawner.Health.Min)
	}
	if s.Spawner.Speed.Min > s.Spawner.Speed.Max {
		return fmt.Errorf("spawner speed min %v > max %v", s.Spawner.Speed.Min, s.Spawner.Speed.Max)
	}
	return nil
}
