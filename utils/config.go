package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is returned by Validate for settings a session cannot run with
var ErrInvalidConfig = errors.New("invalid config")

// PatternPlacement stamps a catalog pattern for one player before the game starts
type PatternPlacement struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	X       int    `json:"x" yaml:"x"`
	Y       int    `json:"y" yaml:"y"`
	Player  int    `json:"player" yaml:"player"`
}

// Config holds the configuration for the game
type Config struct {
	Width              int                `json:"width" yaml:"width"`
	Height             int                `json:"height" yaml:"height"`
	GenerationInterval time.Duration      `json:"generation_interval" yaml:"generation_interval"`
	StableGenerations  int                `json:"stable_generations" yaml:"stable_generations"`
	Player1Density     float64            `json:"player1_density" yaml:"player1_density"`
	Player2Density     float64            `json:"player2_density" yaml:"player2_density"`
	Seed               int64              `json:"seed" yaml:"seed"`
	Workers            int                `json:"workers" yaml:"workers"`
	ShowGrid           bool               `json:"show_grid" yaml:"show_grid"`
	MaxGenerations     int                `json:"max_generations" yaml:"max_generations"`
	Randomize          bool               `json:"randomize" yaml:"randomize"`
	Setup              []PatternPlacement `json:"setup" yaml:"setup"`
	LogLevel           string             `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:              30,
		Height:             30,
		GenerationInterval: 200 * time.Millisecond,
		StableGenerations:  3,
		Player1Density:     0.1,
		Player2Density:     0.1,
		Workers:            1,
		ShowGrid:           true,
		MaxGenerations:     1000,
		Randomize:          true,
		LogLevel:           "info",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, picked by extension.
// Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] %+v", filename)
	}
	return config, nil
}

// Validate checks the settings a session depends on
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be positive, got %dx%d", c.Width, c.Height)
	case c.GenerationInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "generation_interval must be positive, got %v", c.GenerationInterval)
	case c.Player1Density < 0 || c.Player2Density < 0 || c.Player1Density+c.Player2Density > 1:
		return errors.Wrapf(ErrInvalidConfig, "densities must be in [0, 1] and sum to at most 1, got %v and %v", c.Player1Density, c.Player2Density)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	}
	for i, p := range c.Setup {
		if p.Player != 1 && p.Player != 2 {
			return errors.Wrapf(ErrInvalidConfig, "setup[%d] player must be 1 or 2, got %d", i, p.Player)
		}
	}
	return nil
}
