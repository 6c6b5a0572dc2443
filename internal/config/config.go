package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/karolinemerino/PacMan/internal/tilemap"
)

const (
	configDirName  = "mazechase"
	configFileName = "config.yaml"
)

type Cell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
	Spawn  Cell    `yaml:"spawn"`
}

type GhostConfig struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

type GhostSpawn struct {
	Color string `yaml:"color"`
	Col   int    `yaml:"col"`
	Row   int    `yaml:"row"`
}

type PelletConfig struct {
	Radius float64 `yaml:"radius"`
	Points int     `yaml:"points"`
}

type PowerUpConfig struct {
	Radius float64 `yaml:"radius"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type AudioConfig struct {
	Enabled   bool   `yaml:"enabled"`
	SoundsDir string `yaml:"sounds_dir"`
}

type Config struct {
	CellSize       float64       `yaml:"cell_size"`
	Player         PlayerConfig  `yaml:"player"`
	Ghost          GhostConfig   `yaml:"ghost"`
	Ghosts         []GhostSpawn  `yaml:"ghosts"`
	Pellet         PelletConfig  `yaml:"pellet"`
	PowerUp        PowerUpConfig `yaml:"power_up"`
	ScaredDuration time.Duration `yaml:"scared_duration"`
	Maze           []string      `yaml:"maze"`
	Seed           int64         `yaml:"seed"`
	Log            LogConfig     `yaml:"log"`
	Audio          AudioConfig   `yaml:"audio"`
}

func Default() *Config {
	return &Config{
		CellSize: 40,
		Player:   PlayerConfig{Speed: 5, Radius: 15, Spawn: Cell{Col: 1, Row: 1}},
		Ghost:    GhostConfig{Speed: 2, Radius: 15},
		Ghosts: []GhostSpawn{
			{Color: "red", Col: 6, Row: 1},
			{Color: "pink", Col: 6, Row: 3},
			{Color: "green", Col: 6, Row: 1},
		},
		Pellet:         PelletConfig{Radius: 3, Points: 10},
		PowerUp:        PowerUpConfig{Radius: 8},
		ScaredDuration: 5 * time.Second,
		Maze:           append([]string(nil), tilemap.DefaultLayout...),
		Log:            LogConfig{Level: "info", Encoding: "console"},
		Audio:          AudioConfig{Enabled: false, SoundsDir: "assets/sounds"},
	}
}

// configBaseDir returns MAZECHASE_CONFIG_DIR if set, otherwise UserConfigDir()/mazechase.
func configBaseDir() (string, error) {
	if env := os.Getenv("MAZECHASE_CONFIG_DIR"); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName), nil
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath() (string, error) {
	dir, err := configBaseDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the YAML file at path over the defaults. An empty path means
// DefaultPath. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML over the defaults and validates the result.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("cell_size must be positive, got %v", c.CellSize)
	case c.Player.Speed <= 0 || c.Player.Radius <= 0:
		return fmt.Errorf("player speed and radius must be positive, got %v/%v", c.Player.Speed, c.Player.Radius)
	case c.Ghost.Speed <= 0 || c.Ghost.Radius <= 0:
		return fmt.Errorf("ghost speed and radius must be positive, got %v/%v", c.Ghost.Speed, c.Ghost.Radius)
	case c.Pellet.Radius <= 0 || c.PowerUp.Radius <= 0:
		return fmt.Errorf("pellet and power_up radius must be positive")
	case c.Pellet.Points < 0:
		return fmt.Errorf("pellet points must be non-negative, got %d", c.Pellet.Points)
	case c.ScaredDuration <= 0:
		return fmt.Errorf("scared_duration must be positive, got %v", c.ScaredDuration)
	case len(c.Maze) == 0:
		return errors.New("maze must have at least one row")
	}
	return nil
}
