package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for PokeRealMap.
// Values come from config.yaml next to the binary (optional) and from
// environment variables; environment variables win.
type Config struct {
	// DataDir overrides where the database file lives. Empty means the
	// platform config directory (e.g. %AppData%/PokeRealMap).
	DataDir string `yaml:"data_dir" env:"POKEREALMAP_DATA_DIR" env-default:""`

	PokeAPI PokeAPIConfig `yaml:"pokeapi"`
	Seed    SeedConfig    `yaml:"seed"`
}

// PokeAPIConfig holds settings for the external Pokemon source.
type PokeAPIConfig struct {
	BaseURL string `yaml:"base_url" env:"POKEAPI_BASE_URL" env-default:"https://pokeapi.co/api/v2"`

	// SpriteBaseURL is the static sprite mirror used when the API response
	// carries no usable sprite, or when the fetch fails entirely.
	SpriteBaseURL string `yaml:"sprite_base_url" env:"POKEAPI_SPRITE_BASE_URL" env-default:"https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"`

	TimeoutSeconds int `yaml:"timeout_seconds" env:"POKEAPI_TIMEOUT_SECONDS" env-default:"10"`
}

// SeedConfig controls the bulk import from the external source.
type SeedConfig struct {
	// RosterSize is the number of Pokemon fetched during seeding,
	// numbered 1..RosterSize.
	RosterSize int `yaml:"roster_size" env:"SEED_ROSTER_SIZE" env-default:"1025"`

	// BatchSize bounds how many fetches run concurrently.
	BatchSize int `yaml:"batch_size" env:"SEED_BATCH_SIZE" env-default:"50"`
}

// Load reads config.yaml if present, then applies environment overrides.
func Load() (*Config, error) {
	var cfg Config

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if cfg.Seed.RosterSize <= 0 {
		return nil, fmt.Errorf("seed roster size must be positive, got %d", cfg.Seed.RosterSize)
	}
	if cfg.Seed.BatchSize <= 0 {
		return nil, fmt.Errorf("seed batch size must be positive, got %d", cfg.Seed.BatchSize)
	}

	return &cfg, nil
}

// DatabasePath resolves the on-disk location of the database file,
// creating the parent directory if needed.
func (c *Config) DatabasePath() (string, error) {
	dir := c.DataDir
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = "."
		}
		dir = filepath.Join(configDir, "PokeRealMap")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return filepath.Join(dir, "pokerealmap.db"), nil
}
