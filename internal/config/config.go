package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the app settings, populated from the environment with
// sensible defaults for a desktop install.
type Config struct {
	// DataDir is where the database lives. Empty means the per-user
	// config directory.
	DataDir string `env:"MATCHUP_DATA_DIR"`
	DBFile  string `env:"MATCHUP_DB_FILE" envDefault:"matchups.db"`

	// LockfilePath overrides League client lockfile discovery.
	LockfilePath string `env:"LEAGUE_LOCKFILE_PATH"`

	DataDragonURL string `env:"DDRAGON_URL" envDefault:"https://ddragon.leagueoflegends.com"`

	// ImportCount is how many recent games to pull by default.
	ImportCount int `env:"MATCHUP_IMPORT_COUNT" envDefault:"20"`
}

// Load reads an optional .env file and parses the environment.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DataDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = "."
		}
		cfg.DataDir = filepath.Join(configDir, "MatchupHelper")
	}

	return &cfg, nil
}

// DBPath returns the full path of the SQLite database, creating the data
// directory if needed.
func (c *Config) DBPath() (string, error) {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return filepath.Join(c.DataDir, c.DBFile), nil
}
