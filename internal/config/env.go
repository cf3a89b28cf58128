package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// environment lists the variables that override or backfill file settings.
type environment struct {
	TMDBAPIToken string `env:"TMDB_API_TOKEN"`
	LogLevel     string `env:"KINO_LOG_LEVEL"`
	LogFormat    string `env:"KINO_LOG_FORMAT"`
}

// loadDotEnv copies variables from a .env file into the process environment.
// Variables that are already set win over the file.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func readEnvironment() (environment, error) {
	values, err := env.ParseAs[environment]()
	if err != nil {
		return environment{}, fmt.Errorf("parse environment: %w", err)
	}
	return values, nil
}
