package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	values, err := readEnvironment()
	if err != nil {
		return err
	}
	c.normalizeTMDB(values)
	c.normalizeFetch()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	return c.normalizeLogging(values)
}

func (c *Config) normalizeTMDB(values environment) {
	c.TMDB.APIToken = strings.TrimSpace(c.TMDB.APIToken)
	if c.TMDB.APIToken == "" {
		c.TMDB.APIToken = strings.TrimSpace(values.TMDBAPIToken)
	}
	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.ImageBaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.ImageBaseURL), "/")
	if c.TMDB.ImageBaseURL == "" {
		c.TMDB.ImageBaseURL = defaultTMDBImageBaseURL
	}
	c.TMDB.WebBaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.WebBaseURL), "/")
	if c.TMDB.WebBaseURL == "" {
		c.TMDB.WebBaseURL = defaultTMDBWebBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
}

func (c *Config) normalizeFetch() {
	c.Fetch.IDColumn = strings.TrimSpace(c.Fetch.IDColumn)
	if c.Fetch.IDColumn == "" {
		c.Fetch.IDColumn = defaultIDColumn
	}
}

func (c *Config) normalizeOutput() error {
	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = ""
		return nil
	}
	dir, err := expandPath(strings.TrimSpace(c.Output.Dir))
	if err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	c.Output.Dir = dir
	return nil
}

func (c *Config) normalizeLogging(values environment) error {
	if value := strings.TrimSpace(values.LogFormat); value != "" {
		c.Logging.Format = value
	}
	if value := strings.TrimSpace(values.LogLevel); value != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = ""
		return nil
	}
	dir, err := expandPath(strings.TrimSpace(c.Logging.Dir))
	if err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	c.Logging.Dir = dir
	return nil
}
