package config

import (
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateFetch(); err != nil {
		return err
	}
	if err := c.validateDiscover(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIToken == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/kino/config.toml"
		}
		return fmt.Errorf("tmdb.api_token is required. Set TMDB_API_TOKEN env var or edit %s (create with 'kino config init')", defaultPath)
	}
	for key, raw := range map[string]string{
		"tmdb.base_url":       c.TMDB.BaseURL,
		"tmdb.image_base_url": c.TMDB.ImageBaseURL,
		"tmdb.web_base_url":   c.TMDB.WebBaseURL,
	} {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
		}
	}
	if c.TMDB.Language != "" {
		if _, err := language.Parse(c.TMDB.Language); err != nil {
			return fmt.Errorf("tmdb.language %q is not a valid language tag: %w", c.TMDB.Language, err)
		}
	}
	if c.TMDB.TimeoutSeconds < 0 {
		return errors.New("tmdb.timeout_seconds must be zero or positive")
	}
	return nil
}

func (c *Config) validateFetch() error {
	if c.Fetch.Workers < 1 {
		return errors.New("fetch.workers must be at least 1")
	}
	if c.Fetch.DefaultLimit < 0 {
		return errors.New("fetch.default_limit must be zero or positive")
	}
	return nil
}

func (c *Config) validateDiscover() error {
	if c.Discover.Workers < 1 {
		return errors.New("discover.workers must be at least 1")
	}
	if c.Discover.Pages < 1 {
		return errors.New("discover.pages must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
