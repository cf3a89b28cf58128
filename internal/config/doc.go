// Package config loads, normalizes, and validates kino configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads a .env file from the working directory,
// and honours environment fallbacks such as TMDB_API_TOKEN. The Config type
// centralizes every knob the fetch and discover commands need.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors.
package config
