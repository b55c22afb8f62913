// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A .env file in the
working directory is overlaid onto the process environment first, so local runs
behave the same as the deployment environment.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB pool, catalog client) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the MovieFinder tooling.
type Config struct {

	// Relational Database (PostgreSQL)
	DBHost     string `env:"DB_HOST"     envDefault:"127.0.0.1"`
	DBPort     int    `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"moviefinder"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"     envDefault:"moviefinder"`

	// Remote movie catalog (TMDb)
	TMDBAPIKey  string `env:"TMDB_API_KEY"`
	TMDBBaseURL string `env:"TMDB_BASE_URL" envDefault:"https://api.themoviedb.org/3"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
//
// A .env file, when present, is loaded first without overriding variables
// already set in the process environment. A missing .env file is not an error.
//
// Credentials are not validated here: each command checks only what it uses,
// via [Config.ValidateDatabase] and [Config.ValidateCatalog], so an API-only
// run never demands database credentials and vice versa.
func Load() (*Config, error) {

	// Overlay .env values onto the environment before parsing.
	_ = godotenv.Load()

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// ValidateDatabase reports a missing database credential.
func (c *Config) ValidateDatabase() error {
	if c.DBPassword == "" {
		return errors.New(`config: environment variable "DB_PASSWORD" is required`)
	}
	return nil
}

// ValidateCatalog reports a missing catalog API credential.
func (c *Config) ValidateCatalog() error {
	if c.TMDBAPIKey == "" {
		return errors.New(`config: environment variable "TMDB_API_KEY" is required`)
	}
	return nil
}

// DSN returns a postgres:// connection URL for the configured database.
// The password is percent-escaped so special characters survive URL parsing.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
