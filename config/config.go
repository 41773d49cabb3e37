// Package config loads palctl's connection settings from the
// environment, with optional .env file support.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "PALWORLD"

// Config represents the connection settings for a Palworld server's REST API.
type Config struct {
	Address      string        // base URL, e.g. http://127.0.0.1:8212
	Username     string        // Basic Auth username
	Password     string        // Basic Auth password
	PasswordFile string        // path to a file holding the password
	Timeout      time.Duration // overall exchange timeout; zero keeps library defaults
}

// Load builds the configuration from environment variables. A .env
// file in the working directory is read first if present. Variables
// use the PALWORLD_ prefix: ADDRESS, USERNAME, PASSWORD,
// PASSWORD_FILE, TIMEOUT.
func Load() (*Config, error) {
	// Missing .env is fine; explicit env vars win either way.
	_ = godotenv.Load()

	cfg := Config{
		Address:      getEnv("ADDRESS"),
		Username:     getEnv("USERNAME"),
		Password:     getEnv("PASSWORD"),
		PasswordFile: getEnv("PASSWORD_FILE"),
	}

	if v := getEnv("TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parsing %s_TIMEOUT: %w", envPrefix, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration has all required fields.
func (c *Config) Validate() error {
	if c.Password == "" && c.PasswordFile == "" {
		return fmt.Errorf("either %s_PASSWORD or %s_PASSWORD_FILE is required", envPrefix, envPrefix)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// ResolvePassword returns the password, reading from the password file
// if one is configured. The file takes priority.
func (c *Config) ResolvePassword() (string, error) {
	if c.PasswordFile != "" {
		data, err := os.ReadFile(c.PasswordFile)
		if err != nil {
			return "", fmt.Errorf("reading password file %s: %w", c.PasswordFile, err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if c.Password != "" {
		return c.Password, nil
	}
	return "", fmt.Errorf("no password provided")
}

// getEnv gets an environment variable with the PALWORLD_ prefix.
func getEnv(key string) string {
	return os.Getenv(envPrefix + "_" + key)
}
