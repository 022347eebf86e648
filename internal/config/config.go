// Package config provides layered application configuration: built-in defaults,
// an optional TOML file and MRS_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides: MRS_SERVER_PORT sets server.port.
const EnvPrefix = "MRS_"

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Database    DatabaseConfig    `koanf:"database"`
	Log         LogConfig         `koanf:"log"`
	Interdiff   InterdiffConfig   `koanf:"interdiff"`
	Integration IntegrationConfig `koanf:"integration"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port string `koanf:"port"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// DatabaseConfig contains PostgreSQL connection settings. An empty host selects
// the in-memory store.
type DatabaseConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	DBName   string `koanf:"dbname"`
	SSLMode  string `koanf:"sslmode"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

// InterdiffConfig selects the diff-of-diffs backend.
type InterdiffConfig struct {
	Backend       string `koanf:"backend"`
	Binary        string `koanf:"binary"`
	MaxConcurrent int64  `koanf:"max_concurrent"`
}

// IntegrationConfig describes how accepted patches reach the repository.
type IntegrationConfig struct {
	Mode          string `koanf:"mode"`
	Workdir       string `koanf:"workdir"`
	Remote        string `koanf:"remote"`
	GitLabURL     string `koanf:"gitlab_url"`
	GitLabToken   string `koanf:"gitlab_token"`
	GitLabProject string `koanf:"gitlab_project"`
}

var defaults = map[string]any{
	"server.host":              "0.0.0.0",
	"server.port":              "8080",
	"database.port":            "5432",
	"database.sslmode":         "disable",
	"log.level":                "info",
	"log.pretty":               false,
	"interdiff.backend":        "exec",
	"interdiff.binary":         "interdiff",
	"interdiff.max_concurrent": 4,
	"integration.mode":         "dry",
	"integration.remote":       "origin",
}

// Load reads configuration. A .env file in the working directory is loaded into
// the environment first; path may be empty.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// envKey maps MRS_INTERDIFF_MAX_CONCURRENT to interdiff.max_concurrent: the first
// segment names the section, the rest is the key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + key
}

// UsesPostgres reports whether a database host is configured.
func (c *Config) UsesPostgres() bool {
	return c.Database.Host != ""
}

// Validate reports missing or inconsistent settings.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}

	if c.UsesPostgres() {
		if c.Database.User == "" {
			errs = append(errs, errors.New("database.user is required"))
		}
		if c.Database.DBName == "" {
			errs = append(errs, errors.New("database.dbname is required"))
		}
	}

	switch c.Interdiff.Backend {
	case "exec", "line":
	default:
		errs = append(errs, fmt.Errorf("interdiff.backend %q is not one of exec, line", c.Interdiff.Backend))
	}
	if c.Interdiff.MaxConcurrent < 1 {
		errs = append(errs, errors.New("interdiff.max_concurrent must be positive"))
	}

	switch c.Integration.Mode {
	case "dry":
	case "git":
		if c.Integration.Workdir == "" {
			errs = append(errs, errors.New("integration.workdir is required in git mode"))
		}
		if c.Integration.GitLabProject != "" && c.Integration.GitLabToken == "" {
			errs = append(errs, errors.New("integration.gitlab_token is required with integration.gitlab_project"))
		}
	default:
		errs = append(errs, fmt.Errorf("integration.mode %q is not one of dry, git", c.Integration.Mode))
	}

	return errors.Join(errs...)
}

// DSN returns PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
