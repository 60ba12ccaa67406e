package database

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Driver names understood by Config.DSN.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config describes a database connection.
type Config struct {
	Driver   string            `yaml:"driver"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	User     string            `yaml:"user"`
	Password string            `yaml:"password"`
	Database string            `yaml:"database"`
	Params   map[string]string `yaml:"params"`
}

// LoadConfig loads and parses a YAML connection config from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML data into a Config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Driver == "" {
		cfg.Driver = DriverMySQL
	}

	// File-backed drivers have no endpoint to default
	if cfg.Driver == DriverSQLite {
		return
	}

	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 3306
	}
}

// Validate checks that the config names a usable target.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverMySQL:
		if c.Database == "" {
			return errors.New("database name is required")
		}
		if c.User == "" {
			return errors.New("user is required for network drivers")
		}
	case DriverSQLite:
		if c.Database == "" {
			return errors.New("database path is required")
		}
	default:
		return fmt.Errorf("unknown driver %q", c.Driver)
	}

	return nil
}

// DSN renders the driver-specific connection string. Params are appended
// sorted by key so the result is reproducible.
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Database + c.encodedParams()
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", c.User, c.Password, c.Host, c.Port, c.Database)

	return dsn + c.encodedParams()
}

func (c *Config) encodedParams() string {
	if len(c.Params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + url.QueryEscape(c.Params[k])
	}

	return "?" + strings.Join(pairs, "&")
}
