package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"market-signals/models"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server" toml:"server"`
	Database DatabaseConfig `yaml:"database" toml:"database"`
	Log      LogConfig      `yaml:"log" toml:"log"`
	Query    QueryConfig    `yaml:"query" toml:"query"`
	Seed     SeedConfig     `yaml:"seed" toml:"seed"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" toml:"addr"`
	Mode            string        `yaml:"mode" toml:"mode"`
	BasePath        string        `yaml:"base_path" toml:"base_path"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Path        string        `yaml:"path" toml:"path"`
	BusyTimeout time.Duration `yaml:"busy_timeout" toml:"busy_timeout"`
	LogLevel    string        `yaml:"log_level" toml:"log_level"`
	SlowQuery   time.Duration `yaml:"slow_query" toml:"slow_query"`
}

// DSN builds the go-sqlite3 connection string. Transactions begin
// IMMEDIATE so the seed check and insert hold the write lock together.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_txlock=immediate",
		filepath.ToSlash(d.Path), d.BusyTimeout.Milliseconds())
}

type LogConfig struct {
	Mode  string `yaml:"mode" toml:"mode"`
	Level string `yaml:"level" toml:"level"`
}

type QueryConfig struct {
	DefaultLimit int `yaml:"default_limit" toml:"default_limit"`
}

type SeedConfig struct {
	OnStartup bool `yaml:"on_startup" toml:"on_startup"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{Seed: SeedConfig{OnStartup: true}}
	cfg.setDefaults()
	return cfg
}

// Load reads .env, then the config file at path (YAML or TOML by
// extension), then environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{Seed: SeedConfig{OnStartup: true}}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := decode(path, []byte(os.ExpandEnv(string(data))), cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml", "":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	if v := os.Getenv("SIGNALS_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SIGNALS_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("SIGNALS_LOG_MODE"); v != "" {
		c.Log.Mode = v
	}
	if v := os.Getenv("SIGNALS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("SIGNALS_SEED_ON_STARTUP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SIGNALS_SEED_ON_STARTUP must be a boolean, got %q", v)
		}
		c.Seed.OnStartup = b
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8090"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Server.BasePath == "" {
		c.Server.BasePath = "/api"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join("data", "market_intel.db")
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = 5 * time.Second
	}
	if c.Database.LogLevel == "" {
		c.Database.LogLevel = "warn"
	}
	if c.Database.SlowQuery == 0 {
		c.Database.SlowQuery = 200 * time.Millisecond
	}
	if c.Log.Mode == "" {
		c.Log.Mode = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Query.DefaultLimit == 0 {
		c.Query.DefaultLimit = models.DefaultLimit
	}
}

func (c *Config) Validate() error {
	if c.Query.DefaultLimit < 0 {
		return fmt.Errorf("query.default_limit must be positive, got %d", c.Query.DefaultLimit)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be one of debug|release|test, got %q", c.Server.Mode)
	}
	if !strings.HasPrefix(c.Server.BasePath, "/") {
		return fmt.Errorf("server.base_path must start with '/', got %q", c.Server.BasePath)
	}
	switch c.Database.LogLevel {
	case "silent", "error", "warn", "info":
	default:
		return fmt.Errorf("database.log_level must be one of silent|error|warn|info, got %q", c.Database.LogLevel)
	}
	return nil
}
