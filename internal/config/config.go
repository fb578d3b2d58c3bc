package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates application configuration values.
type Config struct {
	Addr        string    `yaml:"addr"`
	DatabaseURL string    `yaml:"database_url"`
	PhoneRegion string    `yaml:"phone_region"`
	CORSOrigins []string  `yaml:"cors_origins"`
	Log         LogConfig `yaml:"log"`
}

// LogConfig controls structured logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console|json
}

const (
	defaultAddr        = ":8080"
	defaultPhoneRegion = "US"
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
)

// Load reads .env (if present), then the YAML file named by CONFIG_FILE
// (if set), then environment variables, which win.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fromFile, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = fromFile
	}

	cfg.Addr = valueOrDefault("ADDR", cfg.Addr)
	cfg.DatabaseURL = valueOrDefault("DATABASE_URL", cfg.DatabaseURL)
	cfg.PhoneRegion = valueOrDefault("PHONE_REGION", cfg.PhoneRegion)
	cfg.Log.Level = valueOrDefault("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = valueOrDefault("LOG_FORMAT", cfg.Log.Format)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config file without applying env overrides.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = defaultAddr
	}
	if c.PhoneRegion == "" {
		c.PhoneRegion = defaultPhoneRegion
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
	c.PhoneRegion = strings.ToUpper(c.PhoneRegion)
	c.Log.Format = strings.ToLower(c.Log.Format)
}

func (c Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("invalid LOG_FORMAT %q: want console or json", c.Log.Format)
	}
	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
