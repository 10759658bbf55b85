package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	EnvPath      = "INVENTORY_CONFIG"
	EnvLogLevel  = "INVENTORY_LOG_LEVEL"
	EnvLogOutput = "INVENTORY_LOG_OUTPUT"
	EnvCurrency  = "INVENTORY_CURRENCY"
	EnvStats     = "INVENTORY_STATS"
)

type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogOutput string `yaml:"log_output"`
	Currency  string `yaml:"currency"`
	Stats     bool   `yaml:"stats"`
}

func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogOutput: "stderr",
		Currency:  "$",
	}
}

// Overrides holds explicitly set command-line values. Nil fields are unset.
type Overrides struct {
	LogLevel  *string
	LogOutput *string
	Currency  *string
	Stats     *bool
}

// Load builds a Config from defaults, then the YAML file at path (if any),
// then the environment, then o. The result is validated once, after every
// layer is applied.
func Load(path string, o Overrides) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := decode(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, o); err != nil {
		return Config{}, err
	}
	o.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.LogOutput == "" {
		return errors.New("log_output is required")
	}
	return nil
}

func decode(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// applyEnv skips keys that o overrides, so a malformed variable is ignored
// when a flag replaces it.
func applyEnv(cfg *Config, o Overrides) error {
	cfg.LogLevel = getenv(EnvLogLevel, cfg.LogLevel)
	cfg.LogOutput = getenv(EnvLogOutput, cfg.LogOutput)
	cfg.Currency = getenv(EnvCurrency, cfg.Currency)

	if v := os.Getenv(EnvStats); v != "" && o.Stats == nil {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStats, err)
		}
		cfg.Stats = b
	}
	return nil
}

func (o Overrides) apply(cfg *Config) {
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	if o.LogOutput != nil {
		cfg.LogOutput = *o.LogOutput
	}
	if o.Currency != nil {
		cfg.Currency = *o.Currency
	}
	if o.Stats != nil {
		cfg.Stats = *o.Stats
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
