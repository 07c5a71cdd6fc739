package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvBank     = "QUIZBANK_BANK"
	EnvSize     = "QUIZBANK_SIZE"
	EnvAddr     = "QUIZBANK_ADDR"
	EnvLogLevel = "QUIZBANK_LOG_LEVEL"
	EnvLogFile  = "QUIZBANK_LOG_FILE"

	EnvMaxSessions = "QUIZBANK_MAX_SESSIONS"
)

// Config stores runtime configuration. Sources are applied in order:
// defaults, config file, environment, command-line flags.
type Config struct {
	BankPath string `yaml:"bank"`
	Size     int    `yaml:"size"`
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	// MaxSessions caps the browser sessions the web host keeps in memory.
	MaxSessions int `yaml:"max_sessions"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BankPath: "preguntas.json",
		Size:     4,
		Addr:     ":8080",
		LogLevel: "info",

		MaxSessions: 1000,
	}
}

// Load builds a Config from defaults, the optional YAML file at path and the
// process environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.MergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MergeFile overlays the fields present in a YAML config file. Unknown fields
// are rejected.
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// ApplyEnv overlays values from the environment through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBank); ok && v != "" {
		c.BankPath = v
	}
	if v, ok := lookup(EnvSize); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSize, err)
		}
		c.Size = n
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.LogFile = v
	}
	if v, ok := lookup(EnvMaxSessions); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxSessions, err)
		}
		c.MaxSessions = n
	}
	return nil
}

// Validate checks the final configuration.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.BankPath) == "" {
		problems = append(problems, "bank path is required")
	}
	if c.Size < 1 {
		problems = append(problems, fmt.Sprintf("size must be at least 1, got %d", c.Size))
	}
	if c.MaxSessions < 1 {
		problems = append(problems, fmt.Sprintf("max sessions must be at least 1, got %d", c.MaxSessions))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
