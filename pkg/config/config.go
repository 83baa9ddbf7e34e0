package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultColumn   = "word"
	defaultFormat   = "text"
	defaultAddr     = "127.0.0.1:5300"
	defaultLogLevel = "warn"
)

var ErrInvalidFormat = errors.New("invalid output format")

var formats = []string{"text", "json", "csv", "tsv"}

// Config holds the settings shared by every command. Values set on the command line
// take precedence over the file.
type Config struct {
	Words    []string `yaml:"words"`     // word source files
	Column   string   `yaml:"column"`    // CSV header or JSON field holding the word
	Format   string   `yaml:"format"`    // output format: text, json, csv or tsv
	Sorted   bool     `yaml:"sorted"`    // enumerate siblings in element order
	Addr     string   `yaml:"addr"`      // listen address of the HTTP server
	LogLevel string   `yaml:"log-level"` // debug, info, warn or error
}

func Default() *Config {
	return &Config{
		Column:   defaultColumn,
		Format:   defaultFormat,
		Addr:     defaultAddr,
		LogLevel: defaultLogLevel,
	}
}

// Load reads the YAML file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, config.Validate()
}

func (c *Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("%w %q, expected one of %s", ErrInvalidFormat, c.Format, strings.Join(formats, ", "))
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the slog level of LogLevel, warn when it does not parse.
func (c *Config) Level() slog.Level {
	level := slog.LevelWarn
	_ = level.UnmarshalText([]byte(c.LogLevel))
	return level
}
