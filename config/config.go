package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hupe1980/partlist/codec"
	"gopkg.in/yaml.v3"
)

// Format names a configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
	ErrUnknownFormat = errors.New("config: unknown format")
	// ErrInvalid is returned when a loaded configuration fails validation.
	ErrInvalid = errors.New("config: invalid")
)

// Config holds the settings of one list.
type Config struct {
	Keys         []string `yaml:"keys" toml:"keys"`
	StrictKeys   bool     `yaml:"strict_keys" toml:"strict_keys"`
	ReclaimEmpty bool     `yaml:"reclaim_empty" toml:"reclaim_empty"`
	Capacity     int      `yaml:"capacity" toml:"capacity"`
	LogLevel     string   `yaml:"log_level" toml:"log_level"`
	LogFormat    string   `yaml:"log_format" toml:"log_format"`

	// CopyCodec names the codec Clone deep-copies elements with
	// ("json", "go-json", "msgpack"). Empty means shallow copies.
	CopyCodec string `yaml:"copy_codec" toml:"copy_codec"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Parse decodes data on top of Default and validates the result.
// Unknown fields are rejected.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF and leaves the defaults.
		if err := dec.Decode(cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown field %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("%w: capacity %d is negative", ErrInvalid, c.Capacity)
	}
	if c.StrictKeys && len(c.Keys) == 0 {
		return fmt.Errorf("%w: strict_keys needs at least one key", ErrInvalid)
	}
	seen := make(map[string]struct{}, len(c.Keys))
	for _, k := range c.Keys {
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalid, k)
		}
		seen[k] = struct{}{}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}
	if c.CopyCodec != "" {
		if _, ok := codec.ByName(c.CopyCodec); !ok {
			return fmt.Errorf("%w: copy_codec %q", ErrInvalid, c.CopyCodec)
		}
	}
	return nil
}

// Level parses LogLevel. An empty level is info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return level, nil
}
