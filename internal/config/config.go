// Package config loads and validates the YAML configuration shared by
// cmd/seitictl and cmd/seitid.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config specifies every tunable the seiti binaries accept outside their
// per-invocation flags: server binding, export rendering defaults, and the
// generator's default seed when the caller doesn't supply one.
type Config struct {
	// Server controls cmd/seitid's HTTP binding and CORS policy.
	Server ServerCfg `yaml:"server" json:"server"`

	// Export controls cmd/seitictl's default SVG rendering.
	Export ExportCfg `yaml:"export" json:"export"`

	// DefaultSeed seeds generation when no seed is given on the CLI. 0
	// means "pick a random seed".
	DefaultSeed uint32 `yaml:"defaultSeed" json:"defaultSeed"`
}

// ServerCfg configures the HTTP façade.
type ServerCfg struct {
	// Port is the TCP port to listen on (1-65535).
	Port int `yaml:"port" json:"port"`

	// AllowedOrigins lists the CORS origins the server accepts; ["*"]
	// allows any origin, matching the reference backend's permissive
	// default.
	AllowedOrigins []string `yaml:"allowedOrigins" json:"allowedOrigins"`
}

// ExportCfg configures SVG rendering defaults.
type ExportCfg struct {
	// CellSize is the pixel size of one board cell (must be positive).
	CellSize int `yaml:"cellSize" json:"cellSize"`

	// Margin is the canvas margin in pixels (must be non-negative).
	Margin int `yaml:"margin" json:"margin"`

	// StoneRatio is the stone radius as a fraction of CellSize/2, in
	// (0.0, 1.0].
	StoneRatio float64 `yaml:"stoneRatio" json:"stoneRatio"`
}

// Default returns the built-in configuration used when no file is
// supplied.
func Default() Config {
	return Config{
		Server: ServerCfg{
			Port:           3000,
			AllowedOrigins: []string{"*"},
		},
		Export: ExportCfg{
			CellSize:   32,
			Margin:     24,
			StoneRatio: 0.85,
		},
	}
}

// Load reads and validates a YAML configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses YAML configuration from data, starting from
// Default() so a partial file only overrides the fields it sets.
func LoadFromBytes(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks every configuration constraint, returning the first
// failure it finds.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Export.Validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// Validate checks ServerCfg constraints.
func (s ServerCfg) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port must be in range [1, 65535], got %d", s.Port)
	}
	if len(s.AllowedOrigins) == 0 {
		return errors.New("at least one allowed origin must be specified")
	}
	return nil
}

// Validate checks ExportCfg constraints.
func (e ExportCfg) Validate() error {
	if e.CellSize <= 0 {
		return fmt.Errorf("cellSize must be positive, got %d", e.CellSize)
	}
	if e.Margin < 0 {
		return fmt.Errorf("margin must be non-negative, got %d", e.Margin)
	}
	if e.StoneRatio <= 0.0 || e.StoneRatio > 1.0 {
		return fmt.Errorf("stoneRatio must be in range (0.0, 1.0], got %f", e.StoneRatio)
	}
	return nil
}
