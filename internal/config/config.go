// Package config assembles run settings from defaults, an optional HCL
// file, and DUNGEONTILES_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/samdwyer/dungeontiles/internal/tilemap"
)

// Environment variables read by FromEnv.
const (
	EnvMap     = "DUNGEONTILES_MAP"
	EnvScale   = "DUNGEONTILES_SCALE"
	EnvWorkers = "DUNGEONTILES_WORKERS"
	EnvFormat  = "DUNGEONTILES_FORMAT"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// Config holds run configuration options.
type Config struct {
	// Map is a file path or "embed:<name>" reference.
	Map string
	// Scale is the world units per grid cell.
	Scale float64
	// Workers bounds the resolver's goroutine pool. 0 or 1 resolves inline.
	Workers int
	// Format selects the output writer for records.
	Format string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Map:    "embed:crypt",
		Scale:  tilemap.DefaultScale,
		Format: FormatJSON,
	}
}

// fileConfig mirrors Config in HCL; every attribute is optional.
type fileConfig struct {
	Map     *string  `hcl:"map,optional"`
	Scale   *float64 `hcl:"scale,optional"`
	Workers *int     `hcl:"workers,optional"`
	Format  *string  `hcl:"format,optional"`
}

func (f fileConfig) apply(cfg *Config) {
	if f.Map != nil {
		cfg.Map = *f.Map
	}
	if f.Scale != nil {
		cfg.Scale = *f.Scale
	}
	if f.Workers != nil {
		cfg.Workers = *f.Workers
	}
	if f.Format != nil {
		cfg.Format = *f.Format
	}
}

// Load reads the HCL file at path (skipped when empty) over the defaults,
// then applies the environment. The result is not validated so that callers
// can layer flag overrides on top before calling Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		hclFile, diags := hclparse.NewParser().ParseHCLFile(path)
		if diags.HasErrors() {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, diags)
		}
		if err := cfg.decodeBody(path, hclFile); err != nil {
			return cfg, err
		}
	}

	if err := cfg.FromEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode parses HCL source over c. The filename is only used in
// diagnostics.
func (c *Config) Decode(filename string, src []byte) error {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	return c.decodeBody(filename, hclFile)
}

func (c *Config) decodeBody(filename string, hclFile *hcl.File) error {
	var f fileConfig
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}
	f.apply(c)
	return nil
}

// FromEnv overrides fields from DUNGEONTILES_* variables found by lookup.
func (c *Config) FromEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMap); ok && v != "" {
		c.Map = v
	}
	if v, ok := lookup(EnvScale); ok && v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvScale, v, err)
		}
		c.Scale = scale
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		c.Workers = workers
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Format = v
	}
	return nil
}

// Validate checks the configuration for values the tool cannot use.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch c.Format {
	case FormatJSON, FormatTable:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	return nil
}

// ResolveOptions returns the resolver options implied by the config.
func (c Config) ResolveOptions() []tilemap.Option {
	if c.Workers > 1 {
		return []tilemap.Option{tilemap.WithWorkers(c.Workers)}
	}
	return nil
}
