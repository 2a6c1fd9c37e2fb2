// Package config resolves application settings from defaults, an optional
// YAML file, EXCUSE_WHEEL_* environment variables and command-line flags,
// applied in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/excuse-wheel/audio"
)

// Environment variables read by ApplyEnv; audio variables live in the audio package
const (
	EnvCatalog = "EXCUSE_WHEEL_CATALOG"
	EnvSeed    = "EXCUSE_WHEEL_SEED"
	EnvDebug   = "EXCUSE_WHEEL_DEBUG"
)

// Config is the resolved application configuration
//
//	catalog: excuses.yaml
//	seed: 42
//	debug: false
//	audio:
//	  enabled: true
//	  master_volume: 0.8
//	  effects: {tick: 0.5, fanfare: 1.0}
type Config struct {
	Catalog string             `yaml:"catalog"` // Empty uses the compiled-in catalog
	Seed    int64              `yaml:"seed"`    // 0 seeds from the clock
	Debug   bool               `yaml:"debug"`
	Audio   *audio.AudioConfig `yaml:"audio"`
}

// Overrides carries flag values; nil fields were not set on the command line
type Overrides struct {
	Catalog *string
	Seed    *int64
	Mute    *bool
	Volume  *int // 0-100
	Debug   *bool
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Audio: audio.DefaultAudioConfig(),
	}
}

// Load resolves configuration; an empty path skips the file layer
func Load(path string, o Overrides) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	cfg.Apply(o)
	return cfg, nil
}

// decode overlays YAML onto the receiver; unknown keys are rejected
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if c.Audio == nil {
		// "audio:" with no body decodes to nil
		c.Audio = audio.DefaultAudioConfig()
	}
	return c.Audio.Validate()
}

// ApplyEnv overrides fields from environment variables, ignoring malformed values
func (c *Config) ApplyEnv() {
	if path := os.Getenv(EnvCatalog); path != "" {
		c.Catalog = path
	}
	if seed := os.Getenv(EnvSeed); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			c.Seed = val
		}
	}
	if debug := os.Getenv(EnvDebug); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			c.Debug = val
		}
	}
	c.Audio.ApplyEnv()
}

// Apply overrides fields with explicitly set flags
func (c *Config) Apply(o Overrides) {
	if o.Catalog != nil {
		c.Catalog = *o.Catalog
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.Debug != nil {
		c.Debug = *o.Debug
	}
	if o.Mute != nil && *o.Mute {
		c.Audio.Enabled = false
	}
	if o.Volume != nil {
		v := min(max(*o.Volume, 0), 100)
		c.Audio.MasterVolume = float64(v) / 100.0
	}
}
