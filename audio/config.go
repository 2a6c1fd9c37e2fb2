package audio

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/lixenwraith/excuse-wheel/constant"
	"github.com/lixenwraith/excuse-wheel/core"
)

// Environment variables read by ApplyEnv
const (
	EnvAudioEnabled = "EXCUSE_WHEEL_AUDIO_ENABLED"
	EnvMasterVolume = "EXCUSE_WHEEL_MASTER_VOLUME"
	EnvSFXVolumes   = "EXCUSE_WHEEL_SFX_VOLUMES"
	EnvSampleRate   = "EXCUSE_WHEEL_SAMPLE_RATE"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool               `yaml:"enabled"`
	MasterVolume  float64            `yaml:"master_volume"`
	EffectVolumes map[string]float64 `yaml:"effects"`
	SampleRate    int                `yaml:"sample_rate"`
}

// DefaultAudioConfig returns audio enabled at full volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		EffectVolumes: map[string]float64{
			core.SoundTick.String():    1.0,
			core.SoundFanfare.String(): 1.0,
		},
		SampleRate: constant.AudioSampleRate,
	}
}

// Volume returns the effective volume for a sound, master times effect
// Sounds missing from EffectVolumes play at master volume
func (c *AudioConfig) Volume(st core.SoundType) float64 {
	vol := c.MasterVolume
	if ev, ok := c.EffectVolumes[st.String()]; ok {
		vol *= ev
	}
	return vol
}

// Clone returns a deep copy
func (c *AudioConfig) Clone() *AudioConfig {
	out := *c
	out.EffectVolumes = make(map[string]float64, len(c.EffectVolumes))
	for k, v := range c.EffectVolumes {
		out.EffectVolumes[k] = v
	}
	return &out
}

// LoadAudioConfig returns defaults overridden from the environment
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides fields from environment variables, ignoring malformed values
func (c *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// Master volume is 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Effect volumes as JSON, e.g. {"tick":0.5,"fanfare":1}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if c.EffectVolumes == nil {
				c.EffectVolumes = make(map[string]float64, len(volumes))
			}
			for _, st := range []core.SoundType{core.SoundTick, core.SoundFanfare} {
				if v, ok := volumes[st.String()]; ok {
					c.EffectVolumes[st.String()] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}

// Validate reports the first out-of-range field
func (c *AudioConfig) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("master_volume %.2f out of range [0, 1]", c.MasterVolume)
	}
	for name, v := range c.EffectVolumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("effect volume %s=%.2f out of range [0, 1]", name, v)
		}
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate %d must be positive", c.SampleRate)
	}
	return nil
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
