package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/excuse-wheel/constant"
	"github.com/lixenwraith/excuse-wheel/core"
)

// ErrSpeakerUnavailable marks a failed speaker initialisation; playback falls back to silent mode
var ErrSpeakerUnavailable = errors.New("speaker unavailable")

// Output is the device a SoundManager writes to
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

// speakerOutput routes to the process-wide beep speaker
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }

// Player is the minimal audio interface used by the wheel
type Player interface {
	Play(core.SoundType) bool
}

// SoundManager owns the audio output handle
// The output is opened on the first Play and reused for the process lifetime
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	output      Output
	mixer       *beep.Mixer
	initialized bool
	initErr     error

	muted  atomic.Bool
	played atomic.Uint64
}

// NewSoundManager creates a sound manager writing to the system speaker
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	return NewSoundManagerWithOutput(cfg, speakerOutput{})
}

// NewSoundManagerWithOutput creates a sound manager writing to out
func NewSoundManagerWithOutput(cfg *AudioConfig, out Output) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config: cfg.Clone(),
		output: out,
		mixer:  &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// ensureInit opens the output once; caller holds sm.mu
func (sm *SoundManager) ensureInit() error {
	if sm.initialized {
		return sm.initErr
	}
	sm.initialized = true

	// Zero or negative rates divide by zero inside speaker.Init
	if sm.config.SampleRate <= 0 {
		sm.initErr = fmt.Errorf("%w: invalid sample rate %d", ErrSpeakerUnavailable, sm.config.SampleRate)
		log.Printf("Audio initialization failed: %v (continuing without audio)", sm.initErr)
		return sm.initErr
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := sm.output.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		sm.initErr = fmt.Errorf("%w: %v", ErrSpeakerUnavailable, err)
		// Non-fatal, the wheel spins without sound
		log.Printf("Audio initialization failed: %v (continuing without audio)", sm.initErr)
		return sm.initErr
	}

	sm.output.Play(sm.mixer)
	return nil
}

// Play queues a sound, returns false when muted or the output is unavailable
func (sm *SoundManager) Play(st core.SoundType) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if err := sm.ensureInit(); err != nil {
		return false
	}

	streamer := GetSoundEffect(st, sm.config)
	if streamer == nil {
		return false
	}

	sm.output.Lock()
	sm.mixer.Add(streamer)
	sm.output.Unlock()

	sm.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if now audible
func (sm *SoundManager) ToggleMute() bool {
	newMute := !sm.muted.Load()
	sm.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// SetVolume updates master volume (0.0-1.0) for sounds queued afterwards
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	sm.config.MasterVolume = clampUnit(vol)
	sm.mu.Unlock()
}

// Mode describes the playback state for the status line
func (sm *SoundManager) Mode() string {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	switch {
	case sm.initErr != nil:
		return "silent"
	case sm.muted.Load():
		return "muted"
	case !sm.initialized:
		return "idle"
	default:
		return "active"
	}
}

// Played returns the number of sounds handed to the output
func (sm *SoundManager) Played() uint64 {
	return sm.played.Load()
}

// Cleanup drops any sounds still playing; the speaker itself stays open
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.initErr != nil {
		return
	}

	sm.output.Lock()
	sm.mixer.Clear()
	sm.output.Unlock()
}
