package audio

import (
	"errors"
	"sync"
	"testing"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/excuse-wheel/core"
)

// fakeOutput records speaker interaction without a device
type fakeOutput struct {
	mu       sync.Mutex
	initErr  error
	inits    int
	played   []beep.Streamer
	locked   int
	unlocked int
}

func (f *fakeOutput) Init(beep.SampleRate, int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits++
	return f.initErr
}

func (f *fakeOutput) Play(s ...beep.Streamer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, s...)
}

func (f *fakeOutput) Lock()   { f.locked++ }
func (f *fakeOutput) Unlock() { f.unlocked++ }

func TestSoundManagerLazyInit(t *testing.T) {
	out := &fakeOutput{}
	sm := NewSoundManagerWithOutput(DefaultAudioConfig(), out)

	if out.inits != 0 {
		t.Fatal("Output should not open before first Play")
	}
	if sm.Mode() != "idle" {
		t.Errorf("Expected idle mode, got %s", sm.Mode())
	}

	if !sm.Play(core.SoundTick) {
		t.Fatal("Expected Play to succeed")
	}
	sm.Play(core.SoundFanfare)
	sm.Play(core.SoundTick)

	if out.inits != 1 {
		t.Errorf("Expected output opened once, got %d", out.inits)
	}
	if len(out.played) != 1 {
		t.Errorf("Expected mixer handed to output once, got %d", len(out.played))
	}
	if out.locked != 3 || out.unlocked != 3 {
		t.Errorf("Expected 3 balanced lock pairs, got %d/%d", out.locked, out.unlocked)
	}
	if sm.Played() != 3 {
		t.Errorf("Expected 3 played, got %d", sm.Played())
	}
	if sm.Mode() != "active" {
		t.Errorf("Expected active mode, got %s", sm.Mode())
	}
}

func TestSoundManagerSilentOnInitFailure(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no device")}
	sm := NewSoundManagerWithOutput(DefaultAudioConfig(), out)

	if sm.Play(core.SoundTick) {
		t.Error("Play should report false without a device")
	}
	if sm.Play(core.SoundFanfare) {
		t.Error("Play should keep reporting false")
	}

	if out.inits != 1 {
		t.Errorf("Failed init should not be retried, got %d attempts", out.inits)
	}
	if sm.Mode() != "silent" {
		t.Errorf("Expected silent mode, got %s", sm.Mode())
	}
	if sm.Played() != 0 {
		t.Errorf("Expected nothing played, got %d", sm.Played())
	}
}

func TestSoundManagerMute(t *testing.T) {
	out := &fakeOutput{}
	sm := NewSoundManagerWithOutput(DefaultAudioConfig(), out)

	if audible := sm.ToggleMute(); audible {
		t.Error("Expected muted after first toggle")
	}
	if sm.Play(core.SoundTick) {
		t.Error("Muted Play should return false")
	}
	if out.inits != 0 {
		t.Error("Muted Play should not open the output")
	}

	if audible := sm.ToggleMute(); !audible {
		t.Error("Expected audible after second toggle")
	}
	if !sm.Play(core.SoundTick) {
		t.Error("Expected Play after unmute")
	}
}

func TestSoundManagerDisabledConfigStartsMuted(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManagerWithOutput(cfg, &fakeOutput{})

	if !sm.IsMuted() {
		t.Error("Disabled config should start muted")
	}
}

func TestSoundManagerUnknownSound(t *testing.T) {
	sm := NewSoundManagerWithOutput(nil, &fakeOutput{})
	if sm.Play(core.SoundTypeCount) {
		t.Error("Unknown sound should not play")
	}
}

func TestSoundManagerCleanupWithoutInit(t *testing.T) {
	out := &fakeOutput{}
	sm := NewSoundManagerWithOutput(DefaultAudioConfig(), out)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cleanup panicked without initialization: %v", r)
		}
	}()

	sm.Cleanup()
	if out.locked != 0 {
		t.Error("Cleanup before init should not touch the output")
	}
}

func TestSoundManagerSetVolume(t *testing.T) {
	sm := NewSoundManagerWithOutput(DefaultAudioConfig(), &fakeOutput{})
	sm.SetVolume(2)
	if sm.config.MasterVolume != 1 {
		t.Errorf("Expected clamp to 1, got %f", sm.config.MasterVolume)
	}
}

func TestSoundManagerImplementsPlayer(t *testing.T) {
	var _ Player = (*SoundManager)(nil)
}

func TestSoundManagerSilentOnBadSampleRate(t *testing.T) {
	for _, rate := range []int{0, -3} {
		cfg := DefaultAudioConfig()
		cfg.SampleRate = rate
		out := &fakeOutput{}
		sm := NewSoundManagerWithOutput(cfg, out)

		if sm.Play(core.SoundTick) {
			t.Errorf("Rate %d: expected Play to report false", rate)
		}
		if out.inits != 0 {
			t.Errorf("Rate %d: expected output never opened, got %d inits", rate, out.inits)
		}
		if sm.Mode() != "silent" {
			t.Errorf("Rate %d: expected silent mode, got %s", rate, sm.Mode())
		}
		if !errors.Is(sm.initErr, ErrSpeakerUnavailable) {
			t.Errorf("Rate %d: expected ErrSpeakerUnavailable, got %v", rate, sm.initErr)
		}
	}
}
