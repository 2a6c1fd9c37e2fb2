package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/excuse-wheel/constant"
	"github.com/lixenwraith/excuse-wheel/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSquare
	WaveSaw
)

// oscillator generates a raw periodic wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes gain: linear ramp from startGain to peakGain over the attack,
// then exponential decay from peakGain to endGain by the end of the note
type envelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	totalSamples  int
	startGain     float64
	peakGain      float64
	endGain       float64
}

// NewEnvelope creates an attack/decay envelope; endGain must be positive for the exponential segment
func NewEnvelope(s beep.Streamer, duration, attack time.Duration, startGain, peakGain, endGain float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	if att > total {
		att = total
	}

	return &envelope{
		streamer:      s,
		attackSamples: att,
		totalSamples:  total,
		startGain:     startGain,
		peakGain:      peakGain,
		endGain:       endGain,
	}
}

// gainAt returns the envelope gain at sample position pos
func (e *envelope) gainAt(pos int) float64 {
	if pos < e.attackSamples {
		return e.startGain + (e.peakGain-e.startGain)*float64(pos)/float64(e.attackSamples)
	}

	decaySamples := e.totalSamples - e.attackSamples
	if decaySamples <= 0 || e.peakGain <= 0 {
		return e.peakGain
	}
	frac := float64(pos-e.attackSamples) / float64(decaySamples)
	return e.peakGain * math.Pow(e.endGain/e.peakGain, frac)
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := e.totalSamples - e.position
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gainAt(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume
// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateTickSound generates the quiet click played on each slice boundary
func CreateTickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constant.TickSoundFrequency, constant.TickSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constant.TickSoundDuration, 0,
		constant.TickSoundGain, constant.TickSoundGain, constant.TickSoundFloor, rate)

	return newVolume(shaped, cfg.Volume(core.SoundTick))
}

// CreateFanfareSound generates the ascending four-note flourish played on landing
func CreateFanfareSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(constant.FanfareNotes))
	for i, freq := range constant.FanfareNotes {
		osc := NewOscillator(freq, constant.FanfareNoteDuration, WaveTriangle, rate)
		shaped := NewEnvelope(osc, constant.FanfareNoteDuration, constant.FanfareNoteAttack,
			0, constant.FanfarePeakGain, constant.FanfareFloorGain, rate)

		// Stagger each note behind its predecessor
		delay := rate.N(time.Duration(i) * constant.FanfareNoteStagger)
		notes = append(notes, beep.Seq(beep.Silence(delay), shaped))
	}

	return newVolume(beep.Mix(notes...), cfg.Volume(core.SoundFanfare))
}

// FanfareDuration is the total length of the fanfare
func FanfareDuration() time.Duration {
	last := len(constant.FanfareNotes) - 1
	return time.Duration(last)*constant.FanfareNoteStagger + constant.FanfareNoteDuration
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(st core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case core.SoundTick:
		return CreateTickSound(cfg)
	case core.SoundFanfare:
		return CreateFanfareSound(cfg)
	default:
		return nil
	}
}
