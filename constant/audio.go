package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Tick Sound: short sine click per slice boundary
const (
	TickSoundFrequency = 1200.0
	TickSoundDuration  = 20 * time.Millisecond
	TickSoundGain      = 0.03
	TickSoundFloor     = 0.001
)

// Fanfare Sound: major triad plus octave (C5 E5 G5 C6)
const (
	FanfareNoteStagger  = 150 * time.Millisecond
	FanfareNoteDuration = 400 * time.Millisecond
	FanfareNoteAttack   = 50 * time.Millisecond
	FanfarePeakGain     = 0.2
	FanfareFloorGain    = 0.01
)

// FanfareNotes are the note frequencies in Hz, played in order
var FanfareNotes = [4]float64{523.25, 659.25, 783.99, 1046.5}
