package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundTick    SoundType = iota // Slice boundary click
	SoundFanfare                  // Spin result flourish
	SoundTypeCount
)

// String returns the config key of the sound
func (st SoundType) String() string {
	switch st {
	case SoundTick:
		return "tick"
	case SoundFanfare:
		return "fanfare"
	default:
		return "unknown"
	}
}
