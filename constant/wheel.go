package constant

import "time"

// Spin Geometry
const (
	// FullTurn is one revolution in degrees
	FullTurn = 360.0

	// MinExtraTurns and MaxExtraTurns bound the whole revolutions added per spin (inclusive)
	MinExtraTurns = 5
	MaxExtraTurns = 9
)

// Spin Timing
const (
	// SpinDuration is the fixed time from trigger to result
	SpinDuration = 5000 * time.Millisecond

	// TickSampleInterval is the cadence at which the animation is sampled for tick detection
	TickSampleInterval = 16 * time.Millisecond

	// ResultFadeDuration is the fade-in of the result panel after a spin lands
	ResultFadeDuration = 500 * time.Millisecond
)

// Wheel Decoration
const (
	// BulbCount is the number of light bulbs around the rim
	BulbCount = 16

	// BulbPulseInterval toggles bulb brightness while spinning
	BulbPulseInterval = 250 * time.Millisecond
)
