package constant

import "time"

// Render Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize buffers terminal events between the poll goroutine and the loop
	EventChannelSize = 100
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "excuse-wheel.log"
)
