package wheel

import (
	"math"
	"time"
)

// EaseOutCubic maps linear progress to 1 - (1 - p)^3, clamping p to [0, 1]
func EaseOutCubic(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	inv := 1 - p
	return 1 - inv*inv*inv
}

// Sample is one animation step
type Sample struct {
	Progress float64 // Linear progress in [0, 1]
	Rotation float64 // Eased rotation in degrees
	Crossed  bool    // Entered a new slice since the previous sample
}

// Animation interpolates rotation for one spin and tracks slice crossings for tick timing
type Animation struct {
	start      float64
	target     float64
	sliceWidth float64
	duration   time.Duration
	startedAt  time.Time
	lastSlice  int64
}

// NewAnimation starts an animation from plan.Start to plan.Target at startedAt
func NewAnimation(plan Plan, sliceWidth float64, duration time.Duration, startedAt time.Time) *Animation {
	return &Animation{
		start:      plan.Start,
		target:     plan.Target,
		sliceWidth: sliceWidth,
		duration:   duration,
		startedAt:  startedAt,
		lastSlice:  sliceOf(plan.Start, sliceWidth),
	}
}

// sliceOf counts slice boundaries passed in absolute rotation
func sliceOf(rotation, width float64) int64 {
	return int64(math.Floor(rotation / width))
}

// Progress returns linear progress at now, clamped to [0, 1]
func (a *Animation) Progress(now time.Time) float64 {
	if a.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(a.startedAt)) / float64(a.duration)
	return math.Max(0, math.Min(1, p))
}

// RotationAt returns the eased rotation at now without advancing crossing state
func (a *Animation) RotationAt(now time.Time) float64 {
	return a.start + (a.target-a.start)*EaseOutCubic(a.Progress(now))
}

// Step samples the animation at now and records the slice it is in
// At most one crossing is reported per step regardless of how many boundaries were passed
func (a *Animation) Step(now time.Time) Sample {
	p := a.Progress(now)
	rot := a.start + (a.target-a.start)*EaseOutCubic(p)

	slice := sliceOf(rot, a.sliceWidth)
	crossed := slice != a.lastSlice
	if crossed {
		a.lastSlice = slice
	}

	return Sample{Progress: p, Rotation: rot, Crossed: crossed}
}

// Target returns the landing rotation
func (a *Animation) Target() float64 {
	return a.target
}
