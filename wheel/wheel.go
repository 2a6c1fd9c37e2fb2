// Package wheel implements the spin lifecycle: outcome selection, eased
// rotation sampling with tick cues, and the idle/spinning state machine.
package wheel

import (
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/excuse-wheel/audio"
	"github.com/lixenwraith/excuse-wheel/constant"
	"github.com/lixenwraith/excuse-wheel/content"
	"github.com/lixenwraith/excuse-wheel/core"
	"github.com/lixenwraith/excuse-wheel/engine"
	"github.com/lixenwraith/excuse-wheel/status"
)

// Snapshot is a copy of wheel state for rendering
type Snapshot struct {
	Rotation        float64          // Committed rotation, jumps to the target when a spin starts
	DisplayRotation float64          // Animated rotation to draw
	Spinning        bool             // A spin is in flight
	Selected        *content.Outcome // Nil until the first spin lands and while spinning
	ShowResult      bool             // Result panel visible
	ResultAt        time.Time        // When ShowResult became true
	Spins           int              // Completed spins
}

// Options configures a Wheel; zero durations fall back to the constant package
type Options struct {
	Catalog      *content.Catalog
	Rand         *rand.Rand
	Scheduler    engine.Scheduler
	Clock        engine.Clock
	Player       audio.Player     // Optional
	Metrics      *status.Registry // Optional
	Duration     time.Duration
	TickInterval time.Duration
}

// Wheel owns spin state; safe for concurrent use by scheduler callbacks and the render loop
type Wheel struct {
	mu sync.Mutex

	catalog  *content.Catalog
	selector *Selector
	sched    engine.Scheduler
	clock    engine.Clock
	player   audio.Player

	duration     time.Duration
	tickInterval time.Duration

	// State
	rotation   float64
	display    float64
	spinning   bool
	selected   *content.Outcome
	showResult bool
	resultAt   time.Time
	spins      int

	// In-flight spin
	closed   bool
	spinID   uint64
	plan     Plan
	anim     *Animation
	sampler  *engine.Task
	finisher *engine.Task

	// Cached metric pointers
	statSpins    *atomic.Int64
	statTicks    *atomic.Int64
	statIndex    *atomic.Int64
	statSpinning *atomic.Bool
	statTarget   *status.AtomicFloat
}

// New creates an idle wheel at rotation 0
func New(opts Options) *Wheel {
	if opts.Catalog == nil {
		opts.Catalog = content.Default()
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(0)
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = engine.NewRealScheduler()
	}
	if opts.Duration <= 0 {
		opts.Duration = constant.SpinDuration
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = constant.TickSampleInterval
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}

	return &Wheel{
		catalog:      opts.Catalog,
		selector:     NewSelector(opts.Rand, opts.Catalog.Len()),
		sched:        opts.Scheduler,
		clock:        opts.Clock,
		player:       opts.Player,
		duration:     opts.Duration,
		tickInterval: opts.TickInterval,
		statSpins:    opts.Metrics.Ints.Get("wheel.spins"),
		statTicks:    opts.Metrics.Ints.Get("wheel.ticks"),
		statIndex:    opts.Metrics.Ints.Get("wheel.index"),
		statSpinning: opts.Metrics.Bools.Get("wheel.spinning"),
		statTarget:   opts.Metrics.Floats.Get("wheel.target"),
	}
}

// Catalog returns the outcome catalog
func (w *Wheel) Catalog() *content.Catalog {
	return w.catalog
}

// Spin starts a spin and returns true, or returns false without changing anything if one is in flight
func (w *Wheel) Spin() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.spinning || w.closed {
		return false
	}

	plan := w.selector.Plan(w.rotation)

	w.spinning = true
	w.showResult = false
	w.selected = nil
	w.rotation = plan.Target
	w.display = plan.Start
	w.plan = plan
	w.anim = NewAnimation(plan, w.catalog.SliceWidth(), w.duration, w.clock.Now())

	w.spinID++
	id := w.spinID
	w.sampler = w.sched.Every(w.tickInterval, func(now time.Time) bool {
		return w.sample(id, now)
	})
	w.finisher = w.sched.After(w.duration, func(now time.Time) {
		w.finish(id, now)
	})

	w.statSpinning.Store(true)
	w.statTarget.Set(plan.Target)
	log.Printf("Spin %d: %d turns + %.2f deg, target %.2f, index %d", id, plan.ExtraTurns, plan.Offset, plan.Target, plan.Index)
	return true
}

// sample advances the animation, returns false once the spin is over
func (w *Wheel) sample(id uint64, now time.Time) bool {
	w.mu.Lock()
	if id != w.spinID || !w.spinning {
		w.mu.Unlock()
		return false
	}

	s := w.anim.Step(now)
	w.display = s.Rotation
	if s.Crossed {
		w.statTicks.Add(1)
	}
	w.mu.Unlock()

	// Cues play outside the lock; the first one may block on speaker init
	if s.Crossed {
		w.play(core.SoundTick)
	}
	return s.Progress < 1
}

// finish lands the spin on the outcome chosen at plan time
func (w *Wheel) finish(id uint64, now time.Time) {
	w.mu.Lock()
	if id != w.spinID || !w.spinning {
		w.mu.Unlock()
		return
	}

	// Final sample at full progress so the last boundary is heard before idle
	lastTick := w.anim.Step(now).Crossed
	if lastTick {
		w.statTicks.Add(1)
	}
	w.sampler.Cancel()

	outcome := w.catalog.Outcome(w.plan.Index)
	w.display = w.plan.Target
	w.spinning = false
	w.selected = &outcome
	w.showResult = true
	w.resultAt = now
	w.spins++

	w.statSpins.Add(1)
	w.statIndex.Store(int64(outcome.Index))
	w.statSpinning.Store(false)
	w.mu.Unlock()

	if lastTick {
		w.play(core.SoundTick)
	}
	w.play(core.SoundFanfare)
	log.Printf("Spin %d landed on %d: %s", id, outcome.Index, outcome.Text)
}

// play hands a cue to the player; caller must not hold w.mu
func (w *Wheel) play(st core.SoundType) {
	if w.player != nil {
		w.player.Play(st)
	}
}

// Snapshot returns a copy of the current state
func (w *Wheel) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := Snapshot{
		Rotation:        w.rotation,
		DisplayRotation: w.display,
		Spinning:        w.spinning,
		ShowResult:      w.showResult,
		ResultAt:        w.resultAt,
		Spins:           w.spins,
	}
	if w.selected != nil {
		sel := *w.selected
		s.Selected = &sel
	}
	return s
}

// LastPlan returns the plan of the most recent spin
func (w *Wheel) LastPlan() Plan {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.plan
}

// Close cancels outstanding tasks on shutdown; the wheel is unusable afterwards
func (w *Wheel) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.sampler != nil {
		w.sampler.Cancel()
	}
	if w.finisher != nil {
		w.finisher.Cancel()
	}
	// Orphan any callbacks already waiting on the lock
	w.spinID++
	w.closed = true
}
