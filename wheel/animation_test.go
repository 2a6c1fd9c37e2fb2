package wheel

import (
	"math"
	"testing"
	"time"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.5, 0.875}, {1, 1}, {2, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("EaseOutCubic(%f) = %f, expected %f", tt.in, got, tt.want)
		}
	}
}

func TestAnimationInterpolation(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	plan := Plan{Start: 100, Target: 2100}
	a := NewAnimation(plan, 360.0/27, 5*time.Second, start)

	if got := a.RotationAt(start); got != 100 {
		t.Errorf("Expected start rotation 100, got %f", got)
	}
	if got := a.RotationAt(start.Add(2500 * time.Millisecond)); math.Abs(got-(100+2000*0.875)) > 1e-9 {
		t.Errorf("Expected eased midpoint, got %f", got)
	}
	if got := a.RotationAt(start.Add(time.Hour)); got != 2100 {
		t.Errorf("Expected clamp at target, got %f", got)
	}
	if p := a.Progress(start.Add(-time.Second)); p != 0 {
		t.Errorf("Expected progress clamped to 0, got %f", p)
	}
}

func TestAnimationCrossings(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	w := 10.0
	plan := Plan{Start: 5, Target: 35}
	a := NewAnimation(plan, w, time.Second, start)

	// Same slice as start: no crossing
	if s := a.Step(start); s.Crossed {
		t.Error("No crossing expected at start")
	}

	prev := 5.0
	crossings := 0
	for ms := 16; ms <= 1008; ms += 16 {
		s := a.Step(start.Add(time.Duration(ms) * time.Millisecond))
		if s.Rotation < prev {
			t.Fatalf("Rotation decreased at %dms", ms)
		}
		if s.Crossed {
			crossings++
		}
		prev = s.Rotation
	}

	// 5 -> 35 passes the 10, 20 and 30 boundaries
	if crossings < 1 || crossings > 3 {
		t.Errorf("Expected between 1 and 3 crossings, got %d", crossings)
	}

	// Repeated sampling at rest never re-fires
	end := start.Add(2 * time.Second)
	a.Step(end)
	if s := a.Step(end); s.Crossed {
		t.Error("Crossing fired twice for the same slice")
	}
}

func TestAnimationZeroDuration(t *testing.T) {
	start := time.Now()
	a := NewAnimation(Plan{Start: 0, Target: 90}, 10, 0, start)
	if s := a.Step(start); s.Progress != 1 || s.Rotation != 90 {
		t.Errorf("Zero duration should jump to target, got %+v", s)
	}
}
