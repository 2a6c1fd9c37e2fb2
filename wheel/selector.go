package wheel

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/excuse-wheel/constant"
)

// Normalize maps an angle in degrees into [0, 360)
func Normalize(deg float64) float64 {
	n := math.Mod(deg, constant.FullTurn)
	if n < 0 {
		n += constant.FullTurn
	}
	return n
}

// SliceIndex returns the slice under the pointer for a wheel rotated clockwise by rotation degrees
// Slice 0 is centred on the pointer at rotation 0 and slices are laid out clockwise
func SliceIndex(rotation float64, count int) int {
	width := constant.FullTurn / float64(count)
	pos := math.Mod(constant.FullTurn-Normalize(rotation)+width/2, constant.FullTurn)
	idx := int(math.Floor(pos / width))

	// Float error at the 360 boundary
	if idx >= count {
		idx = count - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Plan is the precomputed result of one spin
type Plan struct {
	Start      float64 // Rotation when the spin began
	Target     float64 // Rotation when the spin lands
	ExtraTurns int
	Offset     float64 // Fractional landing offset in [0, 360)
	Index      int     // Outcome under the pointer at Target
}

// Selector draws random spin plans
type Selector struct {
	rng   *rand.Rand
	count int
}

// NewSelector creates a selector over count outcomes
func NewSelector(rng *rand.Rand, count int) *Selector {
	return &Selector{rng: rng, count: count}
}

// NewRand returns a seeded generator; seed 0 uses the current time
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Plan picks extra turns in [MinExtraTurns, MaxExtraTurns] and an offset in [0, 360)
// The landing index is fixed here and never re-derived from animation samples
func (s *Selector) Plan(current float64) Plan {
	turns := constant.MinExtraTurns + s.rng.Intn(constant.MaxExtraTurns-constant.MinExtraTurns+1)
	offset := s.rng.Float64() * constant.FullTurn
	target := current + float64(turns)*constant.FullTurn + offset

	return Plan{
		Start:      current,
		Target:     target,
		ExtraTurns: turns,
		Offset:     offset,
		Index:      SliceIndex(target, s.count),
	}
}
