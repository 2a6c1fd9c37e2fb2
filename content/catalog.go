package content

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Sentinel errors
var (
	ErrEmptyCatalog = errors.New("catalog has no excuses")
	ErrBlankExcuse  = errors.New("catalog excuse is blank")
	ErrBadColor     = errors.New("catalog color out of range")
)

// HSL is a palette entry in the hsl(h, s%, l%) notation used for slice colors
// H in degrees [0,360), S and L as percentages [0,100]
type HSL struct {
	H float64 `yaml:"h"`
	S float64 `yaml:"s"`
	L float64 `yaml:"l"`
}

// Color converts to a go-colorful color
func (c HSL) Color() colorful.Color {
	return colorful.Hsl(c.H, c.S/100, c.L/100)
}

func (c HSL) valid() bool {
	return c.H >= 0 && c.H < 360 && c.S >= 0 && c.S <= 100 && c.L >= 0 && c.L <= 100
}

// Outcome is one excuse and the color of its slice
type Outcome struct {
	Index int
	Text  string
	Color colorful.Color
}

// Catalog is the ordered, immutable set of outcomes on the wheel
// Palette is applied cyclically when there are more excuses than colors
type Catalog struct {
	excuses []string
	palette []colorful.Color
}

// NewCatalog validates and copies excuses and palette
// An empty palette falls back to DefaultPalette
func NewCatalog(excuses []string, palette []HSL) (*Catalog, error) {
	if len(excuses) == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	c := &Catalog{
		excuses: make([]string, len(excuses)),
		palette: make([]colorful.Color, len(palette)),
	}
	for i, e := range excuses {
		clean := SanitizeLine(e)
		if clean == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrBlankExcuse, i)
		}
		c.excuses[i] = clean
	}
	for i, p := range palette {
		if !p.valid() {
			return nil, fmt.Errorf("%w: entry %d (%v)", ErrBadColor, i, p)
		}
		c.palette[i] = p.Color()
	}
	return c, nil
}

// Default returns the compiled-in catalog
func Default() *Catalog {
	c, err := NewCatalog(DefaultExcuses, DefaultPalette)
	if err != nil {
		panic(fmt.Sprintf("default catalog invalid: %v", err))
	}
	return c
}

// Len returns the number of outcomes
func (c *Catalog) Len() int {
	return len(c.excuses)
}

// SliceWidth returns the angular span of one slice in degrees
func (c *Catalog) SliceWidth() float64 {
	return 360.0 / float64(len(c.excuses))
}

// Text returns the excuse at index i
func (c *Catalog) Text(i int) string {
	return c.excuses[i]
}

// Color returns the slice color at index i, cycling through the palette
func (c *Catalog) Color(i int) colorful.Color {
	return c.palette[i%len(c.palette)]
}

// Outcome returns the full outcome at index i
func (c *Catalog) Outcome(i int) Outcome {
	return Outcome{Index: i, Text: c.Text(i), Color: c.Color(i)}
}

// Excuses returns a copy of the excuse list
func (c *Catalog) Excuses() []string {
	out := make([]string, len(c.excuses))
	copy(out, c.excuses)
	return out
}
