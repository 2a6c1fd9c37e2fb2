package content

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// MaxExcuseLength caps a single excuse in runes so the result panel stays bounded
const MaxExcuseLength = 200

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// catalogFile is the on-disk YAML shape
//
//	excuses:
//	  - "My cat is sitting on my keyboard."
//	palette:
//	  - {h: 0, s: 75, l: 50}
type catalogFile struct {
	Excuses []string `yaml:"excuses"`
	Palette []HSL    `yaml:"palette"`
}

// Load reads a YAML catalog file; an empty path returns the default catalog
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	log.Printf("Loaded %d excuse(s) from %s", c.Len(), path)
	return c, nil
}

// Parse decodes catalog YAML
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return NewCatalog(f.Excuses, f.Palette)
}

// SanitizeLine strips ANSI sequences and control characters, converts tabs to
// spaces, trims, and truncates to MaxExcuseLength runes
func SanitizeLine(line string) string {
	line = ansiPattern.ReplaceAllString(line, "")

	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(' ')
		case unicode.IsControl(r):
			// Dropped
		default:
			b.WriteRune(r)
		}
	}

	clean := strings.TrimSpace(b.String())
	if runes := []rune(clean); len(runes) > MaxExcuseLength {
		clean = strings.TrimSpace(string(runes[:MaxExcuseLength]))
	}
	return clean
}
