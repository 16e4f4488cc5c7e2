// Package theme provides named colour palettes, a process-wide registry of
// them, and conversions to TOML, stylesheets and terminal colours.
package theme

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/charlotte/pkg/color"
)

// DefaultName is the theme returned when a lookup misses.
const DefaultName = "charlotte-dark"

// ErrInvalidTheme is returned for themes with a bad name or colour set.
var ErrInvalidTheme = errors.New("theme: invalid theme")

// Theme is a named palette. Colour names are lowercase identifiers such as
// "red" or "shade0".
type Theme struct {
	Name   string
	Colors map[string]color.Color
}

// Color returns the named colour.
func (t Theme) Color(name string) (color.Color, bool) {
	c, ok := t.Colors[strings.ToLower(name)]
	return c, ok
}

// ColorNames returns the palette's colour names in display order: names
// without a digit suffix alphabetically, then numbered names by number.
func (t Theme) ColorNames() []string {
	names := make([]string, 0, len(t.Colors))
	for name := range t.Colors {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, ni := splitNumbered(names[i])
		pj, nj := splitNumbered(names[j])
		if (ni < 0) != (nj < 0) {
			return ni < 0
		}
		if pi != pj {
			return pi < pj
		}
		if ni != nj {
			return ni < nj
		}
		return names[i] < names[j]
	})
	return names
}

// splitNumbered splits "shade12" into ("shade", 12). n is -1 when name has
// no numeric suffix.
func splitNumbered(name string) (prefix string, n int) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) || i == 0 {
		return name, -1
	}
	n = 0
	for _, r := range name[i:] {
		n = n*10 + int(r-'0')
	}
	return name[:i], n
}

func (t Theme) clone() Theme {
	return Theme{Name: t.Name, Colors: maps.Clone(t.Colors)}
}

var thIdentRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Validate checks the theme name and every colour name.
func (t Theme) Validate() error {
	if !thIdentRegex.MatchString(t.Name) {
		return fmt.Errorf("%w: name %q must be a lowercase identifier", ErrInvalidTheme, t.Name)
	}
	if len(t.Colors) == 0 {
		return fmt.Errorf("%w: %q has no colors", ErrInvalidTheme, t.Name)
	}
	for name := range t.Colors {
		if !thIdentRegex.MatchString(name) {
			return fmt.Errorf("%w: %q color name %q must be a lowercase identifier", ErrInvalidTheme, t.Name, name)
		}
	}
	return nil
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
	current  string
)

func init() {
	for _, t := range thBuiltins() {
		registry[t.Name] = t
	}
	current = DefaultName
}

// Lookup returns a named theme and whether it is registered.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	if !ok {
		return Theme{}, false
	}
	return t.clone(), true
}

// Get returns a named theme, falling back to DefaultName if not found.
func Get(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	t, _ := Lookup(DefaultName)
	return t
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register validates t and adds it under its name, replacing any theme of
// the same name.
func Register(t Theme) error {
	t.Name = strings.ToLower(t.Name)
	if err := t.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	registry[t.Name] = t.clone()
	return nil
}

// SetCurrent sets the active theme by name. Unknown names are an error and
// leave the active theme unchanged.
func SetCurrent(name string) error {
	name = strings.ToLower(name)
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[name]; !ok {
		return fmt.Errorf("theme: unknown theme %q", name)
	}
	current = name
	return nil
}

// Current returns the active theme.
func Current() Theme {
	mu.RLock()
	name := current
	mu.RUnlock()
	return Get(name)
}
