package theme

import (
	"fmt"
	"strings"
)

// Default lightness of the hover and disabled background shades.
const (
	DefaultHoverLightness    = 0.65
	DefaultDisabledLightness = 0.85
)

// StylesheetOptions sets the lightness of derived shades. A nil field uses
// the default; a non-nil zero is black.
type StylesheetOptions struct {
	HoverLightness    *float64
	DisabledLightness *float64
}

func (o StylesheetOptions) lightness() (hover, disabled float64) {
	hover, disabled = DefaultHoverLightness, DefaultDisabledLightness
	if o.HoverLightness != nil {
		hover = *o.HoverLightness
	}
	if o.DisabledLightness != nil {
		disabled = *o.DisabledLightness
	}
	return hover, disabled
}

// Stylesheet renders t as CSS: one custom property per colour under :root,
// then text, background and border utility classes and the hover and
// disabled background shades of each colour.
func Stylesheet(t Theme, opts StylesheetOptions) (string, error) {
	hoverL, disabledL := opts.lightness()
	names := t.ColorNames()

	var b strings.Builder
	fmt.Fprintf(&b, "/* %s */\n:root {\n", t.Name)
	for _, name := range names {
		fmt.Fprintf(&b, "  --%s: %s;\n", name, t.Colors[name])
	}
	b.WriteString("}\n")

	for _, name := range names {
		c := t.Colors[name]
		hover, err := c.WithLightness(hoverL)
		if err != nil {
			return "", fmt.Errorf("theme: hover shade of %q: %w", name, err)
		}
		disabled, err := c.WithLightness(disabledL)
		if err != nil {
			return "", fmt.Errorf("theme: disabled shade of %q: %w", name, err)
		}

		fmt.Fprintf(&b, "\n.%s { color: var(--%s); }\n", name, name)
		fmt.Fprintf(&b, ".bg-%s { background-color: var(--%s); }\n", name, name)
		fmt.Fprintf(&b, ".border-%s { border-color: var(--%s); }\n", name, name)
		fmt.Fprintf(&b, ".bg-%s:hover { background-color: %s; }\n", name, hover)
		fmt.Fprintf(&b, ".bg-%s:disabled { background-color: %s; }\n", name, disabled)
	}
	return b.String(), nil
}
