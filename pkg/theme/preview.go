package theme

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Preview renders one line per colour of t: a swatch, the colour name and
// its hex value, coloured for the given terminal profile.
func Preview(t Theme, profile termenv.Profile) string {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	names := t.ColorNames()
	width := 0
	for _, name := range names {
		width = max(width, lipgloss.Width(name))
	}

	title := r.NewStyle().Bold(true).Render(t.Name)
	label := r.NewStyle().Width(width + 2)

	lines := make([]string, 0, len(names)+1)
	lines = append(lines, title)
	for _, name := range names {
		c := t.Colors[name]
		tc := AdaptColor(c, profile)
		swatch := r.NewStyle().Background(tc).Render("    ")
		text := r.NewStyle().Foreground(tc).Render(c.String())
		lines = append(lines, swatch+" "+label.Render(name)+text)
	}
	return strings.Join(lines, "\n")
}
