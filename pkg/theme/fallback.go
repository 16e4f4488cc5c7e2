package theme

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/charlotte/pkg/color"
)

// Adapt maps every colour in t to a lipgloss colour the given terminal
// profile can display: hex for true colour, 256-colour indices, the nearest
// of the 16 ANSI colours, or no colour at all for ASCII terminals.
func Adapt(t Theme, profile termenv.Profile) map[string]lipgloss.TerminalColor {
	out := make(map[string]lipgloss.TerminalColor, len(t.Colors))
	for name, c := range t.Colors {
		out[name] = AdaptColor(c, profile)
	}
	return out
}

// AdaptColor is Adapt for a single colour.
func AdaptColor(c color.Color, profile termenv.Profile) lipgloss.TerminalColor {
	switch profile {
	case termenv.TrueColor:
		return lipgloss.Color(c.String())
	case termenv.ANSI256:
		return lipgloss.Color(strconv.Itoa(Ansi256(c)))
	case termenv.ANSI:
		if ac, ok := termenv.ANSI.Color(c.String()).(termenv.ANSIColor); ok {
			return lipgloss.Color(strconv.Itoa(int(ac)))
		}
	}
	return lipgloss.NoColor{}
}

// Ansi256 returns the nearest 256-colour palette index to c, choosing
// between the 6x6x6 cube (16-231) and the grayscale ramp (232-255).
func Ansi256(c color.Color) int {
	r, g, b := c.RGB()

	cubeIdx := thNearestCubeIndex(r, g, b)
	grayIdx := thNearestGray(r, g, b)

	idx := cubeIdx
	if thGrayDistance(r, g, b, grayIdx) < thCubeDistance(r, g, b, cubeIdx) {
		idx = grayIdx
	}
	return idx
}

var thCubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

func thNearestCubeIndex(r, g, b uint8) int {
	return 16 + 36*thNearestCubeComponent(r) + 6*thNearestCubeComponent(g) + thNearestCubeComponent(b)
}

// thNearestCubeComponent maps a channel to the nearest cube level (0-5).
func thNearestCubeComponent(v uint8) int {
	best := 0
	bestDist := math.MaxInt32
	for i, lv := range thCubeLevels {
		d := int(v) - int(lv)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// thNearestGray finds the nearest step of the 24-step ramp, whose values
// are 8, 18, ..., 238.
func thNearestGray(r, g, b uint8) int {
	gray := (int(r) + int(g) + int(b)) / 3
	idx := (gray - 8 + 5) / 10
	if gray < 8 {
		idx = 0
	}
	if idx > 23 {
		idx = 23
	}
	return 232 + idx
}

func thCubeDistance(r, g, b uint8, cubeIdx int) float64 {
	i := cubeIdx - 16
	return thColorDistance(r, g, b, thCubeLevels[i/36], thCubeLevels[(i%36)/6], thCubeLevels[i%6])
}

func thGrayDistance(r, g, b uint8, grayIdx int) float64 {
	gv := uint8(8 + (grayIdx-232)*10)
	return thColorDistance(r, g, b, gv, gv, gv)
}

func thColorDistance(r1, g1, b1, r2, g2, b2 uint8) float64 {
	dr := float64(r1) - float64(r2)
	dg := float64(g1) - float64(g2)
	db := float64(b1) - float64(b2)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
