package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode is the user's colour preference.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode accepts auto, always or never in any case. The empty string is
// auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeAlways, ModeNever:
		return m, nil
	}
	return "", fmt.Errorf("terminal: unknown colour mode %q", s)
}

// Profile returns the colour profile to render with when writing to w.
//
// ModeNever is always ASCII. ModeAuto is ASCII unless w is a terminal.
// Otherwise termenv's environment profile is used, upgraded to true colour
// when the emulator is known to support it, and ModeAlways never goes below
// ANSI.
func Profile(mode Mode, w io.Writer) termenv.Profile {
	if mode == ModeNever {
		return termenv.Ascii
	}
	f, isFile := w.(*os.File)
	tty := isFile && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	if mode != ModeAlways && !tty {
		return termenv.Ascii
	}

	p := termenv.TrueColor
	if isFile {
		p = termenv.NewOutput(f).EnvColorProfile()
	}
	if p != termenv.TrueColor && Detect().TrueColor() && os.Getenv("NO_COLOR") == "" {
		p = termenv.TrueColor
	}
	if mode == ModeAlways && p == termenv.Ascii {
		p = termenv.ANSI
	}
	return p
}

// ProfileName returns a lowercase name for p.
func ProfileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	}
	return "ascii"
}
