// Package terminal decides how much colour a writer can take. It combines
// the user's colour mode, TTY detection, termenv's environment probing and a
// table of emulators known to render 24-bit colour.
package terminal

import (
	"os"
	"strings"
)

// Emulator identifies the terminal emulator in use.
type Emulator int

const (
	EmulatorUnknown Emulator = iota
	EmulatorGhostty
	EmulatorKitty
	EmulatorWezTerm
	EmulatorITerm2
	EmulatorAlacritty
	EmulatorVTE // GNOME Terminal, Tilix and other VTE-based terminals
	EmulatorVSCode
	EmulatorTmux
	EmulatorScreen
	EmulatorEmacs
)

var emulatorNames = [...]string{
	EmulatorUnknown:   "unknown",
	EmulatorGhostty:   "ghostty",
	EmulatorKitty:     "kitty",
	EmulatorWezTerm:   "wezterm",
	EmulatorITerm2:    "iterm2",
	EmulatorAlacritty: "alacritty",
	EmulatorVTE:       "vte",
	EmulatorVSCode:    "vscode",
	EmulatorTmux:      "tmux",
	EmulatorScreen:    "screen",
	EmulatorEmacs:     "emacs",
}

func (e Emulator) String() string {
	if int(e) >= 0 && int(e) < len(emulatorNames) {
		return emulatorNames[e]
	}
	return "unknown"
}

// TrueColor reports whether the emulator renders 24-bit colour.
func (e Emulator) TrueColor() bool {
	switch e {
	case EmulatorGhostty, EmulatorKitty, EmulatorWezTerm, EmulatorITerm2,
		EmulatorAlacritty, EmulatorVTE, EmulatorVSCode:
		return true
	}
	return false
}

// Detect identifies the emulator from environment variables, most reliable
// signal first: TERM_PROGRAM, then TERM, then emulator-specific variables,
// then multiplexers.
func Detect() Emulator {
	switch strings.ToLower(os.Getenv("TERM_PROGRAM")) {
	case "ghostty":
		return EmulatorGhostty
	case "kitty":
		return EmulatorKitty
	case "wezterm":
		return EmulatorWezTerm
	case "iterm.app":
		return EmulatorITerm2
	case "vscode":
		return EmulatorVSCode
	case "alacritty":
		return EmulatorAlacritty
	}

	term := os.Getenv("TERM")
	switch {
	case term == "xterm-ghostty":
		return EmulatorGhostty
	case term == "xterm-kitty":
		return EmulatorKitty
	case strings.HasPrefix(term, "alacritty"):
		return EmulatorAlacritty
	}

	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "":
		return EmulatorKitty
	case os.Getenv("WEZTERM_EXECUTABLE") != "":
		return EmulatorWezTerm
	case os.Getenv("ITERM_SESSION_ID") != "", os.Getenv("LC_TERMINAL") == "iTerm2":
		return EmulatorITerm2
	case os.Getenv("VTE_VERSION") != "":
		return EmulatorVTE
	case os.Getenv("INSIDE_EMACS") != "":
		return EmulatorEmacs
	case os.Getenv("TMUX") != "":
		return EmulatorTmux
	case os.Getenv("STY") != "":
		return EmulatorScreen
	}
	return EmulatorUnknown
}
