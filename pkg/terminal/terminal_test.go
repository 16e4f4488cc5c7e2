package terminal

import (
	"bytes"
	"os"
	"testing"

	"github.com/muesli/termenv"
)

// termEnvVars lists all environment variables inspected during detection.
var termEnvVars = []string{
	"TERM_PROGRAM", "TERM", "COLORTERM", "NO_COLOR",
	"KITTY_WINDOW_ID", "ITERM_SESSION_ID", "WEZTERM_EXECUTABLE",
	"VTE_VERSION", "LC_TERMINAL", "INSIDE_EMACS", "TMUX", "STY",
}

// clearTermEnv unsets all terminal-related env vars for test isolation.
func clearTermEnv(t *testing.T) {
	t.Helper()
	for _, v := range termEnvVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// --- Detect ---

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Emulator
	}{
		{"nothing", nil, EmulatorUnknown},
		{"ghostty program", map[string]string{"TERM_PROGRAM": "ghostty"}, EmulatorGhostty},
		{"ghostty term", map[string]string{"TERM": "xterm-ghostty"}, EmulatorGhostty},
		{"kitty window", map[string]string{"KITTY_WINDOW_ID": "1"}, EmulatorKitty},
		{"iterm program", map[string]string{"TERM_PROGRAM": "iTerm.app"}, EmulatorITerm2},
		{"iterm over ssh", map[string]string{"LC_TERMINAL": "iTerm2"}, EmulatorITerm2},
		{"alacritty term", map[string]string{"TERM": "alacritty-direct"}, EmulatorAlacritty},
		{"vte", map[string]string{"VTE_VERSION": "7200"}, EmulatorVTE},
		{"vscode", map[string]string{"TERM_PROGRAM": "vscode"}, EmulatorVSCode},
		{"emacs", map[string]string{"INSIDE_EMACS": "29.1,eat"}, EmulatorEmacs},
		{"tmux", map[string]string{"TMUX": "/tmp/tmux-501/default,1,0"}, EmulatorTmux},
		{"screen", map[string]string{"STY": "1.pts-0.host", "TERM": "screen-256color"}, EmulatorScreen},
		{"program beats multiplexer", map[string]string{"TERM_PROGRAM": "WezTerm", "TMUX": "x"}, EmulatorWezTerm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTermEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := Detect(); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmulatorTrueColor(t *testing.T) {
	for _, e := range []Emulator{EmulatorGhostty, EmulatorKitty, EmulatorITerm2, EmulatorVTE} {
		if !e.TrueColor() {
			t.Errorf("%v.TrueColor() = false", e)
		}
	}
	for _, e := range []Emulator{EmulatorUnknown, EmulatorTmux, EmulatorScreen, EmulatorEmacs} {
		if e.TrueColor() {
			t.Errorf("%v.TrueColor() = true", e)
		}
	}
}

func TestEmulatorString(t *testing.T) {
	if got := EmulatorVTE.String(); got != "vte" {
		t.Errorf("String() = %q", got)
	}
	if got := Emulator(99).String(); got != "unknown" {
		t.Errorf("out of range String() = %q", got)
	}
}

// --- Mode / Profile ---

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"ALWAYS", ModeAlways, false},
		{"never", ModeNever, false},
		{"sometimes", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestProfileNonTerminal(t *testing.T) {
	clearTermEnv(t)
	var buf bytes.Buffer

	if got := Profile(ModeNever, &buf); got != termenv.Ascii {
		t.Errorf("never = %v, want Ascii", ProfileName(got))
	}
	if got := Profile(ModeAuto, &buf); got != termenv.Ascii {
		t.Errorf("auto on a buffer = %v, want Ascii", ProfileName(got))
	}
	if got := Profile(ModeAlways, &buf); got != termenv.TrueColor {
		t.Errorf("always on a buffer = %v, want TrueColor", ProfileName(got))
	}
}

func TestProfileAutoOnRegularFile(t *testing.T) {
	clearTermEnv(t)
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if got := Profile(ModeAuto, f); got != termenv.Ascii {
		t.Errorf("auto on a regular file = %v, want Ascii", ProfileName(got))
	}
	if got := Profile(ModeAlways, f); got == termenv.Ascii {
		t.Error("always on a regular file fell back to Ascii")
	}
}

func TestProfileName(t *testing.T) {
	for p, want := range map[termenv.Profile]string{
		termenv.TrueColor: "truecolor",
		termenv.ANSI256:   "ansi256",
		termenv.ANSI:      "ansi",
		termenv.Ascii:     "ascii",
	} {
		if got := ProfileName(p); got != want {
			t.Errorf("ProfileName(%d) = %q, want %q", p, got, want)
		}
	}
}
