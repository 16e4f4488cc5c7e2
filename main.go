// charlotte works with dashboard colour themes and declarative table data.
//
// Usage:
//
//	charlotte [command] [flags]
//
// Commands:
//
//	version                       Print build information
//	theme list                    List registered themes
//	theme show [name]             Preview a theme's colours in the terminal
//	theme export [name]           Export a theme as a stylesheet or TOML file
//	color info <hex>...           Print channels, HSL and 256-colour index
//	color lightness <hex> <l>...  Print lightness variants of a colour
//	table build <file>            Resolve a YAML table definition
//
// Global flags:
//
//	--config string   Path to configuration file (default: ~/.config/charlotte/config.toml)
//	--theme string    Active theme (overrides config and CHARLOTTE_THEME)
//	--color string    Colour output: auto, always or never
//	--verbose         Enable debug logging
package main

import (
	"fmt"
	"os"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
