package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/charlotte/pkg/theme"
)

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List, preview and export colour themes",
	}
	cmd.AddCommand(newThemeListCmd())
	cmd.AddCommand(newThemeShowCmd(a))
	cmd.AddCommand(newThemeExportCmd(a))
	return cmd
}

func newThemeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered themes; the active one is starred",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := theme.Current().Name
			for _, name := range theme.Names() {
				marker := " "
				if name == current {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d colors)\n", marker, name, len(theme.Get(name).Colors))
			}
			return nil
		},
	}
}

func newThemeShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Preview a theme's colours",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveTheme("show theme", args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.Preview(t, a.profile))
			return nil
		},
	}
}

type exportOptions struct {
	format string
	output string
}

func newThemeExportCmd(a *app) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [name]",
		Short: "Export a theme as a CSS stylesheet or a TOML theme file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveTheme("export theme", args)
			if err != nil {
				return err
			}
			return runThemeExport(cmd, a, t, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "css", "Output format: css or toml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runThemeExport(cmd *cobra.Command, a *app, t theme.Theme, opts *exportOptions) error {
	var data []byte
	switch opts.format {
	case "css":
		hover, disabled := a.cfg.Theme.HoverLightness, a.cfg.Theme.DisabledLightness
		css, err := theme.Stylesheet(t, theme.StylesheetOptions{
			HoverLightness:    &hover,
			DisabledLightness: &disabled,
		})
		if err != nil {
			return newCommandError("export theme", t.Name, err, "Check theme.hover_lightness and theme.disabled_lightness.")
		}
		data = []byte(css)
	case "toml":
		b, err := theme.SaveToTOML(t)
		if err != nil {
			return newCommandError("export theme", t.Name, err, "")
		}
		data = b
	default:
		return newCommandError("export theme", t.Name, fmt.Errorf("unknown format %q", opts.format), "Use --format css or --format toml.")
	}

	if err := writeOutput(cmd.OutOrStdout(), opts.output, data); err != nil {
		return newCommandError("export theme", "writing "+opts.output, err, "Check that the directory exists and is writable.")
	}
	a.log.WithFields(map[string]any{"theme": t.Name, "format": opts.format, "bytes": len(data)}).Debug("theme exported")
	return nil
}

// resolveTheme returns the named theme, or the active one when args is empty.
func resolveTheme(operation string, args []string) (theme.Theme, error) {
	if len(args) == 0 {
		return theme.Current(), nil
	}
	t, ok := theme.Lookup(args[0])
	if !ok {
		return theme.Theme{}, newCommandError(operation, fmt.Sprintf("looking up theme %q", args[0]),
			fmt.Errorf("theme %q is not registered", args[0]), "Run 'charlotte theme list' to view available themes.")
	}
	return t, nil
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
