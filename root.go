package main

import (
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/charlotte/pkg/config"
	"gitlab.com/tinyland/lab/charlotte/pkg/logger"
	"gitlab.com/tinyland/lab/charlotte/pkg/terminal"
	"gitlab.com/tinyland/lab/charlotte/pkg/theme"
)

// skipSetup marks commands that run without loading configuration.
const skipSetup = "charlotte/skip-setup"

type rootFlags struct {
	configPath string
	themeName  string
	color      string
	verbose    bool
}

// app bundles the state every subcommand shares once setup has run.
type app struct {
	flags   rootFlags
	cfg     *config.Config
	log     *logger.Logger
	profile termenv.Profile
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Nop()}

	cmd := &cobra.Command{
		Use:           "charlotte",
		Short:         "Dashboard colour themes and declarative table data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] != "" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.flags.configPath, "config", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&a.flags.themeName, "theme", "", "Active theme (overrides config)")
	cmd.PersistentFlags().StringVar(&a.flags.color, "color", "", "Colour output: auto, always or never")
	cmd.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable debug logging")

	version := newVersionCmd()
	version.Annotations = map[string]string{skipSetup: "true"}

	cmd.AddCommand(version)
	cmd.AddCommand(newThemeCmd(a))
	cmd.AddCommand(newColorCmd(a))
	cmd.AddCommand(newTableCmd(a))
	cmd.AddCommand(newDrawerCmd(a))

	return cmd
}

// setup loads configuration, applies flag overrides, builds the logger and
// registers extra themes.
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if a.flags.configPath != "" {
		cfg, err = config.LoadFromFile(a.flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return newCommandError("load configuration", "reading config.toml", err, "Fix the reported key or remove it to use the default.")
	}

	if a.flags.themeName != "" {
		cfg.Theme.Name = a.flags.themeName
	}
	if a.flags.color != "" {
		cfg.Output.Color = a.flags.color
	}
	if a.flags.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return newCommandError("load configuration", "applying command line flags", err, "")
	}
	a.cfg = cfg

	mode, err := terminal.ParseMode(cfg.Output.Color)
	if err != nil {
		return newCommandError("load configuration", "reading output.color", err, "Use auto, always or never.")
	}
	a.profile = terminal.Profile(mode, cmd.OutOrStdout())

	log, err := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		NoColor: terminal.Profile(mode, cmd.ErrOrStderr()) == termenv.Ascii,
		Writer:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return newCommandError("configure logging", "creating logger", err, "")
	}
	a.log = log.With("command", cmd.Name())

	for _, path := range cfg.Theme.Files {
		t, err := theme.LoadFile(path)
		if err != nil {
			a.log.With("file", path).Error(err, "skipping theme file")
			continue
		}
		if err := theme.Register(t); err != nil {
			a.log.With("file", path).Error(err, "skipping theme file")
			continue
		}
		a.log.With("theme", t.Name).Debug("registered theme file")
	}

	if err := theme.SetCurrent(cfg.Theme.Name); err != nil {
		return newCommandError("select theme", cfg.Theme.Name, err, "Run 'charlotte theme list' to view available themes.")
	}
	a.log.WithFields(map[string]any{"theme": cfg.Theme.Name, "profile": terminal.ProfileName(a.profile), "emulator": terminal.Detect().String()}).Debug("configuration loaded")
	return nil
}
