package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pview/internal/catalog"
	"github.com/alexisbeaulieu97/pview/internal/config"
	"github.com/alexisbeaulieu97/pview/internal/logger"
	"github.com/alexisbeaulieu97/pview/internal/palette"
	"github.com/alexisbeaulieu97/pview/internal/session"
)

// ownsTerminal marks commands that draw on the whole screen; their logs
// only go to a file.
const ownsTerminal = "owns-terminal"

// appContext bundles the configuration and logger shared by every command.
type appContext struct {
	cfg        *config.Config
	configPath string
	log        *logger.Logger
}

func (a *appContext) load(cmd *cobra.Command, flags *rootFlags) error {
	cfg, path, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	applyOverrides(cmd, cfg, flags)
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	opts := logger.Options{Level: cfg.Log.Level, HumanReadable: true, Writer: cmd.ErrOrStderr(), File: cfg.Log.File}
	if cmd.Annotations[ownsTerminal] == "true" && opts.File == "" {
		opts.Writer = io.Discard
	}
	log, err := logger.New(opts)
	if err != nil {
		return newCommandError("start", "creating logger", err, "Check log.level and log.file in your configuration.")
	}

	a.cfg = cfg
	a.configPath = path
	a.log = log
	a.log.WithFields(map[string]any{"config": path, "command": cmd.Name()}).Debug("configuration loaded")
	return nil
}

func (a *appContext) close() error {
	return a.log.Close()
}

// applyOverrides copies explicitly set flags over the file values.
func applyOverrides(cmd *cobra.Command, cfg *config.Config, flags *rootFlags) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("dir") {
		cfg.PaletteDir = flags.paletteDir
	}
	if changed("ext") {
		cfg.Extension = flags.extension
	}
	if changed("theme") {
		cfg.Theme = flags.theme
	}
	if changed("strict") {
		cfg.Strict = flags.strict
	}
	if changed("watch") {
		cfg.Watch = flags.watch
	}
	if changed("on-load-error") {
		cfg.OnLoadError = flags.onLoadError
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if changed("log-file") {
		cfg.Log.File = flags.logFile
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
}

func (a *appContext) catalogOptions() catalog.Options {
	return catalog.Options{Dir: a.cfg.PaletteDir, Extension: a.cfg.Extension}
}

// openSession resolves the catalog for args and loads its first palette.
func (a *appContext) openSession(args []string) (*session.Session, error) {
	cat, err := catalog.Resolve(args, a.catalogOptions())
	if err != nil {
		return nil, newCommandError("open palettes", "resolving palette sources", err, "Pass palette files or directories, or set palette_dir in your configuration.")
	}

	theme, err := session.ParseTheme(a.cfg.Theme)
	if err != nil {
		return nil, err
	}

	store := palette.NewStore(palette.ParseOptions{Strict: a.cfg.Strict}, a.log)
	return session.New(cat, store, session.Options{
		Theme:       theme,
		OnLoadError: session.LoadPolicy(a.cfg.OnLoadError),
		Logger:      a.log,
	})
}

// imageSpacing maps the pixel geometry of the configuration onto a frame.
// The footer baseline sits margin pixels above the bottom margin's edge.
func imageSpacing(img config.Image) session.Spacing {
	return session.Spacing{
		Margin:       img.Margin,
		BottomMargin: img.BottomMargin,
		Gutter:       img.Gutter,
		FooterOffset: img.BottomMargin - img.Margin,
		LabelSize:    img.LabelSize,
		FooterSize:   img.FooterSize,
	}
}
