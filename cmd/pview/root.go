package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	paletteDir  string
	extension   string
	theme       string
	strict      bool
	watch       bool
	onLoadError string
	logLevel    string
	logFile     string
	verbose     bool
}

func newRootCmd(app *appContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pview [palette files or directories...]",
		Short:         "pview shows color palettes as a grid of swatches",
		Long:          "pview lays out palette files of RRGGBB colors as the largest square swatches that fit the window.\nWith no subcommand it opens the interactive viewer.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		Annotations:   map[string]string{ownsTerminal: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, app, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (default: user config dir)")
	pf.StringVarP(&flags.paletteDir, "dir", "d", "", "Directory scanned for palettes when no paths are given")
	pf.StringVar(&flags.extension, "ext", "", "Palette file extension")
	pf.StringVar(&flags.theme, "theme", "", "Initial theme: light or dark")
	pf.BoolVar(&flags.strict, "strict", false, "Fail on malformed color tokens instead of skipping them")
	pf.BoolVarP(&flags.watch, "watch", "w", false, "Reload the palette on screen when its file changes")
	pf.StringVar(&flags.onLoadError, "on-load-error", "", "Navigation load failure policy: fatal or keep")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn or error")
	pf.StringVar(&flags.logFile, "log-file", "", "Append logs to this file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newLayoutCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newSyncCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
