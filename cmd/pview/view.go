package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pview/internal/session"
	"github.com/alexisbeaulieu97/pview/internal/tui"
	"github.com/alexisbeaulieu97/pview/internal/watch"
)

var errNoTerminal = errors.New("stdout is not a terminal")

func newViewCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "view [palette files or directories...]",
		Short:       "Open the interactive palette viewer",
		Annotations: map[string]string{ownsTerminal: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, app, args)
		},
	}

	return cmd
}

func runView(cmd *cobra.Command, app *appContext, args []string) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("open viewer", "checking the output", errNoTerminal, "Run pview in a terminal, or use 'pview render --out file.png' to write an image.")
	}

	s, err := app.openSession(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	opts := tui.Options{
		Margin: app.cfg.TUI.Margin,
		Gutter: app.cfg.TUI.Gutter,
		Logger: app.log,
	}

	if app.cfg.Watch {
		w, err := watch.New(sourcePaths(s), 0, app.log)
		if err != nil {
			return newCommandError("open viewer", "watching palette files", err, "Disable watch mode or check the palette directory permissions.")
		}
		defer w.Stop() //nolint:errcheck
		opts.Changes = w.Start(ctx)
	}

	return tui.Run(ctx, s, opts)
}

func sourcePaths(s *session.Session) []string {
	entries := s.Catalog().Entries()
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.ID
	}
	return paths
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
