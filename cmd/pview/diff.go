package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pview/internal/palette"
	"github.com/alexisbeaulieu97/pview/pkg/diff"
)

type diffOptions struct {
	stat bool
}

func newDiffCmd(app *appContext) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <old palette> <new palette>",
		Short: "Compare the colors of two palette files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, app, opts, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.stat, "stat", false, "Only print the number of added and removed colors")

	return cmd
}

func runDiff(cmd *cobra.Command, app *appContext, opts *diffOptions, oldPath, newPath string) error {
	store := palette.NewStore(palette.ParseOptions{Strict: app.cfg.Strict}, app.log)

	oldColors, err := hexLines(store, oldPath)
	if err != nil {
		return newCommandError("diff", "loading "+oldPath, err, "Check that the file exists and holds RRGGBB colors.")
	}
	newColors, err := hexLines(store, newPath)
	if err != nil {
		return newCommandError("diff", "loading "+newPath, err, "Check that the file exists and holds RRGGBB colors.")
	}

	res := diff.Lines(oldColors, newColors)
	out := cmd.OutOrStdout()
	if res.Identical() {
		fmt.Fprintf(out, "palettes match (%d colors)\n", len(oldColors))
		return nil
	}
	if !opts.stat {
		fmt.Fprint(out, res.Unified(oldPath, newPath))
	}
	fmt.Fprintf(out, "%d added, %d removed\n", res.Added, res.Removed)
	return nil
}

func hexLines(store *palette.Store, path string) ([]string, error) {
	p, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	lines := make([]string, p.Len())
	for i, c := range p.Colors() {
		lines[i] = c.Hex()
	}
	return lines, nil
}
