package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pview/internal/catalog"
)

type syncOptions struct {
	url    string
	dest   string
	branch string
	depth  int
}

func newSyncCmd(app *appContext) *cobra.Command {
	opts := &syncOptions{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Clone or update a git repository of palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "repo", "", "Repository URL (default: repo.url)")
	cmd.Flags().StringVar(&opts.dest, "dest", "", "Checkout directory (default: repo.dest, then palette_dir)")
	cmd.Flags().StringVar(&opts.branch, "branch", "", "Branch to track (default: repo.branch, then the remote HEAD)")
	cmd.Flags().IntVar(&opts.depth, "depth", 0, "Clone depth (default: repo.depth, 0 for full history)")

	return cmd
}

func runSync(cmd *cobra.Command, app *appContext, opts *syncOptions) error {
	repo := catalog.RepoOptions{
		URL:    app.cfg.Repo.URL,
		Branch: app.cfg.Repo.Branch,
		Depth:  app.cfg.Repo.Depth,
		Dest:   app.cfg.RepoDest(),
	}
	if opts.url != "" {
		repo.URL = opts.url
	}
	if opts.dest != "" {
		repo.Dest = opts.dest
	}
	if opts.branch != "" {
		repo.Branch = opts.branch
	}
	if opts.depth > 0 {
		repo.Depth = opts.depth
	}
	if repo.URL == "" {
		return newCommandError("sync", "no repository configured", fmt.Errorf("repo url is empty"), "Pass --repo <url> or set repo.url in your configuration.")
	}

	res, err := catalog.Sync(cmd.Context(), repo, app.log)
	if err != nil {
		return newCommandError("sync", "fetching "+repo.URL, err, "Check the repository URL, your network connection and the destination directory.")
	}

	count := 0
	if cat, err := catalog.Discover(res.Dest, catalog.Options{Extension: app.cfg.Extension}); err == nil {
		count = cat.Len()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s at %s (%d palettes)\n", res.Action, res.Dest, res.Head, count)
	return nil
}
