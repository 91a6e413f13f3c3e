package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/pview/internal/logger"
)

// RepoOptions describes a git repository holding palette files.
type RepoOptions struct {
	URL    string
	Branch string
	Depth  int
	Dest   string
}

// SyncAction reports what Sync did.
type SyncAction string

const (
	SyncCloned   SyncAction = "cloned"
	SyncUpdated  SyncAction = "updated"
	SyncUpToDate SyncAction = "up-to-date"
)

// SyncResult describes the state of the local copy after Sync.
type SyncResult struct {
	Dest   string
	Action SyncAction
	Head   string
}

// Sync makes Dest a current checkout of the repository: it clones when Dest
// does not exist and pulls otherwise. A Dest that exists but is not a clone of
// URL is left untouched and reported as an error.
func Sync(ctx context.Context, opts RepoOptions, log *logger.Logger) (SyncResult, error) {
	if opts.URL == "" {
		return SyncResult{}, fmt.Errorf("repository url is required")
	}
	if opts.Dest == "" {
		return SyncResult{}, fmt.Errorf("destination directory is required")
	}
	if err := ctx.Err(); err != nil {
		return SyncResult{}, err
	}

	log = log.WithFields(map[string]any{"url": opts.URL, "dest": opts.Dest})

	if _, err := os.Stat(opts.Dest); err != nil {
		if !os.IsNotExist(err) {
			return SyncResult{}, fmt.Errorf("cannot access destination: %w", err)
		}
		return clone(ctx, opts, log)
	}

	repo, err := git.PlainOpen(opts.Dest)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%s exists but is not a git repository: %w", opts.Dest, err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return SyncResult{}, fmt.Errorf("read origin remote: %w", err)
	}
	if urls := remote.Config().URLs; len(urls) > 0 && urls[0] != opts.URL {
		return SyncResult{}, fmt.Errorf("%s tracks %s, not %s", opts.Dest, urls[0], opts.URL)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return SyncResult{}, fmt.Errorf("open worktree: %w", err)
	}

	pull := &git.PullOptions{RemoteName: "origin", Depth: opts.Depth}
	if opts.Branch != "" {
		pull.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
		pull.SingleBranch = true
	}

	action := SyncUpdated
	if err := wt.PullContext(ctx, pull); err != nil {
		if !errors.Is(err, git.NoErrAlreadyUpToDate) {
			log.Error(err, "palette repository pull failed")
			return SyncResult{}, fmt.Errorf("pull %s: %w", opts.URL, err)
		}
		action = SyncUpToDate
	}

	res := SyncResult{Dest: opts.Dest, Action: action, Head: head(repo)}
	log.WithFields(map[string]any{"action": string(action), "head": res.Head}).Info("palette repository synced")
	return res, nil
}

func clone(ctx context.Context, opts RepoOptions, log *logger.Logger) (SyncResult, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Dest), 0o755); err != nil {
		return SyncResult{}, fmt.Errorf("create destination parent: %w", err)
	}

	cloneOpts := &git.CloneOptions{URL: opts.URL}
	if opts.Depth > 0 {
		cloneOpts.Depth = opts.Depth
	}
	if opts.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
		cloneOpts.SingleBranch = true
	}

	repo, err := git.PlainCloneContext(ctx, opts.Dest, false, cloneOpts)
	if err != nil {
		log.Error(err, "palette repository clone failed")
		// Do not leave a half-written checkout that the next Sync would refuse.
		_ = os.RemoveAll(opts.Dest)
		return SyncResult{}, fmt.Errorf("clone %s: %w", opts.URL, err)
	}

	res := SyncResult{Dest: opts.Dest, Action: SyncCloned, Head: head(repo)}
	log.WithFields(map[string]any{"head": res.Head}).Info("palette repository cloned")
	return res, nil
}

func head(repo *git.Repository) string {
	ref, err := repo.Head()
	if err != nil {
		return ""
	}
	return ref.Hash().String()[:7]
}
