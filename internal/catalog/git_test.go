package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func initPaletteRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "dmg.hex"), []byte("0f380f\n306230\n8bac0f\n9bbc0f\n"), 0o644))
	_, err = wt.Add("dmg.hex")
	require.NoError(t, err)

	_, err = wt.Commit("add dmg palette", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "pview",
			Email: "pview@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func TestSyncClonesThenReportsUpToDate(t *testing.T) {
	source := initPaletteRepo(t)
	dest := filepath.Join(t.TempDir(), "collections", "dmg")

	res, err := Sync(context.Background(), RepoOptions{URL: source, Dest: dest}, nil)
	require.NoError(t, err)
	require.Equal(t, SyncCloned, res.Action)
	require.Len(t, res.Head, 7)

	cat, err := Discover(dest, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"dmg.hex"}, names(cat))

	res, err = Sync(context.Background(), RepoOptions{URL: source, Dest: dest}, nil)
	require.NoError(t, err)
	require.Equal(t, SyncUpToDate, res.Action)
}

func TestSyncRefusesForeignDirectory(t *testing.T) {
	t.Parallel()

	dest := t.TempDir()
	touch(t, dest, "mine.hex")

	_, err := Sync(context.Background(), RepoOptions{URL: "/tmp/palettes.git", Dest: dest}, nil)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dest, "mine.hex"))
	require.NoError(t, statErr, "existing files must be left alone")
}

func TestSyncValidatesOptions(t *testing.T) {
	t.Parallel()

	_, err := Sync(context.Background(), RepoOptions{Dest: t.TempDir()}, nil)
	require.Error(t, err)

	_, err = Sync(context.Background(), RepoOptions{URL: "/tmp/x.git"}, nil)
	require.Error(t, err)
}

func TestSyncHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sync(ctx, RepoOptions{URL: "/tmp/x.git", Dest: filepath.Join(t.TempDir(), "d")}, nil)
	require.ErrorIs(t, err, context.Canceled)
}
