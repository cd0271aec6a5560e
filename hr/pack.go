package hr

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v6/osfs"
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/cache"
	"github.com/go-git/go-git/v6/storage/filesystem"
)

// FetchPack clones a lesson-pack repository (schema.sql, data.sql, and any
// extra practice material) into dir. An already-cloned pack is opened and
// pulled instead.
func FetchPack(url, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create pack directory: %w", err)
	}

	wt := osfs.New(dir)
	dotgit, err := wt.Chroot(".git")
	if err != nil {
		return err
	}

	storer := filesystem.NewStorageWithOptions(
		dotgit,
		cache.NewObjectLRUDefault(),
		filesystem.Options{ExclusiveAccess: true})

	if _, statErr := os.Stat(dotgit.Root()); statErr != nil {
		_, err = git.Clone(storer, wt, &git.CloneOptions{URL: url})
		if err != nil {
			return fmt.Errorf("failed to clone lesson pack: %w", err)
		}
		return nil
	}

	repo, err := git.Open(storer, wt)
	if err != nil {
		return fmt.Errorf("failed to open lesson pack: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return err
	}

	err = worktree.Pull(&git.PullOptions{})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return fmt.Errorf("failed to update lesson pack: %w", err)
	}
	return nil
}
