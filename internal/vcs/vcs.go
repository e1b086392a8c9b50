// Package vcs wraps the repo/pore and git operations used by the update
// workflow: scratch branch creation, staging, and commit. All commands run
// against an explicit directory; nothing depends on the process working
// directory.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrPoreNotFound is returned when the tree is pore-managed but the pore
// binary is not on PATH.
var ErrPoreNotFound = errors.New("could not find pore in PATH")

// FindTreeTop walks up from dir looking for a repo/pore workspace marker
// (.repo or .pore). It returns dir itself when no marker is found, which
// degrades to plain-git behavior.
func FindTreeTop(dir string) string {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	for {
		for _, marker := range []string{".repo", ".pore"} {
			if _, err := os.Lstat(filepath.Join(cur, marker)); err == nil {
				return cur
			}
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir
		}
		cur = parent
	}
}

// InPoreTree reports whether the workspace at top is managed by pore
// instead of repo.
func InPoreTree(top string) bool {
	_, err := os.Lstat(filepath.Join(top, ".pore"))
	return err == nil
}

// StartBranch starts a scratch branch named name in the project at dir,
// using pore when the enclosing workspace is pore-managed and repo
// otherwise.
func StartBranch(ctx context.Context, dir, name string) error {
	var argv []string
	if InPoreTree(FindTreeTop(dir)) {
		pore, err := exec.LookPath("pore")
		if err != nil {
			return ErrPoreNotFound
		}
		argv = []string{pore, "start", name}
	} else {
		argv = []string{"repo", "start", name, "."}
	}
	return run(ctx, dir, argv[0], argv[1:]...)
}

// RemoveStaged removes path from the git index and working tree, ignoring
// a path that is not tracked (git rm -r --ignore-unmatch).
func RemoveStaged(ctx context.Context, dir, path string) error {
	return run(ctx, dir, "git", "rm", "-r", "--ignore-unmatch", path)
}

// Stage adds path to the git index.
func Stage(ctx context.Context, dir, path string) error {
	return run(ctx, dir, "git", "add", path)
}

// Commit records the staged changes with message.
func Commit(ctx context.Context, dir, message string) error {
	return run(ctx, dir, "git", "commit", "-m", message)
}

// CommitMessage builds the platform update commit message. When local is
// true the update came from a local artifact instead of a server build.
func CommitMessage(build, bug string, local bool) string {
	update := "to build " + build
	if local {
		update = "with local artifact"
	}
	return fmt.Sprintf("Update NDK platform prebuilts %s.\n\n"+
		"Test: ndk/checkbuild.py && ndk/run_tests.py\n"+
		"Bug: %s\n", update, bug)
}

// run executes one command in dir with output passed through to the
// terminal.
func run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
