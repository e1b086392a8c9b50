// Package fetch retrieves build artifacts from the build server via the
// fetch_artifact tool.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrFetchArtifactNotFound is returned when the fetch_artifact tool is not
// on PATH. The message carries the install instructions because this is the
// usual first-run failure on a fresh workstation.
var ErrFetchArtifactNotFound = errors.New(
	"cannot find fetch_artifact in PATH; install it using:\n" +
		"  sudo glinux-add-repo android\n" +
		"  sudo apt update\n" +
		"  sudo apt install android-fetch-artifact")

// BuildArgs returns the fetch_artifact argv (without the binary itself) for
// one artifact pattern. OAuth2 is always used; it works both on-corp and
// off-corp.
func BuildArgs(branch, target, build, pattern string) []string {
	return []string{
		"--use_oauth2",
		"--branch", branch,
		"--target=" + target,
		"--bid", build,
		pattern,
	}
}

// Artifact downloads one artifact matching pattern into dir. Progress output
// from fetch_artifact is passed through to the terminal.
func Artifact(ctx context.Context, dir, branch, target, build, pattern string) error {
	path, err := exec.LookPath("fetch_artifact")
	if err != nil {
		return ErrFetchArtifactNotFound
	}
	cmd := exec.CommandContext(ctx, path, BuildArgs(branch, target, build, pattern)...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("fetch_artifact %s: %w", pattern, err)
	}
	return nil
}
