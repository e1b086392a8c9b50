// Package archive extracts the downloaded platform package by shelling out
// to tar, matching the layout the build server produces.
package archive

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// BuildArgs returns the tar argv (without the binary itself) that extracts
// pkg into dest. The package has a single wrapping directory, hence
// --strip-components=1.
func BuildArgs(pkg, dest string) []string {
	return []string{"xf", pkg, "--strip-components=1", "-C", dest}
}

// Extract unpacks pkg into dest, which must already exist.
func Extract(ctx context.Context, pkg, dest string) error {
	cmd := exec.CommandContext(ctx, "tar", BuildArgs(pkg, dest)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tar xf %s: %w", pkg, err)
	}
	return nil
}
