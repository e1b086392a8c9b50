// Package workflow orchestrates the full platform update: fetch, extract,
// reconcile, verify, stage, commit.
package workflow

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mirrorsmith/platup/internal/archive"
	"github.com/mirrorsmith/platup/internal/config"
	"github.com/mirrorsmith/platup/internal/display"
	"github.com/mirrorsmith/platup/internal/fetch"
	"github.com/mirrorsmith/platup/internal/logging"
	"github.com/mirrorsmith/platup/internal/meta"
	"github.com/mirrorsmith/platup/internal/platform"
	"github.com/mirrorsmith/platup/internal/vcs"
)

// artifactName is the platform package produced by the build server's ndk
// target.
const artifactName = "ndk_platform.tar.bz2"

// Run executes the update described by cfg: load metadata → start a scratch
// branch → clear the install directory → fetch (or use a local artifact) →
// extract → reconcile the platform directories → verify → stage → commit.
//
// The first error aborts the run; nothing is staged or committed after a
// reconcile or verify failure. A partially mutated tree is recovered by
// discarding the scratch branch and re-running, not by resuming.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	platforms, err := meta.Load(filepath.Join(cfg.Root, cfg.MetadataPath))
	if err != nil {
		return err
	}
	log.Debug(cfg.Verbose, "platforms metadata: min=%d max=%d aliases=%v",
		platforms.Min, platforms.Max, platforms.Aliases)

	if !cfg.UseCurrentBranch {
		name := BranchName(cfg)
		log.Info("Starting branch %s", name)
		if err := vcs.StartBranch(ctx, cfg.Root, name); err != nil {
			return err
		}
	}

	install := filepath.Join(cfg.Root, cfg.InstallDir)
	log.Exec("git rm -r --ignore-unmatch %s", cfg.InstallDir)
	if err := vcs.RemoveStaged(ctx, cfg.Root, cfg.InstallDir); err != nil {
		return err
	}
	if err := os.RemoveAll(install); err != nil {
		return err
	}
	if err := os.MkdirAll(install, 0o755); err != nil {
		return err
	}

	var pkg string
	if cfg.Download {
		log.Info("Fetching %s from %s build %s", artifactName, cfg.Branch, cfg.Build)
		if err := fetch.Artifact(ctx, cfg.Root, cfg.Branch, "ndk", cfg.Build, artifactName); err != nil {
			return err
		}
		pkg = filepath.Join(cfg.Root, artifactName)
	} else {
		pkg = cfg.Build
		log.Info("Using local artifact at %s", pkg)
	}

	log.Exec("tar xf %s", pkg)
	if err := archive.Extract(ctx, pkg, install); err != nil {
		return err
	}
	if cfg.Download {
		if err := os.Remove(pkg); err != nil {
			return err
		}
	}

	// NOTICE sits in the package root by convention, but only
	// install/sysroot ships as-is; move it where it is installed from.
	if err := os.Rename(filepath.Join(install, "NOTICE"),
		filepath.Join(install, "sysroot", "NOTICE")); err != nil {
		return err
	}

	platformsDir := filepath.Join(install, "platforms")
	stats, err := platform.Reconcile(platformsDir, platforms, opLogger{log: log, verbose: cfg.Verbose})
	if err != nil {
		return err
	}
	log.Info("Platforms reconciled: %s", display.FormatStats(stats))

	if err := platform.VerifyAllNumeric(platformsDir); err != nil {
		return err
	}

	log.Exec("git add %s", cfg.InstallDir)
	if err := vcs.Stage(ctx, cfg.Root, cfg.InstallDir); err != nil {
		return err
	}
	if err := vcs.Commit(ctx, cfg.Root, vcs.CommitMessage(cfg.Build, cfg.Bug, !cfg.Download)); err != nil {
		return err
	}

	log.Success("Platform prebuilts updated")
	return nil
}

// BranchName returns the scratch branch name for this run: the build number
// when downloading, "local" for a local artifact.
func BranchName(cfg *config.Config) string {
	suffix := cfg.Build
	if !cfg.Download {
		suffix = "local"
	}
	return "update-platform-" + suffix
}

// opLogger adapts the CLI logger to the reconciliation engine's OpLog port.
type opLogger struct {
	log     *logging.Logger
	verbose bool
}

func (o opLogger) Keep(path string) {
	o.log.Debug(o.verbose, "keep %s", path)
}

func (o opLogger) Remove(path string) {
	o.log.Info("rmtree %s", path)
}

func (o opLogger) Rename(oldPath, newPath string) {
	o.log.Info("mv %s %s", oldPath, newPath)
}
