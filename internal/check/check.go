// Package check provides system diagnostics (--check mode) and pre-workflow
// dependency validation (CheckDeps) for git, tar, fetch_artifact, and
// repo/pore.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/mirrorsmith/platup/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrGitNotFound  = errors.New("git not found on PATH")
	ErrTarNotFound  = errors.New("tar not found on PATH")
	ErrRepoNotFound = errors.New("neither repo nor pore found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of git,
// tar, fetch_artifact, and repo/pore. Returns false when a tool every
// update needs (git, tar) is missing.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkVersioned(log, "git", "--version")
	if !checkVersioned(log, "tar", "--version") {
		ok = false
	}

	if _, err := exec.LookPath("fetch_artifact"); err != nil {
		log.Warn("fetch_artifact not found (only needed without --no-download)")
	} else {
		log.Success("fetch_artifact found")
	}

	switch {
	case lookPathOK("pore"):
		log.Success("pore found")
	case lookPathOK("repo"):
		log.Success("repo found")
	default:
		log.Warn("neither repo nor pore found (only needed without --use-current-branch)")
	}

	return ok
}

// checkVersioned verifies name is on PATH and logs its version string.
func checkVersioned(log Logger, name, versionFlag string) bool {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return false
	}
	out, err := exec.Command(name, versionFlag).Output()
	if err != nil {
		log.Warn("%s found but %s failed: %v", name, versionFlag, err)
		return true
	}
	first := strings.SplitN(strings.TrimSpace(string(out)), "\n", 2)[0]
	log.Success("%s: %s", name, first)
	return true
}

func lookPathOK(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// CheckDeps fails fast when a tool the configured run will need is
// unavailable. Unlike RunCheck it is silent and returns the first problem.
func CheckDeps(cfg *config.Config) error {
	if !lookPathOK("git") {
		return ErrGitNotFound
	}
	if !lookPathOK("tar") {
		return ErrTarNotFound
	}
	if cfg.Download {
		if !lookPathOK("fetch_artifact") {
			// fetch reports the full install instructions at run time;
			// here we only gate on presence.
			return errors.New("fetch_artifact not found on PATH (or pass --no-download)")
		}
	}
	if !cfg.UseCurrentBranch {
		if !lookPathOK("repo") && !lookPathOK("pore") {
			return ErrRepoNotFound
		}
	}
	return nil
}
