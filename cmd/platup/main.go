// Command platup is the CLI entrypoint for the NDK platform prebuilt
// updater.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or the fetch → extract → reconcile → commit
// workflow.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mirrorsmith/platup/internal/check"
	"github.com/mirrorsmith/platup/internal/config"
	"github.com/mirrorsmith/platup/internal/display"
	"github.com/mirrorsmith/platup/internal/logging"
	"github.com/mirrorsmith/platup/internal/platform"
	"github.com/mirrorsmith/platup/internal/workflow"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "platup: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "platup: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "platup: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== platup v%s (%s) ===", version, commit)
	log.Info("Root:    %s", cfg.Root)
	log.Info("Install: %s", cfg.InstallDir)
	log.Info("")

	// Fail fast if git/tar/fetch_artifact/repo are unavailable.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so child
	// processes are stopped; the scratch branch makes a torn run safe to
	// discard and redo.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, aborting…")
		cancel()
	}()

	// Phase 4: Run the update workflow.
	if err := workflow.Run(ctx, &cfg, log); err != nil {
		// The unresolved-codename report is multi-line; print it whole so
		// the operator can fix every name in one pass.
		var unresolved *platform.UnresolvedCodenameError
		if errors.As(err, &unresolved) {
			log.Error("%v", unresolved)
			log.Error("Add the missing aliases to %s or accept removal, then re-run", cfg.MetadataPath)
			return 1
		}
		log.Error("%v", err)
		return 1
	}
	return 0
}
