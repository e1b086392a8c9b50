package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into artifact source, tree layout, VCS, and display.
// Negated flags (e.g. --no-download) are applied after Parse so Config
// defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing positional
// arg).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("platup", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Negated/override flags: we capture bools then apply to cfg after
	// Parse, so that defaults from DefaultConfig() hold unless the user
	// passes the flag.
	var negated negatedFlags

	defineSourceFlags(fs, cfg, &negated)
	defineTreeFlags(fs, cfg)
	defineVCSFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)
	cfg.Root = NormalizeDirArg(cfg.Root)
	cfg.InstallDir = NormalizeDirArg(cfg.InstallDir)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "platup v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noDownload -> Download=false) or
// trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noDownload  bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineSourceFlags registers --no-download and --branch.
func defineSourceFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.noDownload, "no-download", false, "BUILD is a path to a local artifact, not a build number")
	fs.StringVar(&cfg.Branch, "branch", cfg.Branch, "Branch to pull from the build server")
}

// defineTreeFlags registers --root, --metadata, --install.
func defineTreeFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Root, "root", cfg.Root, "Checkout directory to update")
	fs.StringVar(&cfg.MetadataPath, "metadata", cfg.MetadataPath, "Platforms metadata file, relative to --root")
	fs.StringVar(&cfg.InstallDir, "install", cfg.InstallDir, "Install directory, relative to --root")
}

// defineVCSFlags registers -b/--bug and --use-current-branch.
func defineVCSFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Bug, "bug", cfg.Bug, "Bug URL for the commit message")
	fs.StringVar(&cfg.Bug, "b", cfg.Bug, "Same as --bug")
	fs.BoolVar(&cfg.UseCurrentBranch, "use-current-branch", false, "Do not start a new branch for the update")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noDownload {
		cfg.Download = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Build from the single positional arg when not in
// CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one BUILD_OR_ARTIFACT argument")
	}
	cfg.Build = strings.TrimSpace(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "platup v" + version + " — NDK platform prebuilt updater"},
		{"", ""},
		{"  platup [OPTIONS] <build_or_artifact>", ""},
		{"", ""},
		{"Artifact source", ""},
		{"  --no-download", "BUILD is a path to a local artifact"},
		{"  --branch <name>", "Build server branch (default: aosp-master)"},
		{"", ""},
		{"Tree layout", ""},
		{"  --root <dir>", "Checkout directory to update (default: .)"},
		{"  --metadata <path>", "Platforms metadata file (default: ndk/meta/platforms.json)"},
		{"  --install <dir>", "Install directory (default: platform)"},
		{"", ""},
		{"Version control", ""},
		{"  -b, --bug <url>", "Bug URL for the commit message"},
		{"  --use-current-branch", "Do not repo start a new branch"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (git, tar, fetch_artifact)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
