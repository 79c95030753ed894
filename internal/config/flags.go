package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into selection, reporting, bake simulation, display, and utility.
// Negated flags (e.g. --no-isolate) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses args (without the program name) into cfg. A settings
// file named by --config is loaded first so flags override it. On --help or
// --version it prints and exits.
func ParseFlags(cfg *Config, args []string, version string) error {
	if path := configPathFromArgs(args); path != "" {
		if err := LoadFile(cfg, path); err != nil {
			return err
		}
	}

	fs := flag.NewFlagSet("bakesmith", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults hold unless the user passes the flag.
	var negated negatedFlags

	defineSelectionFlags(fs, cfg)
	defineReportFlags(fs, cfg)
	defineBakeFlags(fs, cfg, &negated)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "bakesmith v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noIsolate -> Isolate=false) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noIsolate   bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// configPathFromArgs finds --config before flag parsing so the file can
// seed the defaults that flags then override.
func configPathFromArgs(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		name := strings.TrimLeft(a, "-")
		if name == a {
			continue
		}
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// defineSelectionFlags registers -s/--select.
func defineSelectionFlags(fs *flag.FlagSet, cfg *Config) {
	sel := &listValue{p: &cfg.Select}
	fs.Var(sel, "select", "Object names to select (repeatable, comma separated)")
	fs.Var(sel, "s", "Same as --select")
}

// defineReportFlags registers --format.
func defineReportFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&formatValue{&cfg.Format}, "format", "Report format: text | yaml | json")
	fs.Var(&formatValue{&cfg.Format}, "o", "Same as --format")
}

// defineBakeFlags registers --mode, --dry-bake, --marker, --no-isolate.
func defineBakeFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.StringVar(&cfg.BakeMode, "mode", cfg.BakeMode, "Bake mode used for texture names")
	fs.StringVar(&cfg.BakeMode, "m", cfg.BakeMode, "Same as --mode")
	fs.BoolVar(&cfg.DryBake, "dry-bake", cfg.DryBake, "Swap in bake materials and restore them")
	fs.BoolVar(&cfg.DryBake, "d", cfg.DryBake, "Same as --dry-bake")
	fs.StringVar(&cfg.BackupMarker, "marker", cfg.BackupMarker, "Name prefix for backed up materials")
	fs.BoolVar(&n.noIsolate, "no-isolate", false, "Do not hide non-member objects during a dry bake")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log, --no-banner, --watch.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run scene diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
	fs.BoolVar(&cfg.NoBanner, "no-banner", cfg.NoBanner, "Do not print the banner")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "Re-run when scene files change")
	fs.BoolVar(&cfg.Watch, "w", cfg.Watch, "Same as --watch")
}

// defineUtilityFlags registers --config, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	// Already loaded by configPathFromArgs; registered so Parse accepts it.
	// LoadFile has set cfg.ConfigFile to the expanded path.
	var configPath string
	fs.StringVar(&configPath, "config", "", "TOML settings file")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noIsolate {
		cfg.Isolate = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets ScenePath from the single positional arg.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if len(args) != 1 {
		return fmt.Errorf("need exactly one scene file or directory")
	}
	cfg.ScenePath = strings.TrimRight(args[0], "/")
	if cfg.ScenePath == "" {
		cfg.ScenePath = "/"
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "bakesmith v" + version + " - bake set resolver"},
		{"", ""},
		{"  bakesmith [OPTIONS] <scene.yaml|dir>", ""},
		{"", ""},
		{"Selection", ""},
		{"  -s, --select <names>", "Objects to select (default: scene selection)"},
		{"", ""},
		{"Report", ""},
		{"  -o, --format <fmt>", "text | yaml | json (default: text)"},
		{"", ""},
		{"Bake simulation", ""},
		{"  -m, --mode <name>", "Bake mode for texture names (default: normal_tangent)"},
		{"  -d, --dry-bake", "Swap in bake materials, restore, and verify"},
		{"  --marker <prefix>", "Backup name marker (default: backup_)"},
		{"  --no-isolate", "Keep non-member objects renderable"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  --no-banner", "Do not print the banner"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "TOML settings file (flags override it)"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Scene diagnostics"},
		{"  -w, --watch", "Re-run when scene files change"},
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

// flag.Value adapters so we can use enum and list types with flag.Var.

type formatValue struct{ p *OutputFormat }

func (f *formatValue) String() string {
	if f.p == nil {
		return ""
	}
	return string(*f.p)
}

func (f *formatValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "text":
		*f.p = FormatText
	case "yaml", "yml":
		*f.p = FormatYAML
	case "json":
		*f.p = FormatJSON
	default:
		return fmt.Errorf("invalid format %q (use 'text', 'yaml' or 'json')", s)
	}
	return nil
}

// listValue collects repeated flags. The first Set replaces any list
// loaded from the settings file.
type listValue struct {
	p   *[]string
	set bool
}

func (l *listValue) String() string {
	if l.p == nil {
		return ""
	}
	return strings.Join(*l.p, ",")
}

func (l *listValue) Set(s string) error {
	if !l.set {
		*l.p = nil
		l.set = true
	}
	*l.p = append(*l.p, s)
	return nil
}
