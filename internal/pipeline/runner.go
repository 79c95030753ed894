package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/backmassage/bakesmith/internal/bakemode"
	"github.com/backmassage/bakesmith/internal/bakeset"
	"github.com/backmassage/bakesmith/internal/check"
	"github.com/backmassage/bakesmith/internal/config"
	"github.com/backmassage/bakesmith/internal/display"
	"github.com/backmassage/bakesmith/internal/host"
	"github.com/backmassage/bakesmith/internal/logging"
	"github.com/backmassage/bakesmith/internal/role"
	"github.com/backmassage/bakesmith/internal/scene"
)

// issueOrder is the priority order issue tallies are printed in.
var issueOrder = []string{
	string(bakeset.IssueNoLowObjects),
	string(bakeset.IssueCageCountMismatch),
	string(bakeset.IssueMissingUVLayer),
}

// Run is the top-level batch entry point. Reports go to stdout.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	return RunTo(ctx, cfg, log, os.Stdout)
}

// RunTo discovers scene files, processes each sequentially, writes the
// report to out, and returns aggregate stats. Cancellation is checked
// between scenes.
func RunTo(ctx context.Context, cfg *config.Config, log *logging.Logger, out io.Writer) RunStats {
	stats := RunStats{Issues: make(map[string]int)}

	mode, err := bakemode.Lookup(cfg.BakeMode)
	if err != nil {
		log.Error("%v (available: %v)", err, bakemode.Names())
		stats.Failed++
		return stats
	}

	files, err := Discover(cfg.ScenePath)
	if err != nil {
		log.Error("Scene discovery failed: %v", err)
		stats.Failed++
		return stats
	}
	if len(files) == 0 {
		log.Warn("No scene files found in %s", cfg.ScenePath)
		return stats
	}

	stats.Total = len(files)
	logBatchHeader(cfg, log, mode, &stats)

	var reports []Report
	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		if r, ok := processScene(cfg, log, mode, path, &stats, out); ok {
			reports = append(reports, r)
		}
	}

	if cfg.Format != config.FormatText {
		if err := WriteReports(out, cfg.Format, reports); err != nil {
			log.Error("%v", err)
			stats.Failed++
		}
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processScene handles one scene file: load → select → check → resolve →
// report → optional dry bake.
func processScene(
	cfg *config.Config,
	log *logging.Logger,
	mode bakemode.Mode,
	path string,
	stats *RunStats,
	out io.Writer,
) (Report, bool) {
	log.Info("[%d/%d] %s", stats.Current, stats.Total, filepath.Base(path))

	// --- Load ---
	sc, err := scene.Load(path)
	if err != nil {
		log.Error("Cannot load scene: %v", err)
		stats.Failed++
		return Report{}, false
	}

	// --- Select ---
	check.ApplySelection(sc, cfg.Select, log)
	if err := check.CheckScene(sc); err != nil {
		log.Warn("Skip: %v", err)
		stats.Skipped++
		return Report{}, false
	}
	sel := sc.Selection()

	// --- Resolve ---
	assignments := bakeset.Classify(sel)
	for _, a := range assignments {
		log.Debug(cfg.Verbose, "  %s: %s (%s) -> %s", a.Object.Name, a.Role, a.Rule, a.Logical)
	}
	sets := bakeset.Group(assignments)

	sum := bakeset.Summarize(sets)
	stats.Scenes++
	stats.Sets += sum.Sets
	stats.SetsWithIssues += sum.WithIssues
	stats.Objects += sum.Objects
	for code, n := range sum.ByIssue {
		stats.Issues[string(code)] += n
	}

	report := BuildReport(path, mode, sets, sc.Images)

	// --- Report ---
	if cfg.Format == config.FormatText {
		logSets(cfg, log, sets)
		printSetTable(out, report)
	}

	// --- Dry bake ---
	if cfg.DryBake {
		res := DryBake(sc, sets, mode, host.NewLocal(), cfg, log)
		stats.RoundTrips += res.RoundTrips
		stats.Failed += res.Failed
		if res.Failed == 0 && res.RoundTrips > 0 {
			log.Success("Dry bake restored %s", display.FormatCount(res.RoundTrips, "set"))
		}
	}
	return report, true
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, mode bakemode.Mode, stats *RunStats) {
	log.Info("Found %s", display.FormatCount(stats.Total, "scene file"))
	log.Info("Bake mode: %s (%s)", mode.Name, mode.Type)
	if len(cfg.Select) > 0 {
		log.Info("Selection override: %v", cfg.Select)
	}
	if cfg.DryBake {
		isolation := "isolated"
		if !cfg.Isolate {
			isolation = "not isolated"
		}
		log.Info("Dry bake: materials marked %q, sets %s", cfg.BackupMarker, isolation)
	}
}

func logSets(cfg *config.Config, log *logging.Logger, sets []*bakeset.BakeSet) {
	for _, s := range sets {
		if s.HasIssues {
			log.Issue("%s: %s", display.FormatSetHeadline(s), s.Issue.Message())
		} else {
			log.Info("%s", display.FormatSetHeadline(s))
		}
		for _, r := range role.All {
			log.Debug(cfg.Verbose, "%s", display.FormatRoleLine(s, r))
		}
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("=== Summary ===")
	log.Info("Scenes: %d resolved, %d skipped, %d failed", stats.Scenes, stats.Skipped, stats.Failed)
	log.Info("Sets: %s, %s", display.FormatCount(stats.Sets, "set"), display.FormatCount(stats.Objects, "object"))
	if stats.SetsWithIssues > 0 {
		log.Warn("Sets with issues: %d (%s)", stats.SetsWithIssues, issueTally(issueOrder, stats.Issues))
	}
	if cfg.DryBake {
		log.Info("Round trips: %d", stats.RoundTrips)
	}
	if stats.Clean() {
		log.Success("Done")
	} else {
		log.Error("Finished with %s", display.FormatCount(stats.Failed, "failure"))
	}
}
