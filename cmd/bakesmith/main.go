// Command bakesmith is the CLI entrypoint for the bake set resolver.
//
// It parses flags, validates configuration, and either runs scene
// diagnostics (--check) or the resolve/report/dry-bake pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/bakesmith/internal/check"
	"github.com/backmassage/bakesmith/internal/config"
	"github.com/backmassage/bakesmith/internal/display"
	"github.com/backmassage/bakesmith/internal/logging"
	"github.com/backmassage/bakesmith/internal/pipeline"
	"github.com/backmassage/bakesmith/internal/scene"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "0.1.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		fmt.Fprintf(os.Stderr, "bakesmith: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "bakesmith: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bakesmith: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. Structured reports own stdout, so the
	// logger moves to stderr and the banner is dropped.
	if cfg.Format != config.FormatText {
		log.SetOutput(os.Stderr, os.Stderr)
	} else if !cfg.NoBanner {
		display.PrintBanner(os.Stdout)
	}

	if cfg.CheckOnly {
		return runCheck(&cfg, log)
	}

	log.Info("=== bakesmith v%s (%s) ===", version, commit)
	log.Info("Scenes: %s", cfg.ScenePath)
	if cfg.ConfigFile != "" {
		log.Info("Settings: %s", cfg.ConfigFile)
	}
	if cfg.DryBake {
		log.Warn("DRY BAKE: materials are swapped and restored in memory, nothing is rendered")
	}

	// Phase 3: Signal handling. Cancel context on SIGINT/SIGTERM so the
	// pipeline stops between scenes.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current scene...")
		cancel()
	}()

	// Phase 4: Run pipeline (discover → load → resolve → report → dry bake),
	// once or on every scene change until interrupted.
	if cfg.Watch {
		if err := pipeline.Watch(ctx, &cfg, log, os.Stdout, nil); err != nil {
			log.Error("%v", err)
			return 1
		}
		return 0
	}
	stats := pipeline.Run(ctx, &cfg, log)

	if !stats.Clean() {
		return 1
	}
	return 0
}

// runCheck runs diagnostics on every discovered scene. It fails only when
// no scene can be loaded.
func runCheck(cfg *config.Config, log *logging.Logger) int {
	files, err := pipeline.Discover(cfg.ScenePath)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	loaded := 0
	for _, path := range files {
		sc, err := scene.Load(path)
		if err != nil {
			log.Error("Cannot load scene: %v", err)
			continue
		}
		loaded++
		check.RunCheck(sc, cfg, log)
	}
	if loaded == 0 {
		log.Error("No scene could be loaded from %s", cfg.ScenePath)
		return 1
	}
	return 0
}
