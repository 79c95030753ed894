package pipeline

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/backmassage/bakesmith/internal/config"
	"github.com/backmassage/bakesmith/internal/logging"
)

// debounce coalesces the burst of events an editor save produces.
const debounce = 200 * time.Millisecond

const sceneChangeOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watch runs the pipeline once, then again whenever a scene file under
// cfg.ScenePath changes, until ctx is cancelled. onRun, if set, receives the
// stats of every run. Directories created after Watch starts are not
// watched.
func Watch(ctx context.Context, cfg *config.Config, log *logging.Logger, out io.Writer, onRun func(RunStats)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Close()

	dirs, target, err := watchTargets(cfg.ScenePath)
	if err != nil {
		return err
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	run := func() {
		stats := RunTo(ctx, cfg, log, out)
		if onRun != nil {
			onRun(stats)
		}
	}
	run()
	log.Info("Watching %s for changes", cfg.ScenePath)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isSceneChange(event, target) {
				continue
			}
			log.Debug(cfg.Verbose, "Change: %s", event)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher: %v", err)
		case <-fire:
			fire = nil
			run()
		}
	}
}

// watchTargets returns the directories to watch for path. For a single
// file its directory is watched and target names the file, since editors
// often save by replacing the file.
func watchTargets(path string) (dirs []string, target string, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("scene path: %w", err)
	}
	if !fi.IsDir() {
		return []string{filepath.Dir(path)}, filepath.Clean(path), nil
	}
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		dirs = append(dirs, p)
		return nil
	})
	return dirs, "", err
}

// isSceneChange reports whether event touches a scene file: target when
// set, otherwise any file with a scene extension.
func isSceneChange(event fsnotify.Event, target string) bool {
	if event.Op&sceneChangeOps == 0 {
		return false
	}
	if target != "" {
		return filepath.Clean(event.Name) == target
	}
	return sceneExtensions[strings.ToLower(filepath.Ext(event.Name))]
}
