package pipeline

import (
	"errors"
	"fmt"

	"github.com/backmassage/bakesmith/internal/bakemode"
	"github.com/backmassage/bakesmith/internal/bakeset"
	"github.com/backmassage/bakesmith/internal/config"
	"github.com/backmassage/bakesmith/internal/display"
	"github.com/backmassage/bakesmith/internal/host"
	"github.com/backmassage/bakesmith/internal/logging"
	"github.com/backmassage/bakesmith/internal/scene"
	"github.com/backmassage/bakesmith/internal/snapshot"
)

// ErrRoundTrip is returned when an object's materials or render visibility
// differ after a dry bake from what they were before it.
var ErrRoundTrip = errors.New("scene state not restored after bake")

// Host is the editor surface a dry bake drives.
type Host interface {
	host.Editor
	host.Materials
}

// BakeResult counts dry bake outcomes for one scene.
type BakeResult struct {
	RoundTrips int
	Skipped    int
	Failed     int
}

// DryBake runs the bake preparation for every set without rendering: back
// up the low objects' materials, swap in the bake material, isolate the set
// from render, then restore everything and verify the scene is unchanged.
// Sets with issues, or that the mode cannot run on, are skipped.
func DryBake(sc *scene.Scene, sets []*bakeset.BakeSet, mode bakemode.Mode, h Host, cfg *config.Config, log *logging.Logger) BakeResult {
	var res BakeResult
	for _, set := range sets {
		if set.HasIssues {
			log.Warn("Skip bake %s: %s", set.Name, set.Issue.Message())
			res.Skipped++
			continue
		}
		if err := mode.CheckSet(set); err != nil {
			log.Warn("Skip bake: %v", err)
			res.Skipped++
			continue
		}
		if err := bakeSet(sc, set, mode, h, cfg, log); err != nil {
			log.Error("Bake %s failed: %v", set.Name, err)
			res.Failed++
			continue
		}
		res.RoundTrips++
	}
	return res
}

// bakeSet performs one backup → swap → isolate → restore → verify cycle.
// The session is restored even when the swap fails part way.
func bakeSet(sc *scene.Scene, set *bakeset.BakeSet, mode bakemode.Mode, h Host, cfg *config.Config, log *logging.Logger) error {
	before := fingerprint(sc)
	sess := snapshot.NewSession(
		snapshot.WithEditor(h),
		snapshot.WithLogger(log, cfg.Verbose),
		snapshot.WithMarker(cfg.BackupMarker),
	)
	log.Debug(cfg.Verbose, "Session %s: set %s", sess.ID(), set.Name)

	texture := mode.TextureName(set)
	err := swap(sess, h, set.Low, texture)
	if err == nil {
		var iso *snapshot.Isolation
		if cfg.Isolate {
			iso = snapshot.Isolate(sc.Objects, bakeset.Members([]*bakeset.BakeSet{set}))
			log.Debug(cfg.Verbose, "  Hid %s from render", display.FormatCount(len(iso.Hidden()), "object"))
		}
		log.Bake("%s -> %s (%s onto %s)", set.Name, texture,
			display.FormatCount(len(set.High), "source"), display.FormatCount(len(set.Low), "target"))
		if iso != nil {
			iso.Restore()
		}
	}

	if rerr := sess.RestoreAll(); rerr != nil {
		err = errors.Join(err, rerr)
	}
	if err != nil {
		return err
	}
	return verify(sc, before)
}

// swap backs up each target and then assigns the bake material to it.
func swap(sess *snapshot.Session, m host.Materials, targets []*scene.Object, texture string) error {
	for _, obj := range targets {
		if err := sess.Backup(obj); err != nil {
			return err
		}
		if err := m.AssignBakeMaterial(obj, texture); err != nil {
			return err
		}
	}
	return nil
}

// objectState is the part of an object a dry bake must leave unchanged.
type objectState struct {
	materials  scene.MaterialState
	hideRender bool
}

// fingerprint captures the state of every scene object, aligned with
// sc.Objects.
func fingerprint(sc *scene.Scene) []objectState {
	out := make([]objectState, len(sc.Objects))
	for i, o := range sc.Objects {
		out[i] = objectState{materials: o.MaterialState(), hideRender: o.HideRender}
	}
	return out
}

func verify(sc *scene.Scene, before []objectState) error {
	after := fingerprint(sc)
	var errs []error
	for i, o := range sc.Objects {
		if !before[i].materials.Equal(after[i].materials) {
			errs = append(errs, fmt.Errorf("%q materials: %w", o.Name, ErrRoundTrip))
		}
		if before[i].hideRender != after[i].hideRender {
			errs = append(errs, fmt.Errorf("%q render visibility: %w", o.Name, ErrRoundTrip))
		}
	}
	return errors.Join(errs...)
}
