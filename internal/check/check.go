// Package check provides scene diagnostics (--check mode) and the
// pre-pipeline selection validation (CheckScene).
package check

import (
	"errors"
	"regexp"

	"github.com/backmassage/bakesmith/internal/bakemode"
	"github.com/backmassage/bakesmith/internal/bakeset"
	"github.com/backmassage/bakesmith/internal/config"
	"github.com/backmassage/bakesmith/internal/role"
	"github.com/backmassage/bakesmith/internal/scene"
)

// Sentinel errors returned by CheckScene when a scene has nothing to bake.
var (
	ErrEmptySelection = errors.New("no objects selected")
	ErrNoMeshSelected = errors.New("selection contains no mesh objects")
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

// numericSuffix matches a trailing ".<digits>" of any width.
var numericSuffix = regexp.MustCompile(`\.(\d+)$`)

// RunCheck runs the --check flow for one scene: selection, per-object role
// and rule, objects the resolver will skip or flag, and the configured bake
// mode. It applies cfg.Select to sc. This is informational only; it does
// not stop on failure.
func RunCheck(sc *scene.Scene, cfg *config.Config, log Logger) {
	log.Info("=== Scene Check: %s ===", sc.Source)

	ApplySelection(sc, cfg.Select, log)
	if err := CheckScene(sc); err != nil {
		log.Error("%v", err)
		return
	}

	sel := sc.Selection()
	log.Info("%d objects, %d selected", len(sc.Objects), len(sel))

	checkObjects(sel, cfg, log)
	checkLowUVs(sel, log)
	checkBakeMode(sel, cfg, log)
}

// ApplySelection replaces the scene selection with names when any are
// given, warning about each name that matches no object.
func ApplySelection(sc *scene.Scene, names []string, log Logger) {
	if len(names) == 0 {
		return
	}
	for _, name := range sc.Select(names) {
		if hint := sc.Suggest(name); hint != "" {
			log.Warn("Selected object %q not found (did you mean %q?)", name, hint)
		} else {
			log.Warn("Selected object %q not found", name)
		}
	}
}

// checkObjects reports non-mesh selections, slotless meshes, and suffixes
// that duplicate stripping will not remove.
func checkObjects(sel []*scene.Object, cfg *config.Config, log Logger) {
	for _, obj := range sel {
		if !obj.IsMesh() {
			log.Info("  %s: %s object, not grouped", obj.Name, obj.Type)
			continue
		}
		if len(obj.Slots) == 0 {
			log.Warn("  %s: no material slots", obj.Name)
		}
		if m := numericSuffix.FindStringSubmatch(obj.Name); m != nil && len(m[1]) != 3 {
			log.Warn("  %s: suffix %q is not a three digit duplicate suffix and stays in the name", obj.Name, m[0])
		}
	}
	for _, a := range bakeset.Classify(sel) {
		log.Debug(cfg.Verbose, "  %s: %s (%s) -> %s", a.Object.Name, a.Role, a.Rule, a.Logical)
	}
}

// checkLowUVs flags low objects that would give their set missing_uv_layer.
func checkLowUVs(sel []*scene.Object, log Logger) {
	missing := 0
	for _, a := range bakeset.Classify(sel) {
		if a.Role == role.Low && a.Object.UVLayerCount() == 0 {
			log.Warn("  %s: low object without UV layer", a.Object.Name)
			missing++
		}
	}
	if missing == 0 {
		log.Success("All low objects have UV layers")
	}
}

// checkBakeMode verifies the configured mode exists and can run on every
// resolved set.
func checkBakeMode(sel []*scene.Object, cfg *config.Config, log Logger) {
	mode, err := bakemode.Lookup(cfg.BakeMode)
	if err != nil {
		log.Error("%v (available: %v)", err, bakemode.Names())
		return
	}
	sets := bakeset.Resolve(sel)
	ok := true
	for _, s := range sets {
		if err := mode.CheckSet(s); err != nil {
			log.Warn("  %v", err)
			ok = false
		}
	}
	if ok {
		log.Success("Bake mode %s usable on %d sets", mode.Name, len(sets))
	}
}

// CheckScene is the pre-pipeline validation: the scene must have a
// selection and at least one selected mesh. Returns a sentinel error on
// failure.
func CheckScene(sc *scene.Scene) error {
	sel := sc.Selection()
	if len(sel) == 0 {
		return ErrEmptySelection
	}
	for _, obj := range sel {
		if obj.IsMesh() {
			return nil
		}
	}
	return ErrNoMeshSelected
}
