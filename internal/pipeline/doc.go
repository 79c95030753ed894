// Package pipeline orchestrates scene discovery, per-scene bake set
// resolution, reporting, the optional dry bake, and batch summary
// reporting.
//
// Files:
//   - discover.go: scene file discovery
//   - runner.go: Run / RunTo batch loop and per-scene processing
//   - bake.go: DryBake backup, swap, isolate, restore, verify round trip
//   - report.go: Report model and YAML / JSON writers
//   - table.go: text table of bake sets
//   - stats.go: RunStats counters
//   - watch.go: Watch re-runs the batch on scene file changes
package pipeline
