// Package snapshot checkpoints and restores the material assignment of
// objects around a bake.
//
// A [Session] is an explicit, caller-scoped record: [Session.Backup]
// captures, per object, each slot's material and the set of faces assigned
// to that slot; [Session.RestoreAll] puts every captured object back and
// drains the session. While captured, materials carry a name marker
// ("backup_" by default) so other tooling does not mistake them for live
// materials. An object has at most one live snapshot per session; backing
// it up again replaces the earlier one.
//
// Sessions are not safe for concurrent use, and one session must not span
// two overlapping bake runs over the same objects.
package snapshot
