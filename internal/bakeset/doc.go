// Package bakeset groups a selection into bake sets and validates them.
//
// Implemented:
//   - BakeSet, IssueCode (types.go)
//   - Resolve: classify → cluster by logical name → partition by role →
//     sort by name (resolve.go)
//   - New: set construction with validation (validate.go)
//   - Members, BakedImages: helpers for the bake driver (members.go)
package bakeset
