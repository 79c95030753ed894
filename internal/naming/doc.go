// Package naming turns free-text object names into the keys bake resolution
// works with: lowercase tokens, effective base names, and logical names.
//
// Types:
//   - KeywordSet (role keyword table: low, high, cage, float)
//
// Functions:
//   - Tokenize(name) → []string
//     Split on space, underscore, period, hyphen; lowercase; drop empties.
//   - StripDuplicateSuffix(name) → string
//     Remove a host duplicate suffix ".NNN" (exactly three digits).
//   - EffectiveBaseName(obj, selection) → string
//     Parent in selection > single collection > own name.
//   - LogicalName(obj, selection) → string
//     Base name tokens with role keywords removed, joined by "_".
//   - TextureName(set, mode) / MatchesSet(image, set)
//     Naming convention for baked images.
package naming
