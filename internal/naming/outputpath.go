package naming

import "strings"

// TextureName is the image name a bake of set in mode is written to:
// "<set>_<mode>", e.g. "rock_normal_tangent".
func TextureName(set, mode string) string {
	return set + "_" + mode
}

// MatchesSet reports whether image was baked for set, i.e. the image name
// contains "<set>_".
func MatchesSet(image, set string) bool {
	return strings.Contains(image, set+"_")
}
