package naming

import "slices"

// KeywordSet is a list of name tokens that mark a structural role.
type KeywordSet []string

// Role keyword tables. Matching is exact against lowercase tokens.
var (
	LowKeywords   = KeywordSet{"lowpoly", "low", "lowp", "lp", "lo", "l"}
	HighKeywords  = KeywordSet{"highpoly", "high", "highp", "hp", "hi", "h"}
	CageKeywords  = KeywordSet{"cage", "c"}
	FloatKeywords = KeywordSet{"floater", "float", "f"}
)

// Has reports whether token is one of the keywords.
func (k KeywordSet) Has(token string) bool { return slices.Contains(k, token) }

// Matches reports whether any token is one of the keywords.
func (k KeywordSet) Matches(tokens []string) bool {
	return slices.ContainsFunc(tokens, k.Has)
}

// IsKeyword reports whether token belongs to any role keyword table.
func IsKeyword(token string) bool {
	return LowKeywords.Has(token) || HighKeywords.Has(token) ||
		CageKeywords.Has(token) || FloatKeywords.Has(token)
}
