package naming

import "strings"

// Separators are the characters that split a name into tokens.
const Separators = " _.-"

func isSeparator(r rune) bool { return strings.ContainsRune(Separators, r) }

// Tokenize lowercases name and splits it on [Separators]. Runs of separators
// never produce empty tokens, so "a__b" and "a_b" tokenize identically.
func Tokenize(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), isSeparator)
}

// StripDuplicateSuffix removes the numbering the host appends to duplicated
// datablocks, e.g. "Cube.002" → "Cube". Only a period followed by exactly
// three digits is recognized; "Cube.02" and "Cube.0002" are left alone.
func StripDuplicateSuffix(name string) string {
	n := len(name)
	if n < 4 || name[n-4] != '.' {
		return name
	}
	for i := n - 3; i < n; i++ {
		if name[i] < '0' || name[i] > '9' {
			return name
		}
	}
	return name[:n-4]
}
