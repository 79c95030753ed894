package naming

import (
	"strings"

	"github.com/backmassage/bakesmith/internal/scene"
)

// EffectiveBaseName resolves the name an object is grouped under, lowercased
// and with any duplicate suffix stripped:
//
//  1. the parent's name, when the parent is part of selection;
//  2. else the collection name, when the object is in exactly one collection;
//  3. else the object's own name.
func EffectiveBaseName(obj *scene.Object, selection []*scene.Object) string {
	var name string
	switch {
	case obj.Parent != nil && scene.Contains(selection, obj.Parent):
		name = obj.Parent.Name
	case len(obj.Collections) == 1:
		name = obj.Collections[0]
	default:
		name = obj.Name
	}
	return strings.ToLower(StripDuplicateSuffix(name))
}

// BaseTokens tokenizes the effective base name. Role detection matches
// keywords against these tokens.
func BaseTokens(obj *scene.Object, selection []*scene.Object) []string {
	return Tokenize(EffectiveBaseName(obj, selection))
}

// LogicalName is the grouping key of an object: its base tokens with role
// keywords removed, joined by "_".
func LogicalName(obj *scene.Object, selection []*scene.Object) string {
	return StripKeywords(BaseTokens(obj, selection))
}

// StripKeywords drops role keywords from tokens and joins the rest with "_".
// Leading keywords are skipped; once a word has been kept, the next keyword
// ends the name, so trailing words after a role marker are discarded
// ("left_low_arm" → "left").
func StripKeywords(tokens []string) string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !IsKeyword(tok) {
			kept = append(kept, tok)
			continue
		}
		if len(kept) > 0 {
			break
		}
	}
	return strings.Join(kept, "_")
}
