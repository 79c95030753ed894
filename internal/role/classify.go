package role

import (
	"github.com/backmassage/bakesmith/internal/naming"
	"github.com/backmassage/bakesmith/internal/scene"
)

// Classify returns the role of obj within selection. It never fails: an
// object no rule recognizes is a low-poly target.
func Classify(obj *scene.Object, selection []*scene.Object) Role {
	r, _ := ClassifyWithRule(obj, selection)
	return r
}

// ClassifyWithRule is [Classify] that also reports which rule decided.
func ClassifyWithRule(obj *scene.Object, selection []*scene.Object) (Role, string) {
	in := Input{
		Object:    obj,
		Tokens:    naming.BaseTokens(obj, selection),
		Selection: selection,
	}
	for _, rule := range Rules {
		if rule.Match(in) {
			return rule.Role, rule.Name
		}
	}
	return Low, DefaultRule
}
