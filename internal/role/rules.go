package role

import (
	"github.com/backmassage/bakesmith/internal/naming"
	"github.com/backmassage/bakesmith/internal/scene"
)

// Input is what a rule sees: the object, its base-name tokens, and the
// active selection.
type Input struct {
	Object    *scene.Object
	Tokens    []string
	Selection []*scene.Object
}

// Rule pairs a role with the condition that assigns it. Rules are evaluated
// in order by [Classify]; first match wins.
type Rule struct {
	Name  string
	Role  Role
	Match func(in Input) bool
}

// Rules is the ordered decision table. A float marker beats every other
// marker. Modifier inference precedes name keywords and only applies when
// more than one object is selected.
var Rules = []Rule{
	{
		Name:  "float by name",
		Role:  Float,
		Match: func(in Input) bool { return naming.FloatKeywords.Matches(in.Tokens) },
	},
	{
		Name:  "high by modifier",
		Role:  High,
		Match: func(in Input) bool { return len(in.Selection) > 1 && hasHighModifier(in.Object) },
	},
	{
		Name:  "high by name",
		Role:  High,
		Match: func(in Input) bool { return naming.HighKeywords.Matches(in.Tokens) },
	},
	{
		Name:  "cage by name",
		Role:  Cage,
		Match: func(in Input) bool { return naming.CageKeywords.Matches(in.Tokens) },
	},
	{
		Name:  "low by name",
		Role:  Low,
		Match: func(in Input) bool { return naming.LowKeywords.Matches(in.Tokens) },
	},
}

// DefaultRule names the fallback applied when no rule matches.
const DefaultRule = "default"

// hasHighModifier reports a subsurf modifier that subdivides at render time
// or any bevel modifier.
func hasHighModifier(obj *scene.Object) bool {
	for _, m := range obj.Modifiers {
		switch m.Kind {
		case scene.ModifierSubsurf:
			if m.RenderLevels() > 0 {
				return true
			}
		case scene.ModifierBevel:
			return true
		}
	}
	return false
}
