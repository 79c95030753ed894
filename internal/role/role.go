// Package role classifies scene objects into their structural role within a
// bake: the low-poly target, a high-poly source, a projection cage, or a
// floating decal.
package role

import "fmt"

// Role is the structural classification of an object in a bake. It is
// derived per run and never stored on the object.
type Role string

const (
	Low   Role = "low"
	High  Role = "high"
	Cage  Role = "cage"
	Float Role = "float"
)

// All lists the roles in bake-set field order.
var All = []Role{Low, Cage, High, Float}

func (r Role) String() string { return string(r) }

// Parse converts a role name into a Role.
func Parse(s string) (Role, error) {
	switch Role(s) {
	case Low, High, Cage, Float:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q (use low, high, cage or float)", s)
}
