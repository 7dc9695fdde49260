package pokepedia

import "github.com/BielosX/wombat/pokepedia/src/apperrors"

type DamageClass int

const (
	Physical DamageClass = iota + 1
	Special
	Status
)

var damageClasses = [...]struct {
	code        string
	displayName string
}{
	Physical: {"physical", "Physical"},
	Special:  {"special", "Special"},
	Status:   {"status", "Status"},
}

func ParseDamageClass(code string) (DamageClass, error) {
	if code == "" {
		return 0, apperrors.Parsef("damage class code is empty")
	}
	for c := Physical; c <= Status; c++ {
		if damageClasses[c].code == code {
			return c, nil
		}
	}
	return 0, apperrors.Parsef("unknown damage class %q", code)
}

func (c DamageClass) Valid() bool {
	return c >= Physical && c <= Status
}

func (c DamageClass) Code() string {
	if !c.Valid() {
		return "unknown"
	}
	return damageClasses[c].code
}

func (c DamageClass) DisplayName() string {
	if !c.Valid() {
		return "Unknown"
	}
	return damageClasses[c].displayName
}

func (c DamageClass) String() string {
	return c.DisplayName()
}

// TypeBasedDamageClass returns the class generations 1-3 assign to every
// damaging move of elementType. Fairy did not exist then and has none.
func TypeBasedDamageClass(elementType ElementType) (DamageClass, bool) {
	class := elementType.info().damageClass
	return class, class != 0
}

// damageClassFor applies the early-generation split to a declared class.
// Status moves keep their class in every generation.
func damageClassFor(declared DamageClass, elementType ElementType, generation Generation) DamageClass {
	if declared == Status || !generation.IsEarly() {
		return declared
	}
	if derived, ok := TypeBasedDamageClass(elementType); ok {
		return derived
	}
	return declared
}
