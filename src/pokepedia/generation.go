package pokepedia

import (
	"fmt"

	"github.com/BielosX/wombat/pokepedia/src/apperrors"
)

type Generation int

const (
	Generation1 Generation = iota + 1
	Generation2
	Generation3
	Generation4
	Generation5
	Generation6
	Generation7
	Generation8
)

var versionGroups = map[string]Generation{
	"red-blue":      Generation1,
	"yellow":        Generation1,
	"generation-i":  Generation1,
	"gold-silver":   Generation2,
	"crystal":       Generation2,
	"generation-ii": Generation2,

	"ruby-sapphire":     Generation3,
	"emerald":           Generation3,
	"firered-leafgreen": Generation3,
	"colosseum":         Generation3,
	"xd":                Generation3,
	"generation-iii":    Generation3,

	"diamond-pearl":        Generation4,
	"platinum":             Generation4,
	"heartgold-soulsilver": Generation4,
	"generation-iv":        Generation4,

	"black-white":     Generation5,
	"black-2-white-2": Generation5,
	"generation-v":    Generation5,

	"x-y":                       Generation6,
	"omega-ruby-alpha-sapphire": Generation6,
	"generation-vi":             Generation6,

	"sun-moon":                      Generation7,
	"ultra-sun-ultra-moon":          Generation7,
	"lets-go-pikachu-lets-go-eevee": Generation7,
	"generation-vii":                Generation7,

	"sword-shield":                    Generation8,
	"brilliant-diamond-shining-pearl": Generation8,
	"legends-arceus":                  Generation8,
	"generation-viii":                 Generation8,
}

// AllGenerations lists the generations in canonical order.
func AllGenerations() []Generation {
	return []Generation{
		Generation1, Generation2, Generation3, Generation4,
		Generation5, Generation6, Generation7, Generation8,
	}
}

// LookupGeneration resolves a version group or generation code.
func LookupGeneration(code string) (Generation, bool) {
	generation, ok := versionGroups[code]
	return generation, ok
}

// ParseGeneration resolves code like LookupGeneration but falls back to
// Generation1 for codes it does not know. Only an empty code fails.
func ParseGeneration(code string) (Generation, error) {
	if code == "" {
		return 0, apperrors.Parsef("generation code is empty")
	}
	if generation, ok := LookupGeneration(code); ok {
		return generation, nil
	}
	return Generation1, nil
}

func (g Generation) Valid() bool {
	return g >= Generation1 && g <= Generation8
}

// IsEarly reports whether damage class was still decided by element type.
func (g Generation) IsEarly() bool {
	return g >= Generation1 && g <= Generation3
}

func (g Generation) Number() int {
	return int(g)
}

func (g Generation) DisplayName() string {
	return fmt.Sprintf("Generation %d", g)
}

// String returns the short form used in move summaries, e.g. "G4".
func (g Generation) String() string {
	return fmt.Sprintf("G%d", g)
}
