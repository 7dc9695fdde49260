package pokepedia

import (
	"slices"
	"strings"

	"github.com/BielosX/wombat/pokepedia/src/apperrors"
)

// GenerationElementTypes maps the generation a typing took effect in to that typing.
type GenerationElementTypes map[Generation][]ElementType

type Pokemon struct {
	pokedexId    int
	name         string
	rawName      string
	introducedIn Generation
	elementTypes GenerationElementTypes
}

func NewPokemon(pokedexId int, name, rawName string, introducedIn Generation, elementTypes GenerationElementTypes) (Pokemon, error) {
	if pokedexId <= 0 {
		return Pokemon{}, apperrors.Validationf("pokedex id must be positive: %d", pokedexId)
	}
	if name == "" || rawName == "" {
		return Pokemon{}, apperrors.Validationf("pokemon name is empty (pokedex id %d)", pokedexId)
	}
	if !introducedIn.Valid() {
		return Pokemon{}, apperrors.Validationf("pokemon %q has no introducing generation", rawName)
	}
	if len(elementTypes) == 0 {
		return Pokemon{}, apperrors.Validationf("pokemon %q has no element types", rawName)
	}
	owned := make(GenerationElementTypes, len(elementTypes))
	for generation, types := range elementTypes {
		if len(types) == 0 {
			return Pokemon{}, apperrors.Validationf("pokemon %q has no element types in %s", rawName, generation)
		}
		owned[generation] = append([]ElementType(nil), types...)
	}
	return Pokemon{
		pokedexId:    pokedexId,
		name:         name,
		rawName:      rawName,
		introducedIn: introducedIn,
		elementTypes: owned,
	}, nil
}

func (p Pokemon) PokedexId() int {
	return p.pokedexId
}

func (p Pokemon) PokedexIdString() string {
	return numberPrinter().Sprintf("%d", p.pokedexId)
}

func (p Pokemon) Name() string {
	return p.name
}

func (p Pokemon) RawName() string {
	return p.rawName
}

func (p Pokemon) IntroducedIn() Generation {
	return p.introducedIn
}

// ElementTypesIn returns the typing in effect during generation, or nil
// before the pokemon existed.
func (p Pokemon) ElementTypesIn(generation Generation) []ElementType {
	var current []ElementType
	for _, g := range AllGenerations() {
		if g > generation {
			break
		}
		if types, ok := p.elementTypes[g]; ok {
			current = types
		}
	}
	return append([]ElementType(nil), current...)
}

// Generations returns the generations where the typing changed, ascending.
func (p Pokemon) Generations() []Generation {
	result := make([]Generation, 0, len(p.elementTypes))
	for generation := range p.elementTypes {
		result = append(result, generation)
	}
	slices.Sort(result)
	return result
}

// TypesString renders a typing as "Normal/Flying".
func TypesString(types []ElementType) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.DisplayName())
	}
	return strings.Join(names, "/")
}

func (p Pokemon) String() string {
	return "#" + p.PokedexIdString() + " " + p.name
}
