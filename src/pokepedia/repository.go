package pokepedia

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/BielosX/wombat/pokepedia/src/apperrors"
	"github.com/BielosX/wombat/pokepedia/src/pokeapi"
	"github.com/BielosX/wombat/pokepedia/src/utils"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultLanguage = "en"

// Catalog is the remote move and species catalog; *pokeapi.Client implements it.
type Catalog interface {
	FetchMove(ctx context.Context, name string) (*pokeapi.MoveResponse, error)
	FetchMoves(ctx context.Context, names []string) ([]*pokeapi.MoveResponse, error)
	FetchPokemon(ctx context.Context, name string) (*pokeapi.PokemonResponse, error)
	FetchSpecies(ctx context.Context, species pokeapi.NamedResource) (*pokeapi.PokemonSpecies, error)
}

type Repository struct {
	catalog  Catalog
	sugar    *zap.SugaredLogger
	language string
}

func NewRepository(catalog Catalog, sugar *zap.SugaredLogger, language string) *Repository {
	if language == "" {
		language = DefaultLanguage
	}
	return &Repository{
		catalog:  catalog,
		sugar:    sugar,
		language: language,
	}
}

func (r *Repository) SearchMove(ctx context.Context, name string) (*Move, error) {
	r.sugar.Infof("Searching for Move %q", name)
	payload, err := r.catalog.FetchMove(ctx, name)
	if err != nil {
		return nil, err
	}
	move, err := r.toMove(payload)
	if err != nil {
		return nil, err
	}
	return &move, nil
}

// SearchMoves looks up every name; the first failure aborts the whole batch.
func (r *Repository) SearchMoves(ctx context.Context, names []string) ([]Move, error) {
	r.sugar.Infof("Searching for %d Moves", len(names))
	payloads, err := r.catalog.FetchMoves(ctx, names)
	if err != nil {
		return nil, err
	}
	moves := make([]Move, 0, len(payloads))
	for _, payload := range payloads {
		move, err := r.toMove(payload)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}

func (r *Repository) toMove(payload *pokeapi.MoveResponse) (Move, error) {
	if payload == nil {
		return Move{}, apperrors.Dataf("move payload is missing")
	}
	if payload.Id == nil {
		return Move{}, apperrors.Dataf("move %q has no id", payload.Name)
	}
	if payload.Name == "" {
		return Move{}, apperrors.Dataf("move %d has no name", *payload.Id)
	}
	r.warnUnknownVersionGroups(payload)
	records, err := ReconcileGenerations(payload)
	if err != nil {
		return Move{}, err
	}
	return NewMove(
		*payload.Id,
		r.localizedName(payload.Names, payload.Name),
		payload.Name,
		r.localizedDescription(payload.FlavorTextEntries),
		records,
	)
}

// warnUnknownVersionGroups reports codes that ParseGeneration will silently
// file under Generation 1.
func (r *Repository) warnUnknownVersionGroups(payload *pokeapi.MoveResponse) {
	for _, past := range payload.PastValues {
		if past.VersionGroup == nil || past.VersionGroup.Name == "" {
			continue
		}
		if _, ok := LookupGeneration(past.VersionGroup.Name); !ok {
			r.sugar.Warnf("Unknown version group %q in Move %q, treating it as %s",
				past.VersionGroup.Name, payload.Name, Generation1.DisplayName())
		}
	}
	if payload.Generation != nil && payload.Generation.Name != "" {
		if _, ok := LookupGeneration(payload.Generation.Name); !ok {
			r.sugar.Warnf("Unknown generation %q in Move %q, treating it as %s",
				payload.Generation.Name, payload.Name, Generation1.DisplayName())
		}
	}
}

func (r *Repository) localizedName(names []pokeapi.LocalizedName, rawName string) string {
	for _, name := range names {
		if name.Language.Name == r.language {
			if cleaned := utils.CleanStr(name.Name); cleaned != "" {
				return cases.Title(language.English).String(cleaned)
			}
		}
	}
	return titleCase(rawName)
}

// localizedDescription returns the first flavor text in the repository's
// language, or "" when the catalog has none.
func (r *Repository) localizedDescription(entries []pokeapi.FlavorTextEntry) string {
	for _, entry := range entries {
		if entry.Language.Name == r.language {
			return utils.CleanStr(entry.FlavorText)
		}
	}
	return ""
}

// titleCase turns a catalog key such as "fire-punch" into "Fire Punch".
func titleCase(rawName string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(rawName, "-", " "))
}

func (r *Repository) SearchPokemon(ctx context.Context, name string) (*Pokemon, error) {
	r.sugar.Infof("Searching for Pokemon %q", name)
	payload, err := r.catalog.FetchPokemon(ctx, name)
	if err != nil {
		return nil, err
	}
	if payload.Id == nil {
		return nil, apperrors.Dataf("pokemon %q has no id", payload.Name)
	}
	if payload.Name == "" {
		return nil, apperrors.Dataf("pokemon %d has no name", *payload.Id)
	}
	if payload.Species == nil {
		return nil, apperrors.Dataf("pokemon %q has no species", payload.Name)
	}
	species, err := r.catalog.FetchSpecies(ctx, *payload.Species)
	if err != nil {
		return nil, err
	}
	if species.Generation == nil {
		return nil, apperrors.Dataf("species %q has no generation", species.Name)
	}
	introducedIn, err := ParseGeneration(species.Generation.Name)
	if err != nil {
		return nil, err
	}
	elementTypes, err := generationElementTypes(payload, introducedIn)
	if err != nil {
		return nil, err
	}
	pokemon, err := NewPokemon(*payload.Id, titleCase(payload.Name), payload.Name, introducedIn, elementTypes)
	if err != nil {
		return nil, err
	}
	return &pokemon, nil
}

// generationElementTypes keys each typing by the first generation it
// applied in. A past_types entry holds the typing used up to and including
// its generation; the current typing applies after the last one.
func generationElementTypes(payload *pokeapi.PokemonResponse, introducedIn Generation) (GenerationElementTypes, error) {
	result := make(GenerationElementTypes)
	from := introducedIn
	for _, past := range payload.PastTypes {
		until, err := ParseGeneration(past.Generation.Name)
		if err != nil {
			return nil, err
		}
		if until < from {
			continue
		}
		types, err := parseTypes(past.Types)
		if err != nil {
			return nil, err
		}
		result[from] = types
		from = until + 1
	}
	if from > Generation8 {
		return result, nil
	}
	types, err := parseTypes(payload.Types)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, apperrors.Dataf("pokemon %q has no types", payload.Name)
	}
	result[from] = types
	return result, nil
}

func parseTypes(entries []pokeapi.PokemonType) ([]ElementType, error) {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b pokeapi.PokemonType) int {
		return cmp.Compare(a.Slot, b.Slot)
	})
	types := make([]ElementType, 0, len(sorted))
	for _, entry := range sorted {
		t, err := ParseElementType(entry.Type.Name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
