package pokeapi

type NamedResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
}

type LocalizedName struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

// MovePastValues holds the stats a move had up to VersionGroup.
// Pointer fields are nullable and only set when that stat changed.
type MovePastValues struct {
	Accuracy     *int           `json:"accuracy"`
	Power        *int           `json:"power"`
	PP           *int           `json:"pp"`
	Type         *NamedResource `json:"type"`
	VersionGroup *NamedResource `json:"version_group"`
}

type MoveResponse struct {
	Id                *int              `json:"id"`
	Name              string            `json:"name"`
	Accuracy          *int              `json:"accuracy"`
	Power             *int              `json:"power"`
	PP                *int              `json:"pp"`
	DamageClass       *NamedResource    `json:"damage_class"`
	Type              *NamedResource    `json:"type"`
	Generation        *NamedResource    `json:"generation"`
	PastValues        []MovePastValues  `json:"past_values"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
	Names             []LocalizedName   `json:"names"`
}

type PokemonType struct {
	Slot int32         `json:"slot"`
	Type NamedResource `json:"type"`
}

type PokemonPastType struct {
	Generation NamedResource `json:"generation"`
	Types      []PokemonType `json:"types"`
}

type PokemonResponse struct {
	Id        *int              `json:"id"`
	Name      string            `json:"name"`
	Species   *NamedResource    `json:"species"`
	Types     []PokemonType     `json:"types"`
	PastTypes []PokemonPastType `json:"past_types"`
}

type PokemonSpecies struct {
	Name       string         `json:"name"`
	Generation *NamedResource `json:"generation"`
}
