// Package pokepedia models moves and species and rebuilds a move's stats
// for every game generation from the catalog payload.
package pokepedia

import "github.com/BielosX/wombat/pokepedia/src/apperrors"

type ElementType int

const (
	Bug ElementType = iota + 1
	Dark
	Dragon
	Electric
	Fairy
	Fighting
	Fire
	Flying
	Ghost
	Grass
	Ground
	Ice
	Normal
	Poison
	Psychic
	Rock
	Steel
	Water
)

type elementTypeInfo struct {
	code        string
	displayName string
	emoji       string
	// damageClass is the gen 1-3 class of moves of this type, zero when there is none.
	damageClass DamageClass
}

var elementTypes = [...]elementTypeInfo{
	Bug:      {"bug", "Bug", "🐛", Physical},
	Dark:     {"dark", "Dark", "", Special},
	Dragon:   {"dragon", "Dragon", "🐲", Special},
	Electric: {"electric", "Electric", "⚡", Special},
	Fairy:    {"fairy", "Fairy", "", 0},
	Fighting: {"fighting", "Fighting", "🥊", Physical},
	Fire:     {"fire", "Fire", "🔥", Special},
	Flying:   {"flying", "Flying", "🐦", Physical},
	Ghost:    {"ghost", "Ghost", "👻", Physical},
	Grass:    {"grass", "Grass", "🍃", Special},
	Ground:   {"ground", "Ground", "", Physical},
	Ice:      {"ice", "Ice", "❄", Special},
	Normal:   {"normal", "Normal", "", Physical},
	Poison:   {"poison", "Poison", "🧪", Physical},
	Psychic:  {"psychic", "Psychic", "🧠", Special},
	Rock:     {"rock", "Rock", "", Physical},
	Steel:    {"steel", "Steel", "", Physical},
	Water:    {"water", "Water", "🌊", Special},
}

var elementTypesByCode = func() map[string]ElementType {
	result := make(map[string]ElementType, len(elementTypes))
	for _, t := range AllElementTypes() {
		result[t.Code()] = t
	}
	return result
}()

func AllElementTypes() []ElementType {
	result := make([]ElementType, 0, len(elementTypes)-1)
	for t := Bug; t <= Water; t++ {
		result = append(result, t)
	}
	return result
}

func ParseElementType(code string) (ElementType, error) {
	if code == "" {
		return 0, apperrors.Parsef("element type code is empty")
	}
	t, ok := elementTypesByCode[code]
	if !ok {
		return 0, apperrors.Parsef("unknown element type %q", code)
	}
	return t, nil
}

func (t ElementType) Valid() bool {
	return t >= Bug && t <= Water
}

func (t ElementType) info() elementTypeInfo {
	if !t.Valid() {
		return elementTypeInfo{code: "unknown", displayName: "Unknown"}
	}
	return elementTypes[t]
}

func (t ElementType) Code() string {
	return t.info().code
}

func (t ElementType) DisplayName() string {
	return t.info().displayName
}

func (t ElementType) String() string {
	return t.DisplayName()
}

// Emoji returns the glyph for t; not every type has one.
func (t ElementType) Emoji() (string, bool) {
	emoji := t.info().emoji
	return emoji, emoji != ""
}

func (t ElementType) EmojiOrDisplayName() string {
	if emoji, ok := t.Emoji(); ok {
		return emoji
	}
	return t.DisplayName()
}
