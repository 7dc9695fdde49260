package pokepedia

import (
	"fmt"
	"strings"

	"github.com/BielosX/wombat/pokepedia/src/apperrors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numberPrinter groups digits the English way ("1,000"). Printers are not
// safe for concurrent use, so each caller gets its own.
func numberPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// MoveGenerationRecord is a move's stats as they were in one generation.
type MoveGenerationRecord struct {
	accuracy    int
	hasAccuracy bool
	power       int
	hasPower    bool
	pp          int
	damageClass DamageClass
	elementType ElementType
	generation  Generation
}

// NewMoveGenerationRecord validates and copies the given stats. A nil
// accuracy or power means the move has none (most status moves).
func NewMoveGenerationRecord(
	accuracy *int,
	power *int,
	pp int,
	damageClass DamageClass,
	elementType ElementType,
	generation Generation,
) (MoveGenerationRecord, error) {
	var record MoveGenerationRecord
	if pp < 0 {
		return record, apperrors.Validationf("pp is negative: %d", pp)
	}
	if accuracy != nil && (*accuracy < 0 || *accuracy > 100) {
		return record, apperrors.Validationf("accuracy is out of range: %d", *accuracy)
	}
	if power != nil && *power < 0 {
		return record, apperrors.Validationf("power is negative: %d", *power)
	}
	if !damageClass.Valid() {
		return record, apperrors.Validationf("damage class is missing")
	}
	if !elementType.Valid() {
		return record, apperrors.Validationf("element type is missing")
	}
	if !generation.Valid() {
		return record, apperrors.Validationf("generation is missing")
	}
	record = MoveGenerationRecord{
		pp:          pp,
		damageClass: damageClass,
		elementType: elementType,
		generation:  generation,
	}
	if accuracy != nil {
		record.accuracy, record.hasAccuracy = *accuracy, true
	}
	if power != nil {
		record.power, record.hasPower = *power, true
	}
	return record, nil
}

func (r MoveGenerationRecord) Accuracy() (int, bool) {
	return r.accuracy, r.hasAccuracy
}

func (r MoveGenerationRecord) Power() (int, bool) {
	return r.power, r.hasPower
}

func (r MoveGenerationRecord) PP() int {
	return r.pp
}

func (r MoveGenerationRecord) DamageClass() DamageClass {
	return r.damageClass
}

func (r MoveGenerationRecord) ElementType() ElementType {
	return r.elementType
}

func (r MoveGenerationRecord) Generation() Generation {
	return r.generation
}

// sameStats compares everything except the generation.
func (r MoveGenerationRecord) sameStats(other MoveGenerationRecord) bool {
	return r.hasAccuracy == other.hasAccuracy && r.accuracy == other.accuracy &&
		r.hasPower == other.hasPower && r.power == other.power &&
		r.pp == other.pp &&
		r.damageClass == other.damageClass &&
		r.elementType == other.elementType
}

// withGeneration copies r under another generation.
func (r MoveGenerationRecord) withGeneration(generation Generation, damageClass DamageClass) MoveGenerationRecord {
	r.generation = generation
	r.damageClass = damageClass
	return r
}

func (r MoveGenerationRecord) PowerString() string {
	return r.powerString(numberPrinter())
}

func (r MoveGenerationRecord) AccuracyString() string {
	return r.accuracyString(numberPrinter())
}

func (r MoveGenerationRecord) PPString() string {
	return r.ppString(numberPrinter())
}

func (r MoveGenerationRecord) powerString(p *message.Printer) string {
	if !r.hasPower {
		return ""
	}
	return p.Sprintf("%d", r.power)
}

func (r MoveGenerationRecord) accuracyString(p *message.Printer) string {
	if !r.hasAccuracy {
		return ""
	}
	return p.Sprintf("%d%%", r.accuracy)
}

func (r MoveGenerationRecord) ppString(p *message.Printer) string {
	return p.Sprintf("%dpp", r.pp)
}

// String renders e.g. "G1: 💪 40, 🎯 100%, 35pp, normal type, physical".
func (r MoveGenerationRecord) String() string {
	p := numberPrinter()
	var b strings.Builder
	fmt.Fprintf(&b, "%s: ", r.generation)
	if r.hasPower {
		fmt.Fprintf(&b, "💪 %s, ", r.powerString(p))
	}
	if r.hasAccuracy {
		fmt.Fprintf(&b, "🎯 %s, ", r.accuracyString(p))
	}
	fmt.Fprintf(&b, "%s, %s type, %s",
		r.ppString(p),
		strings.ToLower(r.elementType.EmojiOrDisplayName()),
		strings.ToLower(r.damageClass.DisplayName()))
	return b.String()
}
