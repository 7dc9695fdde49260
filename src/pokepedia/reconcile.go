package pokepedia

import (
	"slices"

	"github.com/BielosX/wombat/pokepedia/src/apperrors"
	"github.com/BielosX/wombat/pokepedia/src/pokeapi"
)

// moveStats is the accumulator of the past_values fold. damageClass starts
// as the declared class and is replaced by the type-based one once an early
// generation is reached; it is never switched back.
type moveStats struct {
	accuracy    *int
	power       *int
	pp          int
	elementType ElementType
	damageClass DamageClass
}

// gen4FallbackCandidates lists, in priority order, the generations whose
// record seeds a missing Generation 4 entry.
var gen4FallbackCandidates = []Generation{Generation3, Generation2, Generation1}

// ReconcileGenerations rebuilds the stats a move had in every generation
// where they differ from the generation before. The payload carries the
// current stats and a list of past values; the list is walked from its
// end, recording the current stats and then undoing each recorded change.
func ReconcileGenerations(payload *pokeapi.MoveResponse) (GenerationRecords, error) {
	if payload == nil {
		return nil, apperrors.Dataf("move payload is missing")
	}
	stats, err := currentStats(payload)
	if err != nil {
		return nil, err
	}
	if payload.Generation == nil || payload.Generation.Name == "" {
		return nil, apperrors.Dataf("move %q has no generation", payload.Name)
	}
	records := make(GenerationRecords)

	for _, past := range slices.Backward(payload.PastValues) {
		if past.VersionGroup == nil {
			return nil, apperrors.Dataf("move %q has a past value without a version group", payload.Name)
		}
		generation, err := ParseGeneration(past.VersionGroup.Name)
		if err != nil {
			return nil, err
		}
		stats = stats.at(generation)
		record, err := stats.record(generation)
		if err != nil {
			return nil, err
		}
		records[generation] = record
		if stats, err = stats.rollBack(past); err != nil {
			return nil, err
		}
	}

	generation, err := ParseGeneration(payload.Generation.Name)
	if err != nil {
		return nil, err
	}
	stats = stats.at(generation)
	record, err := stats.record(generation)
	if err != nil {
		return nil, err
	}
	records[generation] = record

	fillGeneration4(records, stats.damageClass)
	collapseDuplicates(records)
	return records, nil
}

func currentStats(payload *pokeapi.MoveResponse) (moveStats, error) {
	if payload.PP == nil {
		return moveStats{}, apperrors.Dataf("move %q has no pp", payload.Name)
	}
	if payload.DamageClass == nil {
		return moveStats{}, apperrors.Dataf("move %q has no damage class", payload.Name)
	}
	if payload.Type == nil {
		return moveStats{}, apperrors.Dataf("move %q has no type", payload.Name)
	}
	damageClass, err := ParseDamageClass(payload.DamageClass.Name)
	if err != nil {
		return moveStats{}, err
	}
	elementType, err := ParseElementType(payload.Type.Name)
	if err != nil {
		return moveStats{}, err
	}
	return moveStats{
		accuracy:    payload.Accuracy,
		power:       payload.Power,
		pp:          *payload.PP,
		elementType: elementType,
		damageClass: damageClass,
	}, nil
}

// at applies the early-generation damage class rule for generation.
func (s moveStats) at(generation Generation) moveStats {
	s.damageClass = damageClassFor(s.damageClass, s.elementType, generation)
	return s
}

func (s moveStats) record(generation Generation) (MoveGenerationRecord, error) {
	return NewMoveGenerationRecord(
		s.accuracy,
		s.power,
		s.pp,
		s.damageClass,
		s.elementType,
		generation,
	)
}

// rollBack returns the stats as they were before past was applied. Only
// fields past carries are replaced.
func (s moveStats) rollBack(past pokeapi.MovePastValues) (moveStats, error) {
	if past.Accuracy != nil {
		s.accuracy = past.Accuracy
	}
	if past.Power != nil {
		s.power = past.Power
	}
	if past.PP != nil {
		s.pp = *past.PP
	}
	if past.Type != nil {
		elementType, err := ParseElementType(past.Type.Name)
		if err != nil {
			return s, err
		}
		s.elementType = elementType
	}
	return s, nil
}

// fillGeneration4 adds a Generation 4 entry when the nearest earlier
// generation's damage class differs from damageClass, the class the fold
// ended with. The catalog does not always record that change as a past value.
func fillGeneration4(records GenerationRecords, damageClass DamageClass) {
	if _, ok := records[Generation4]; ok {
		return
	}
	for _, candidate := range gen4FallbackCandidates {
		previous, ok := records[candidate]
		if !ok {
			continue
		}
		if previous.DamageClass() != damageClass {
			records[Generation4] = previous.withGeneration(Generation4, damageClass)
		}
		return
	}
}

// collapseDuplicates drops every generation whose stats equal the last kept one.
func collapseDuplicates(records GenerationRecords) {
	var kept *MoveGenerationRecord
	for _, generation := range AllGenerations() {
		record, ok := records[generation]
		if !ok {
			continue
		}
		if kept != nil && kept.sameStats(record) {
			delete(records, generation)
			continue
		}
		kept = &record
	}
}
