package pokepedia

import (
	"fmt"
	"strings"

	"github.com/BielosX/wombat/pokepedia/src/apperrors"
)

// GenerationRecords maps each generation where a move's stats changed to
// the stats it had from then on.
type GenerationRecords map[Generation]MoveGenerationRecord

// Ordered returns the records in canonical generation order.
func (g GenerationRecords) Ordered() []MoveGenerationRecord {
	result := make([]MoveGenerationRecord, 0, len(g))
	for _, generation := range AllGenerations() {
		if record, ok := g[generation]; ok {
			result = append(result, record)
		}
	}
	return result
}

type Move struct {
	id          int
	name        string
	rawName     string
	description string
	records     GenerationRecords
}

// NewMove takes ownership of a copy of records.
func NewMove(id int, name, rawName, description string, records GenerationRecords) (Move, error) {
	if id <= 0 {
		return Move{}, apperrors.Validationf("move id must be positive: %d", id)
	}
	if name == "" {
		return Move{}, apperrors.Validationf("move name is empty (id %d)", id)
	}
	if rawName == "" {
		return Move{}, apperrors.Validationf("move raw name is empty (id %d)", id)
	}
	if len(records) == 0 {
		return Move{}, apperrors.Validationf("move %q has no generation records", rawName)
	}
	owned := make(GenerationRecords, len(records))
	for generation, record := range records {
		owned[generation] = record
	}
	return Move{
		id:          id,
		name:        name,
		rawName:     rawName,
		description: description,
		records:     owned,
	}, nil
}

func (m Move) Id() int {
	return m.id
}

func (m Move) Name() string {
	return m.name
}

func (m Move) RawName() string {
	return m.rawName
}

func (m Move) Description() string {
	return m.description
}

// Record returns the stats recorded for generation, if they changed there.
func (m Move) Record(generation Generation) (MoveGenerationRecord, bool) {
	record, ok := m.records[generation]
	return record, ok
}

// Records returns the records in canonical generation order.
func (m Move) Records() []MoveGenerationRecord {
	return m.records.Ordered()
}

// DisplayString joins every generation's summary with delimiter, e.g.
// "Tackle — G1: 💪 35, 🎯 95%, 35pp, normal type, physical; G5: ...".
func (m Move) DisplayString(delimiter string) string {
	records := m.Records()
	parts := make([]string, 0, len(records))
	for _, record := range records {
		parts = append(parts, record.String())
	}
	return fmt.Sprintf("%s — %s", m.name, strings.Join(parts, delimiter))
}

func (m Move) String() string {
	return m.DisplayString("; ")
}

// DisplayLines returns a heading with the description followed by one line per generation.
func (m Move) DisplayLines() []string {
	records := m.Records()
	lines := make([]string, 0, len(records)+1)
	if m.description != "" {
		lines = append(lines, fmt.Sprintf("%s — %s", m.name, m.description))
	} else {
		lines = append(lines, m.name)
	}
	for _, record := range records {
		lines = append(lines, record.String())
	}
	return lines
}
