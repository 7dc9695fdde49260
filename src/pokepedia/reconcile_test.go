package pokepedia

import (
	"errors"
	"testing"

	"github.com/BielosX/wombat/pokepedia/src/apperrors"
	"github.com/BielosX/wombat/pokepedia/src/pokeapi"
)

func resource(name string) *pokeapi.NamedResource {
	return &pokeapi.NamedResource{Name: name}
}

func movePayload(name string, accuracy, power *int, pp int, class, elementType, generation string, past ...pokeapi.MovePastValues) *pokeapi.MoveResponse {
	return &pokeapi.MoveResponse{
		Id:          ptr(1),
		Name:        name,
		Accuracy:    accuracy,
		Power:       power,
		PP:          &pp,
		DamageClass: resource(class),
		Type:        resource(elementType),
		Generation:  resource(generation),
		PastValues:  past,
	}
}

type expectedRecord struct {
	accuracy    *int
	power       *int
	pp          int
	class       DamageClass
	elementType ElementType
}

func assertRecords(t *testing.T, records GenerationRecords, expected map[Generation]expectedRecord) {
	t.Helper()
	if len(records) != len(expected) {
		t.Fatalf("expected generations %v, got %v", keys(expected), records.Ordered())
	}
	for generation, want := range expected {
		got, ok := records[generation]
		if !ok {
			t.Fatalf("missing %s in %v", generation, records.Ordered())
		}
		wantRecord := mustRecord(t, want.accuracy, want.power, want.pp, want.class, want.elementType, generation)
		if !got.sameStats(wantRecord) || got.Generation() != generation {
			t.Errorf("%s: expected %q, got %q", generation, wantRecord, got)
		}
	}
}

func keys(m map[Generation]expectedRecord) []Generation {
	var result []Generation
	for _, generation := range AllGenerations() {
		if _, ok := m[generation]; ok {
			result = append(result, generation)
		}
	}
	return result
}

func TestReconcileWithoutPastValues(t *testing.T) {
	payload := movePayload("tackle", ptr(100), ptr(40), 35, "physical", "normal", "generation-i")

	records, err := ReconcileGenerations(payload)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	assertRecords(t, records, map[Generation]expectedRecord{
		Generation1: {ptr(100), ptr(40), 35, Physical, Normal},
	})
}

func TestReconcileRollsBackOnlyOverriddenFields(t *testing.T) {
	payload := movePayload("flamethrower", ptr(100), ptr(90), 15, "special", "fire", "generation-i",
		pokeapi.MovePastValues{Power: ptr(95), VersionGroup: resource("x-y")},
	)

	records, err := ReconcileGenerations(payload)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	assertRecords(t, records, map[Generation]expectedRecord{
		Generation1: {ptr(100), ptr(95), 15, Special, Fire},
		Generation6: {ptr(100), ptr(90), 15, Special, Fire},
	})
}

func TestReconcileRollsBackElementType(t *testing.T) {
	payload := movePayload("bite", ptr(100), ptr(60), 25, "physical", "dark", "generation-i",
		pokeapi.MovePastValues{Type: resource("normal"), VersionGroup: resource("gold-silver")},
	)

	records, err := ReconcileGenerations(payload)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	assertRecords(t, records, map[Generation]expectedRecord{
		Generation1: {ptr(100), ptr(60), 25, Physical, Normal},
		Generation2: {ptr(100), ptr(60), 25, Special, Dark},
		Generation4: {ptr(100), ptr(60), 25, Physical, Dark},
	})
}

func TestReconcileLastInsertForGenerationWins(t *testing.T) {
	payload := movePayload("tackle", ptr(100), ptr(40), 35, "physical", "normal", "generation-i",
		pokeapi.MovePastValues{Power: ptr(50), VersionGroup: resource("x-y")},
		pokeapi.MovePastValues{Power: ptr(60), VersionGroup: resource("omega-ruby-alpha-sapphire")},
	)

	records, err := ReconcileGenerations(payload)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	assertRecords(t, records, map[Generation]expectedRecord{
		Generation1: {ptr(100), ptr(50), 35, Physical, Normal},
		Generation6: {ptr(100), ptr(60), 35, Physical, Normal},
	})
}

func TestReconcilePastValueWithoutOverridesCollapses(t *testing.T) {
	payload := movePayload("tackle", ptr(100), ptr(40), 35, "physical", "normal", "generation-i",
		pokeapi.MovePastValues{VersionGroup: resource("sun-moon")},
	)

	records, err := ReconcileGenerations(payload)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	assertRecords(t, records, map[Generation]expectedRecord{
		Generation1: {ptr(100), ptr(40), 35, Physical, Normal},
	})
}

func TestReconcileStatusIsNeverDerived(t *testing.T) {
	payload := movePayload("growl", ptr(100), nil, 40, "status", "normal", "generation-i",
		pokeapi.MovePastValues{Accuracy: ptr(90), VersionGroup: resource("crystal")},
	)

	records, err := ReconcileGenerations(payload)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	assertRecords(t, records, map[Generation]expectedRecord{
		Generation1: {ptr(90), nil, 40, Status, Normal},
		Generation2: {ptr(100), nil, 40, Status, Normal},
	})
}

func TestReconcileFairyIsNeverDerived(t *testing.T) {
	payload := movePayload("fairy-wind", ptr(100), ptr(40), 30, "special", "fairy", "generation-vi")

	records, err := ReconcileGenerations(payload)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	assertRecords(t, records, map[Generation]expectedRecord{
		Generation6: {ptr(100), ptr(40), 30, Special, Fairy},
	})
}

func TestGeneration4FixUp(t *testing.T) {
	tests := []struct {
		name     string
		payload  *pokeapi.MoveResponse
		expected map[Generation]expectedRecord
	}{
		{
			name:    "derived class holds from generation 1",
			payload: movePayload("fire-punch", ptr(100), ptr(75), 15, "physical", "fire", "generation-i"),
			expected: map[Generation]expectedRecord{
				Generation1: {ptr(100), ptr(75), 15, Special, Fire},
			},
		},
		{
			name: "split seeded from generation 3",
			payload: movePayload("odd", ptr(100), ptr(50), 20, "physical", "normal", "generation-i",
				pokeapi.MovePastValues{Type: resource("fire"), VersionGroup: resource("emerald")},
			),
			expected: map[Generation]expectedRecord{
				Generation1: {ptr(100), ptr(50), 20, Special, Fire},
				Generation3: {ptr(100), ptr(50), 20, Physical, Normal},
				Generation4: {ptr(100), ptr(50), 20, Special, Normal},
			},
		},
		{
			name: "nearest candidate decides alone",
			payload: movePayload("odd", ptr(100), ptr(50), 20, "physical", "fire", "generation-ii",
				pokeapi.MovePastValues{Type: resource("normal"), VersionGroup: resource("red-blue")},
			),
			expected: map[Generation]expectedRecord{
				Generation1: {ptr(100), ptr(50), 20, Special, Fire},
				Generation2: {ptr(100), ptr(50), 20, Physical, Normal},
			},
		},
		{
			name: "power change in generation 3 keeps derived class",
			payload: movePayload("fire-punch", ptr(100), ptr(75), 15, "physical", "fire", "generation-i",
				pokeapi.MovePastValues{Power: ptr(70), VersionGroup: resource("ruby-sapphire")},
			),
			expected: map[Generation]expectedRecord{
				Generation1: {ptr(100), ptr(70), 15, Special, Fire},
				Generation3: {ptr(100), ptr(75), 15, Special, Fire},
			},
		},
		{
			name: "existing generation 4 is kept",
			payload: movePayload("fire-punch", ptr(100), ptr(75), 15, "physical", "fire", "generation-i",
				pokeapi.MovePastValues{Power: ptr(60), VersionGroup: resource("diamond-pearl")},
			),
			expected: map[Generation]expectedRecord{
				Generation1: {ptr(100), ptr(60), 15, Special, Fire},
				Generation4: {ptr(100), ptr(75), 15, Physical, Fire},
			},
		},
		{
			name:    "same class needs no split",
			payload: movePayload("ember", ptr(100), ptr(40), 25, "special", "fire", "generation-i"),
			expected: map[Generation]expectedRecord{
				Generation1: {ptr(100), ptr(40), 25, Special, Fire},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ReconcileGenerations(tt.payload)
			if err != nil {
				t.Fatalf("reconcile: %v", err)
			}
			assertRecords(t, records, tt.expected)
		})
	}
}

func TestCollapseDuplicates(t *testing.T) {
	g1 := mustRecord(t, ptr(100), ptr(40), 35, Physical, Normal, Generation1)
	g2 := mustRecord(t, ptr(100), ptr(40), 35, Physical, Normal, Generation2)
	g3 := mustRecord(t, ptr(100), ptr(50), 35, Physical, Normal, Generation3)

	records := GenerationRecords{Generation1: g1, Generation2: g2, Generation3: g3}
	collapseDuplicates(records)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %v", records.Ordered())
	}
	if _, ok := records[Generation2]; ok {
		t.Fatalf("generation 2 duplicates generation 1 and must be removed")
	}
	if _, ok := records[Generation1]; !ok {
		t.Fatalf("generation 1 must be kept")
	}
	if _, ok := records[Generation3]; !ok {
		t.Fatalf("generation 3 must be kept")
	}
}

func TestCollapseDuplicatesKeepsReverts(t *testing.T) {
	g1 := mustRecord(t, ptr(100), ptr(40), 35, Physical, Normal, Generation1)
	g5 := mustRecord(t, ptr(100), ptr(50), 35, Physical, Normal, Generation5)
	g7 := mustRecord(t, ptr(100), ptr(40), 35, Physical, Normal, Generation7)

	records := GenerationRecords{Generation1: g1, Generation5: g5, Generation7: g7}
	collapseDuplicates(records)

	if len(records) != 3 {
		t.Fatalf("only adjacent duplicates collapse, got %v", records.Ordered())
	}
}

func TestReconcileErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload func() *pokeapi.MoveResponse
		kind    error
	}{
		{
			name:    "nil payload",
			payload: func() *pokeapi.MoveResponse { return nil },
			kind:    apperrors.ErrData,
		},
		{
			name: "missing pp",
			payload: func() *pokeapi.MoveResponse {
				p := movePayload("tackle", ptr(100), ptr(40), 35, "physical", "normal", "generation-i")
				p.PP = nil
				return p
			},
			kind: apperrors.ErrData,
		},
		{
			name: "missing damage class",
			payload: func() *pokeapi.MoveResponse {
				p := movePayload("tackle", ptr(100), ptr(40), 35, "physical", "normal", "generation-i")
				p.DamageClass = nil
				return p
			},
			kind: apperrors.ErrData,
		},
		{
			name: "missing generation",
			payload: func() *pokeapi.MoveResponse {
				p := movePayload("tackle", ptr(100), ptr(40), 35, "physical", "normal", "generation-i")
				p.Generation = nil
				return p
			},
			kind: apperrors.ErrData,
		},
		{
			name: "past value without version group",
			payload: func() *pokeapi.MoveResponse {
				return movePayload("tackle", ptr(100), ptr(40), 35, "physical", "normal", "generation-i",
					pokeapi.MovePastValues{Power: ptr(35)})
			},
			kind: apperrors.ErrData,
		},
		{
			name: "unknown element type",
			payload: func() *pokeapi.MoveResponse {
				return movePayload("tackle", ptr(100), ptr(40), 35, "physical", "plasma", "generation-i")
			},
			kind: apperrors.ErrParse,
		},
		{
			name: "unknown damage class",
			payload: func() *pokeapi.MoveResponse {
				return movePayload("tackle", ptr(100), ptr(40), 35, "magical", "normal", "generation-i")
			},
			kind: apperrors.ErrParse,
		},
		{
			name: "unknown past element type",
			payload: func() *pokeapi.MoveResponse {
				return movePayload("tackle", ptr(100), ptr(40), 35, "physical", "normal", "generation-i",
					pokeapi.MovePastValues{Type: resource("shadow"), VersionGroup: resource("x-y")})
			},
			kind: apperrors.ErrParse,
		},
		{
			name: "negative pp",
			payload: func() *pokeapi.MoveResponse {
				return movePayload("tackle", ptr(100), ptr(40), -1, "physical", "normal", "generation-i")
			},
			kind: apperrors.ErrValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReconcileGenerations(tt.payload())
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
		})
	}
}
