package pokepedia

import (
	"errors"
	"testing"

	"github.com/BielosX/wombat/pokepedia/src/apperrors"
)

func TestParseDamageClass(t *testing.T) {
	for _, class := range []DamageClass{Physical, Special, Status} {
		parsed, err := ParseDamageClass(class.Code())
		if err != nil {
			t.Fatalf("parse %q: %v", class.Code(), err)
		}
		if parsed != class {
			t.Errorf("expected %s, got %s", class, parsed)
		}
	}
	for _, code := range []string{"", "magical"} {
		if _, err := ParseDamageClass(code); !errors.Is(err, apperrors.ErrParse) {
			t.Errorf("ParseDamageClass(%q): expected parse error, got %v", code, err)
		}
	}
}

func TestTypeBasedDamageClassPartition(t *testing.T) {
	physical := []ElementType{Normal, Fighting, Flying, Poison, Ground, Rock, Bug, Ghost, Steel}
	special := []ElementType{Fire, Water, Grass, Electric, Psychic, Ice, Dragon, Dark}

	for _, elementType := range physical {
		if class, ok := TypeBasedDamageClass(elementType); !ok || class != Physical {
			t.Errorf("%s: expected physical, got %s (%v)", elementType, class, ok)
		}
	}
	for _, elementType := range special {
		if class, ok := TypeBasedDamageClass(elementType); !ok || class != Special {
			t.Errorf("%s: expected special, got %s (%v)", elementType, class, ok)
		}
	}
	if _, ok := TypeBasedDamageClass(Fairy); ok {
		t.Errorf("fairy must have no type based damage class")
	}
	if len(physical)+len(special)+1 != len(AllElementTypes()) {
		t.Errorf("partition does not cover every element type")
	}
}

func TestDamageClassFor(t *testing.T) {
	tests := []struct {
		name        string
		declared    DamageClass
		elementType ElementType
		generation  Generation
		expected    DamageClass
	}{
		{"early physical fire becomes special", Physical, Fire, Generation3, Special},
		{"early special dark stays special", Special, Dark, Generation2, Special},
		{"early special normal becomes physical", Special, Normal, Generation1, Physical},
		{"status never derived", Status, Fire, Generation1, Status},
		{"fairy never derived", Special, Fairy, Generation1, Special},
		{"late generation keeps declared", Physical, Fire, Generation4, Physical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := damageClassFor(tt.declared, tt.elementType, tt.generation); got != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
