package battle

import (
	"errors"
	"testing"

	"pokebattle/internal/domain"
)

func TestEffectivenessSingleTypeDomain(t *testing.T) {
	names := TypeNames()
	if len(names) != 18 {
		t.Fatalf("expected 18 types, got %d", len(names))
	}

	valid := map[float64]bool{0: true, 0.5: true, 1: true, 2: true}
	for _, attack := range names {
		for _, defend := range names {
			m, err := Effectiveness(attack, []string{defend})
			if err != nil {
				t.Fatalf("%s vs %s: unexpected error %v", attack, defend, err)
			}
			if !valid[m] {
				t.Errorf("%s vs %s: multiplier %v outside {0, 0.5, 1, 2}", attack, defend, m)
			}
		}
	}
}

func TestEffectivenessDualTypeDomain(t *testing.T) {
	names := TypeNames()
	valid := map[float64]bool{0: true, 0.25: true, 0.5: true, 1: true, 2: true, 4: true}
	for _, attack := range names {
		for _, d1 := range names {
			for _, d2 := range names {
				if d1 == d2 {
					continue
				}
				m, err := Effectiveness(attack, []string{d1, d2})
				if err != nil {
					t.Fatalf("%s vs %s/%s: unexpected error %v", attack, d1, d2, err)
				}
				if !valid[m] {
					t.Errorf("%s vs %s/%s: multiplier %v outside expected set", attack, d1, d2, m)
				}
			}
		}
	}
}

func TestEffectivenessKnownMatchups(t *testing.T) {
	cases := []struct {
		attack string
		defend []string
		want   float64
	}{
		{"fire", []string{"grass"}, 2},
		{"water", []string{"fire"}, 2},
		{"electric", []string{"ground"}, 0},
		{"electric", []string{"water", "flying"}, 4},
		{"normal", []string{"ghost"}, 0},
		{"ground", []string{"fire", "flying"}, 0},
		{"grass", []string{"fire", "flying"}, 0.25},
		{"fire", []string{"electric"}, 1},
		{"electric", []string{"fire", "flying"}, 2},
	}
	for _, tc := range cases {
		got, err := Effectiveness(tc.attack, tc.defend)
		if err != nil {
			t.Fatalf("%s vs %v: unexpected error %v", tc.attack, tc.defend, err)
		}
		if got != tc.want {
			t.Errorf("%s vs %v: got %v, want %v", tc.attack, tc.defend, got, tc.want)
		}
	}
}

func TestEffectivenessUnknownType(t *testing.T) {
	if _, err := Effectiveness("plasma", []string{"fire"}); !errors.Is(err, domain.ErrDataIntegrity) {
		t.Errorf("unknown attack type: got %v, want ErrDataIntegrity", err)
	}
	if _, err := Effectiveness("fire", []string{"plasma"}); !errors.Is(err, domain.ErrDataIntegrity) {
		t.Errorf("unknown defend type: got %v, want ErrDataIntegrity", err)
	}
}
