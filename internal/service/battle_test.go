package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"pokebattle/internal/config"
	"pokebattle/internal/domain"

	"github.com/rs/zerolog"
)

type stubProfileStore struct {
	profiles map[string]*domain.PokemonProfile
}

func (s *stubProfileStore) GetProfile(_ context.Context, name string, _ int) (*domain.PokemonProfile, error) {
	p, ok := s.profiles[name]
	if !ok {
		return nil, fmt.Errorf("pokemon %q: %w", name, domain.ErrNotFound)
	}
	// Hand out a copy so the battle cannot mutate the fixture.
	clone := *p
	return &clone, nil
}

func testBattleService(store *stubProfileStore) *BattleService {
	return &BattleService{
		repo:   store,
		cfg:    &config.Config{MaxBattleTurns: 100},
		logger: zerolog.Nop(),
	}
}

func testStore() *stubProfileStore {
	return &stubProfileStore{profiles: map[string]*domain.PokemonProfile{
		"pikachu": {
			ID:   25,
			Name: "pikachu",
			Stats: domain.BaseStats{
				HP: 35, Attack: 55, Defense: 40,
				SpecialAttack: 50, SpecialDefense: 50, Speed: 90,
			},
			Types: []string{"electric"},
			Moves: []domain.Move{
				{Name: "thunderbolt", Type: "electric", DamageClass: "special", Power: 90, Accuracy: 100, Ailment: "paralysis", EffectChance: 10},
			},
		},
		"charmander": {
			ID:   4,
			Name: "charmander",
			Stats: domain.BaseStats{
				HP: 39, Attack: 52, Defense: 43,
				SpecialAttack: 60, SpecialDefense: 50, Speed: 65,
			},
			Types: []string{"fire"},
			Moves: []domain.Move{
				{Name: "flamethrower", Type: "fire", DamageClass: "special", Power: 90, Accuracy: 100, Ailment: "burn", EffectChance: 10},
			},
		},
	}}
}

func TestSimulateBattleValidation(t *testing.T) {
	svc := testBattleService(testStore())

	cases := []struct {
		name         string
		name1, name2 string
	}{
		{"empty first", "", "pikachu"},
		{"blank second", "pikachu", "   "},
		{"identical", "pikachu", "pikachu"},
		{"identical ignoring case", "Pikachu", "PIKACHU"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SimulateBattle(context.Background(), tc.name1, tc.name2, 1)
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Errorf("got %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestSimulateBattleUnknownPokemon(t *testing.T) {
	svc := testBattleService(testStore())

	_, err := svc.SimulateBattle(context.Background(), "pikachu", "missingno", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestSimulateBattleReturnsResult(t *testing.T) {
	svc := testBattleService(testStore())

	out, err := svc.SimulateBattle(context.Background(), "pikachu", "charmander", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.BattleID == "" {
		t.Error("battle id is empty")
	}
	r := out.Result
	if r.Pokemon1 != "pikachu" || r.Pokemon2 != "charmander" {
		t.Errorf("participants = %s vs %s", r.Pokemon1, r.Pokemon2)
	}
	if r.TotalTurns == 0 || len(r.Turns) != r.TotalTurns {
		t.Errorf("TotalTurns = %d with %d logged turns", r.TotalTurns, len(r.Turns))
	}
	if !r.Draw && r.Winner != "pikachu" && r.Winner != "charmander" {
		t.Errorf("Winner = %q", r.Winner)
	}
	if len(r.Mechanics) == 0 {
		t.Error("mechanics list is empty")
	}
}

func TestSimulateBattleSeedReproducesLog(t *testing.T) {
	svc := testBattleService(testStore())

	first, err := svc.SimulateBattle(context.Background(), "pikachu", "charmander", 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.SimulateBattle(context.Background(), "pikachu", "charmander", 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Result, second.Result) {
		t.Errorf("seed 42 produced different results:\n%+v\n%+v", first.Result, second.Result)
	}
	// Battle ids stay unique even when the simulation replays.
	if first.BattleID == second.BattleID {
		t.Error("battle ids collided")
	}
}
