package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"pokebattle/internal/config"
	"pokebattle/internal/database"
	"pokebattle/internal/domain"

	"github.com/rs/zerolog"
)

// testDB opens a throwaway SQLite database with the embedded migrations
// applied, including the seed roster.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	cfg := &config.Config{
		DBPath:         filepath.Join(t.TempDir(), "test.db"),
		MaxBattleTurns: 100,
	}
	db, err := database.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetProfile(t *testing.T) {
	repo := NewPokemonRepository(testDB(t), zerolog.Nop())

	p, err := repo.GetProfile(context.Background(), "Pikachu", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 25 || p.Name != "pikachu" {
		t.Errorf("got %d/%s, want 25/pikachu", p.ID, p.Name)
	}
	if p.Stats.HP != 35 || p.Stats.Speed != 90 {
		t.Errorf("stats = %+v", p.Stats)
	}
	if len(p.Types) != 1 || p.Types[0] != "electric" {
		t.Errorf("types = %v", p.Types)
	}

	// Strongest four attacking moves, ordered by power then accuracy then name.
	want := []string{"thunder", "thunderbolt", "body-slam", "quick-attack"}
	if len(p.Moves) != len(want) {
		t.Fatalf("got %d moves, want %d: %+v", len(p.Moves), len(want), p.Moves)
	}
	for i, name := range want {
		if p.Moves[i].Name != name {
			t.Errorf("move[%d] = %s, want %s", i, p.Moves[i].Name, name)
		}
	}
	if p.Moves[1].Ailment != "paralysis" || p.Moves[1].EffectChance != 10 {
		t.Errorf("thunderbolt ailment = %q/%d", p.Moves[1].Ailment, p.Moves[1].EffectChance)
	}
}

func TestGetProfileExcludesStatusMoves(t *testing.T) {
	repo := NewPokemonRepository(testDB(t), zerolog.Nop())

	p, err := repo.GetProfile(context.Background(), "bulbasaur", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range p.Moves {
		if m.Power <= 0 {
			t.Errorf("battle pool contains non-attacking move %s", m.Name)
		}
	}
	if len(p.Types) != 2 || p.Types[1] != "poison" {
		t.Errorf("bulbasaur types = %v", p.Types)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	repo := NewPokemonRepository(testDB(t), zerolog.Nop())

	_, err := repo.GetProfile(context.Background(), "missingno", 4)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestGetDocument(t *testing.T) {
	repo := NewPokemonRepository(testDB(t), zerolog.Nop())

	doc, err := repo.GetDocument(context.Background(), "bulbasaur", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "bulbasaur" {
		t.Errorf("name = %s", doc.Name)
	}

	if len(doc.Abilities) != 2 {
		t.Fatalf("abilities = %+v, want 2", doc.Abilities)
	}
	if doc.Abilities[0].Name != "overgrow" || doc.Abilities[0].IsHidden {
		t.Errorf("ability[0] = %+v", doc.Abilities[0])
	}
	if doc.Abilities[1].Name != "chlorophyll" || !doc.Abilities[1].IsHidden {
		t.Errorf("ability[1] = %+v", doc.Abilities[1])
	}

	// The learnset keeps status moves the battle pool filters out.
	found := false
	for _, m := range doc.Moves {
		if m.Name == "sleep-powder" {
			found = true
		}
	}
	if !found {
		t.Errorf("learnset %v missing sleep-powder", doc.Moves)
	}

	chain := []string{"bulbasaur", "ivysaur", "venusaur"}
	if len(doc.Evolution) != len(chain) {
		t.Fatalf("evolution chain = %+v", doc.Evolution)
	}
	for i, name := range chain {
		if doc.Evolution[i].Name != name {
			t.Errorf("evolution[%d] = %s, want %s", i, doc.Evolution[i].Name, name)
		}
	}
	if doc.Evolution[0].EvolvesFrom != 0 || doc.Evolution[1].EvolvesFrom != 1 {
		t.Errorf("evolution links = %+v", doc.Evolution)
	}
}

func TestMoveGetByName(t *testing.T) {
	repo := NewMoveRepository(testDB(t), zerolog.Nop())

	m, err := repo.GetByName(context.Background(), "Thunderbolt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "thunderbolt" || m.Power != 90 || m.Type != "electric" {
		t.Errorf("move = %+v", m)
	}

	if _, err := repo.GetByName(context.Background(), "splashdance"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
