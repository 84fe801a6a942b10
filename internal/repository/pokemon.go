package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pokebattle/internal/domain"

	"github.com/rs/zerolog"
)

type PokemonRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPokemonRepository(db *sql.DB, logger zerolog.Logger) *PokemonRepository {
	return &PokemonRepository{db: db, logger: logger}
}

// GetProfile returns the battle-relevant view of a species: base stats,
// types and its strongest attacking moves. Lookup failure is terminal for
// the request, never retried.
func (r *PokemonRepository) GetProfile(ctx context.Context, name string, moveLimit int) (*domain.PokemonProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, hp, attack, defense, special_attack, special_defense, speed, type1, type2
		FROM pokemon
		WHERE LOWER(name) = LOWER(?)`,
		name,
	)

	var p domain.PokemonProfile
	var type1 string
	var type2 sql.NullString
	err := row.Scan(
		&p.ID, &p.Name,
		&p.Stats.HP, &p.Stats.Attack, &p.Stats.Defense,
		&p.Stats.SpecialAttack, &p.Stats.SpecialDefense, &p.Stats.Speed,
		&type1, &type2,
	)
	if err == sql.ErrNoRows {
		r.logger.Debug().Str("name", name).Msg("pokemon not found")
		return nil, fmt.Errorf("pokemon %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query pokemon %q: %w", name, err)
	}
	p.Types = []string{type1}
	if type2.Valid && type2.String != "" {
		p.Types = append(p.Types, type2.String)
	}

	if err := validateProfile(&p); err != nil {
		return nil, err
	}

	moves, err := r.getBattleMoves(ctx, p.ID, moveLimit)
	if err != nil {
		return nil, err
	}
	p.Moves = moves

	return &p, nil
}

// getBattleMoves picks the strongest attacking moves from the learnset,
// ordered by power then accuracy, so the selection is stable across calls.
func (r *PokemonRepository) getBattleMoves(ctx context.Context, pokemonID, limit int) ([]domain.Move, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.name, m.type, m.damage_class, m.power, m.accuracy,
		       m.priority, m.pp, m.ailment, m.effect_chance, m.short_effect
		FROM pokemon_moves pm
		JOIN moves m ON pm.move_id = m.id
		WHERE pm.pokemon_id = ? AND m.power > 0
		ORDER BY m.power DESC, m.accuracy DESC, m.name ASC
		LIMIT ?`,
		pokemonID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query battle moves: %w", err)
	}
	defer rows.Close()

	return scanMoves(rows)
}

// GetDocument assembles the full informational profile: stats, types,
// abilities, learnset and evolution-chain members.
func (r *PokemonRepository) GetDocument(ctx context.Context, name string, moveLimit int) (*domain.ProfileDocument, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, height, weight, hp, attack, defense, special_attack, special_defense, speed,
		       type1, type2, evolution_chain_id
		FROM pokemon
		WHERE LOWER(name) = LOWER(?)`,
		name,
	)

	var doc domain.ProfileDocument
	var id int
	var type1 string
	var type2 sql.NullString
	var chainID sql.NullInt64
	err := row.Scan(
		&id, &doc.Name, &doc.Height, &doc.Weight,
		&doc.Stats.HP, &doc.Stats.Attack, &doc.Stats.Defense,
		&doc.Stats.SpecialAttack, &doc.Stats.SpecialDefense, &doc.Stats.Speed,
		&type1, &type2, &chainID,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pokemon %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query pokemon %q: %w", name, err)
	}

	doc.Types = []string{type1}
	if type2.Valid && type2.String != "" {
		doc.Types = append(doc.Types, type2.String)
	}

	doc.Abilities, err = r.getAbilities(ctx, id)
	if err != nil {
		return nil, err
	}

	doc.Moves, err = r.getLearnset(ctx, id, moveLimit)
	if err != nil {
		return nil, err
	}

	if chainID.Valid {
		doc.Evolution, err = r.getEvolutionChain(ctx, int(chainID.Int64))
		if err != nil {
			return nil, err
		}
	}

	return &doc, nil
}

func (r *PokemonRepository) getAbilities(ctx context.Context, pokemonID int) ([]domain.Ability, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, is_hidden, slot, short_effect
		FROM abilities
		WHERE pokemon_id = ?
		ORDER BY slot`,
		pokemonID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query abilities: %w", err)
	}
	defer rows.Close()

	var abilities []domain.Ability
	for rows.Next() {
		var a domain.Ability
		if err := rows.Scan(&a.Name, &a.IsHidden, &a.Slot, &a.ShortEffect); err != nil {
			return nil, fmt.Errorf("failed to scan ability: %w", err)
		}
		abilities = append(abilities, a)
	}
	return abilities, rows.Err()
}

func (r *PokemonRepository) getLearnset(ctx context.Context, pokemonID, limit int) ([]domain.Move, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.name, m.type, m.damage_class, m.power, m.accuracy,
		       m.priority, m.pp, m.ailment, m.effect_chance, m.short_effect
		FROM pokemon_moves pm
		JOIN moves m ON pm.move_id = m.id
		WHERE pm.pokemon_id = ?
		ORDER BY pm.level, m.name
		LIMIT ?`,
		pokemonID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query learnset: %w", err)
	}
	defer rows.Close()

	return scanMoves(rows)
}

func (r *PokemonRepository) getEvolutionChain(ctx context.Context, chainID int) ([]domain.EvolutionMember, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(evolves_from, 0)
		FROM pokemon
		WHERE evolution_chain_id = ?
		ORDER BY id`,
		chainID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query evolution chain: %w", err)
	}
	defer rows.Close()

	var members []domain.EvolutionMember
	for rows.Next() {
		var m domain.EvolutionMember
		if err := rows.Scan(&m.ID, &m.Name, &m.EvolvesFrom); err != nil {
			return nil, fmt.Errorf("failed to scan evolution member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func validateProfile(p *domain.PokemonProfile) error {
	if p.Stats.HP <= 0 || p.Stats.Attack <= 0 || p.Stats.Defense <= 0 ||
		p.Stats.SpecialAttack <= 0 || p.Stats.SpecialDefense <= 0 || p.Stats.Speed <= 0 {
		return fmt.Errorf("pokemon %q has incomplete base stats: %w", p.Name, domain.ErrDataIntegrity)
	}
	if len(p.Types) == 0 {
		return fmt.Errorf("pokemon %q has no types: %w", p.Name, domain.ErrDataIntegrity)
	}
	return nil
}

func scanMoves(rows *sql.Rows) ([]domain.Move, error) {
	var moves []domain.Move
	for rows.Next() {
		var m domain.Move
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Type, &m.DamageClass, &m.Power, &m.Accuracy,
			&m.Priority, &m.PP, &m.Ailment, &m.EffectChance, &m.ShortEffect,
		); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}
