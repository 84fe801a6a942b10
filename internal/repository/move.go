package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pokebattle/internal/domain"

	"github.com/rs/zerolog"
)

type MoveRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMoveRepository(db *sql.DB, logger zerolog.Logger) *MoveRepository {
	return &MoveRepository{db: db, logger: logger}
}

func (r *MoveRepository) GetByName(ctx context.Context, name string) (*domain.Move, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, damage_class, power, accuracy, priority, pp,
		       ailment, effect_chance, short_effect
		FROM moves
		WHERE LOWER(name) = LOWER(?)`,
		name,
	)

	var m domain.Move
	err := row.Scan(
		&m.ID, &m.Name, &m.Type, &m.DamageClass, &m.Power, &m.Accuracy,
		&m.Priority, &m.PP, &m.Ailment, &m.EffectChance, &m.ShortEffect,
	)
	if err == sql.ErrNoRows {
		r.logger.Debug().Str("name", name).Msg("move not found")
		return nil, fmt.Errorf("move %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query move %q: %w", name, err)
	}

	return &m, nil
}
