package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pokebattle/internal/battle"
	"pokebattle/internal/config"
	"pokebattle/internal/constants"
	"pokebattle/internal/domain"
	"pokebattle/internal/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// BattleOutcome pairs an engine result with the identifier assigned to the
// simulation run.
type BattleOutcome struct {
	BattleID string
	Result   *battle.Result
}

// ProfileStore is the slice of the repository the battle flow consumes.
type ProfileStore interface {
	GetProfile(ctx context.Context, name string, moveLimit int) (*domain.PokemonProfile, error)
}

type BattleService struct {
	repo   ProfileStore
	cfg    *config.Config
	logger zerolog.Logger
}

func NewBattleService(repo *repository.PokemonRepository, cfg *config.Config, logger zerolog.Logger) *BattleService {
	return &BattleService{repo: repo, cfg: cfg, logger: logger}
}

// SimulateBattle resolves one full battle between two named Pokémon. All I/O
// happens up front (both profile lookups run concurrently); the simulation
// itself owns its state exclusively and never suspends, so concurrent calls
// need no coordination. A non-zero seed reproduces an identical battle log.
func (s *BattleService) SimulateBattle(ctx context.Context, name1, name2 string, seed int64) (*BattleOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	name1 = strings.TrimSpace(name1)
	name2 = strings.TrimSpace(name2)
	if name1 == "" || name2 == "" {
		return nil, fmt.Errorf("both pokemon names are required: %w", domain.ErrInvalidArgument)
	}
	if strings.EqualFold(name1, name2) {
		return nil, fmt.Errorf("pokemon names must differ: %w", domain.ErrInvalidArgument)
	}

	s.logger.Info().
		Str("pokemon1", name1).
		Str("pokemon2", name2).
		Int64("seed", seed).
		Msg("starting battle simulation")

	var profile1, profile2 *domain.PokemonProfile
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile1, err = s.repo.GetProfile(gctx, name1, constants.BattleMoveLimit)
		return err
	})
	g.Go(func() error {
		var err error
		profile2, err = s.repo.GetProfile(gctx, name2, constants.BattleMoveLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to load battle profiles")
		return nil, err
	}

	combatant1, err := battle.NewCombatant(profile1)
	if err != nil {
		return nil, err
	}
	combatant2, err := battle.NewCombatant(profile2)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := battle.NewEngine(s.cfg.MaxBattleTurns, battle.NewRand(seed))
	result := engine.Simulate(combatant1, combatant2)

	battleID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate battle id: %w", err)
	}

	s.logger.Info().
		Str("battle_id", battleID).
		Str("winner", result.Winner).
		Bool("draw", result.Draw).
		Int("total_turns", result.TotalTurns).
		Msg("battle simulation finished")

	return &BattleOutcome{BattleID: battleID, Result: result}, nil
}
