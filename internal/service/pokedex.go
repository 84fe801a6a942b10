package service

import (
	"context"
	"fmt"
	"strings"

	"pokebattle/internal/constants"
	"pokebattle/internal/domain"
	"pokebattle/internal/repository"

	"github.com/rs/zerolog"
)

// PokedexService is the read-only query surface: a direct passthrough to the
// store with no battle logic.
type PokedexService struct {
	repo     *repository.PokemonRepository
	moveRepo *repository.MoveRepository
	logger   zerolog.Logger
}

func NewPokedexService(repo *repository.PokemonRepository, moveRepo *repository.MoveRepository, logger zerolog.Logger) *PokedexService {
	return &PokedexService{repo: repo, moveRepo: moveRepo, logger: logger}
}

func (s *PokedexService) GetPokemonInfo(ctx context.Context, name string) (*domain.ProfileDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("pokemon name is required: %w", domain.ErrInvalidArgument)
	}

	doc, err := s.repo.GetDocument(ctx, name, constants.ProfileMoveLimit)
	if err != nil {
		s.logger.Debug().Err(err).Str("name", name).Msg("pokemon info lookup failed")
		return nil, err
	}

	s.logger.Info().Str("name", doc.Name).Msg("pokemon info returned")
	return doc, nil
}

func (s *PokedexService) GetMoveInfo(ctx context.Context, name string) (*domain.Move, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("move name is required: %w", domain.ErrInvalidArgument)
	}

	return s.moveRepo.GetByName(ctx, name)
}
