package fx

import (
	"pokebattle/internal/config"
	"pokebattle/internal/database"
	"pokebattle/internal/logger"
	"pokebattle/internal/repository"
	"pokebattle/internal/server"
	"pokebattle/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Provide(func(cfg *config.Config) zerolog.Logger {
		return logger.ForLevel(cfg.LogLevel)
	}),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewPokemonRepository),
	fx.Provide(repository.NewMoveRepository),
	// svc
	fx.Provide(service.NewBattleService),
	fx.Provide(service.NewPokedexService),
	// server
	fx.Provide(server.NewBattleServer),
)
