package config

import (
	"fmt"
	"os"
	"strconv"

	"pokebattle/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath         string
	ServerPort     string
	LogLevel       string
	MaxBattleTurns int
}

// Load reads configuration before the leveled logger exists, so it logs
// through a bootstrap logger at the default level.
func Load() (*Config, error) {
	log := logger.New()
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DBPath:         getEnv("DB_PATH", "pokemon.db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MaxBattleTurns: getEnvInt("MAX_BATTLE_TURNS", 100),
	}

	// The turn cap is an anti-stall guard, not a battle mechanic: a
	// full-miss streak with no residual damage could otherwise loop forever.
	if cfg.MaxBattleTurns <= 0 {
		return nil, fmt.Errorf("MAX_BATTLE_TURNS must be positive, got %d", cfg.MaxBattleTurns)
	}

	log.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int("max_battle_turns", cfg.MaxBattleTurns).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
