package constants

import "time"

const (
	RequestTimeout  = 30 * time.Second
	DatabaseTimeout = 5 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// Moves fetched per Pokémon when assembling a profile document.
	ProfileMoveLimit = 20
	// Moves a combatant brings into a simulated battle.
	BattleMoveLimit = 4
)
