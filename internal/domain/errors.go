package domain

import "errors"

// Request-scoped error taxonomy. Every failure maps to exactly one of these
// at the protocol boundary; none is retried and none outlives its request.
var (
	// ErrNotFound: unknown Pokémon or move name.
	ErrNotFound = errors.New("not found")
	// ErrDataIntegrity: a stored profile is missing required stats or types.
	ErrDataIntegrity = errors.New("data integrity error")
	// ErrInvalidArgument: malformed request input.
	ErrInvalidArgument = errors.New("invalid argument")
)
