package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"pokebattle/internal/battle"
	"pokebattle/internal/domain"
	"pokebattle/internal/service"

	"github.com/rs/zerolog"
)

// BattleServer is the protocol shim: thin JSON handlers delegating to the
// services, with error mapping at the boundary.
type BattleServer struct {
	battleSvc  *service.BattleService
	pokedexSvc *service.PokedexService
	logger     zerolog.Logger
}

func NewBattleServer(battleSvc *service.BattleService, pokedexSvc *service.PokedexService, logger zerolog.Logger) *BattleServer {
	return &BattleServer{battleSvc: battleSvc, pokedexSvc: pokedexSvc, logger: logger}
}

func (s *BattleServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/battle/simulate", s.SimulateBattle)
	mux.HandleFunc("GET /api/v1/pokemon/{name}", s.GetPokemonInfo)
	mux.HandleFunc("GET /api/v1/move/{name}", s.GetMoveInfo)
}

type simulateRequest struct {
	Pokemon1 string `json:"pokemon1"`
	Pokemon2 string `json:"pokemon2"`
	Detailed bool   `json:"detailed"`
	Seed     int64  `json:"seed"`
}

type simulateResponse struct {
	BattleID        string           `json:"battle_id"`
	Pokemon1        string           `json:"pokemon1"`
	Pokemon2        string           `json:"pokemon2"`
	Winner          string           `json:"winner,omitempty"`
	Draw            bool             `json:"draw"`
	TotalTurns      int              `json:"total_turns"`
	BattleSummary   string           `json:"battle_summary"`
	DetailedTurns   []battle.TurnLog `json:"detailed_turns,omitempty"`
	BattleMechanics []string         `json:"battle_mechanics"`
}

func (s *BattleServer) SimulateBattle(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, domain.ErrInvalidArgument)
		return
	}

	outcome, err := s.battleSvc.SimulateBattle(r.Context(), req.Pokemon1, req.Pokemon2, req.Seed)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result := outcome.Result
	resp := simulateResponse{
		BattleID:        outcome.BattleID,
		Pokemon1:        result.Pokemon1,
		Pokemon2:        result.Pokemon2,
		Winner:          result.Winner,
		Draw:            result.Draw,
		TotalTurns:      result.TotalTurns,
		BattleSummary:   result.Summary,
		BattleMechanics: result.Mechanics,
	}
	// Without detailed=true the per-turn log is omitted; everything else is
	// unchanged.
	if req.Detailed {
		resp.DetailedTurns = result.Turns
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *BattleServer) GetPokemonInfo(w http.ResponseWriter, r *http.Request) {
	doc, err := s.pokedexSvc.GetPokemonInfo(r.Context(), r.PathValue("name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

func (s *BattleServer) GetMoveInfo(w http.ResponseWriter, r *http.Request) {
	move, err := s.pokedexSvc.GetMoveInfo(r.Context(), r.PathValue("name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, move)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps the domain error taxonomy to HTTP statuses. Every error is
// surfaced as a structured payload; nothing is swallowed or retried.
func (s *BattleServer) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrDataIntegrity):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
	}

	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *BattleServer) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}
