package battle

import (
	"fmt"

	"pokebattle/internal/domain"
)

// Mechanics is the static list of battle mechanics the engine exercises,
// reported with every result.
var Mechanics = []string{
	"Type effectiveness calculations",
	"Damage formulas based on stats and move power",
	"Speed-based turn order",
	"Status effects: Burn, Poison, Paralysis, Sleep, Freeze, Confusion",
	"Critical hits and STAB bonuses",
	"Level 50 stat scaling",
}

// TurnLog is one completed turn: its number and every action description in
// execution order.
type TurnLog struct {
	Turn    int      `json:"turn"`
	Actions []string `json:"actions"`
}

// Result is the outcome of one simulation run.
type Result struct {
	Pokemon1   string
	Pokemon2   string
	Winner     string // empty when Draw
	Draw       bool
	TotalTurns int
	Summary    string
	Turns      []TurnLog
	Mechanics  []string
}

// Engine drives the turn loop for a single battle. It owns no state between
// simulations; each Simulate call works exclusively on its two combatants,
// so concurrent battles need no coordination.
type Engine struct {
	maxTurns int
	rng      RNG
}

// NewEngine builds an engine with the given turn cap and randomness source.
// The cap bounds total work and converts would-be infinite stalls into clean
// draws; it is an anti-stall guard, not a game rule.
func NewEngine(maxTurns int, rng RNG) *Engine {
	return &Engine{maxTurns: maxTurns, rng: rng}
}

// Simulate runs the battle to completion: per turn, both sides commit to a
// move, actions execute in speed order through the status gates, residual
// status damage ticks on everyone still standing, and the loop ends when a
// side reaches zero HP or the turn cap forces a draw.
func (e *Engine) Simulate(c1, c2 *Combatant) *Result {
	var turns []TurnLog
	turnCount := 0

	for c1.Alive() && c2.Alive() && turnCount < e.maxTurns {
		turnCount++
		turn := TurnLog{Turn: turnCount}

		// Both sides commit before ordering.
		move1, ok1 := ChooseMove(c1, c2)
		move2, ok2 := ChooseMove(c2, c1)

		first, second := OrderActions(c1, c2)
		firstMove, firstOK := move1, ok1
		secondMove, secondOK := move2, ok2
		if first != c1 {
			firstMove, firstOK = move2, ok2
			secondMove, secondOK = move1, ok1
		}

		e.act(first, second, firstMove, firstOK, &turn)
		// A downed opponent ends action processing for the turn.
		if first.Alive() && second.Alive() {
			e.act(second, first, secondMove, secondOK, &turn)
		}

		for _, c := range []*Combatant{c1, c2} {
			if !c.Alive() {
				continue
			}
			damage, message := endOfTurnTick(c)
			if damage > 0 {
				c.ApplyDamage(damage)
				turn.Actions = append(turn.Actions, message)
				if !c.Alive() {
					turn.Actions = append(turn.Actions, fmt.Sprintf("%s fainted!", c.Name))
				}
			}
		}

		turns = append(turns, turn)
	}

	result := &Result{
		Pokemon1:   c1.Name,
		Pokemon2:   c2.Name,
		TotalTurns: len(turns),
		Turns:      turns,
		Mechanics:  Mechanics,
	}

	switch {
	case c1.Alive() && !c2.Alive():
		result.Winner = c1.Name
	case c2.Alive() && !c1.Alive():
		result.Winner = c2.Name
	default:
		// Double knockout or turn cap reached.
		result.Draw = true
	}

	if result.Draw {
		result.Summary = fmt.Sprintf("Battle ended in a draw after %d turns", len(turns))
	} else {
		result.Summary = fmt.Sprintf("%s won in %d turns", result.Winner, len(turns))
	}

	return result
}

// act runs one combatant's action phase: the pre-action status gate, then
// the committed move against the defender.
func (e *Engine) act(attacker, defender *Combatant, move domain.Move, hasMove bool, turn *TurnLog) {
	gate := preActionGate(attacker, e.rng)
	if gate.SelfHit {
		damage := confusionSelfDamage(attacker)
		attacker.ApplyDamage(damage)
		turn.Actions = append(turn.Actions, fmt.Sprintf("%s (-%d HP)", gate.Message, damage))
		if !attacker.Alive() {
			turn.Actions = append(turn.Actions, fmt.Sprintf("%s fainted!", attacker.Name))
		}
		return
	}
	if gate.Message != "" {
		turn.Actions = append(turn.Actions, gate.Message)
	}
	if !gate.CanAct {
		return
	}

	if !hasMove {
		turn.Actions = append(turn.Actions, fmt.Sprintf("%s has no attacking moves and struggles helplessly!", attacker.Name))
		return
	}

	outcome, err := ResolveMove(attacker, defender, move, e.rng)
	if err != nil {
		// Unknown type tokens are filtered out by move selection; a failure
		// here means the committed move itself is corrupt. Treat as a whiff.
		turn.Actions = append(turn.Actions, fmt.Sprintf("%s flinched from an unusable move (%s)!", attacker.Name, move.Name))
		return
	}

	if !outcome.Hit {
		turn.Actions = append(turn.Actions, fmt.Sprintf("%s used %s but it missed!", attacker.Name, move.Name))
		return
	}

	action := fmt.Sprintf("%s used %s and dealt %d damage to %s", attacker.Name, move.Name, outcome.Damage, defender.Name)
	if outcome.Critical {
		action += " (Critical hit!)"
	}
	if outcome.EffectivenessLabel != "" {
		action += " " + outcome.EffectivenessLabel
	}
	if outcome.StatusInflicted != StatusNone {
		action += fmt.Sprintf(" %s is now %s!", defender.Name, outcome.StatusInflicted.adjective())
	}
	turn.Actions = append(turn.Actions, action)

	if !defender.Alive() {
		turn.Actions = append(turn.Actions, fmt.Sprintf("%s fainted!", defender.Name))
	}
}
