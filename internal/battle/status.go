package battle

import "fmt"

// StatusKind enumerates the mutually exclusive status conditions. A combatant
// holds exactly one Status slot, so "at most one active" is structural.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusBurn
	StatusPoison
	StatusParalysis
	StatusSleep
	StatusFreeze
	StatusConfusion
)

func (k StatusKind) String() string {
	switch k {
	case StatusBurn:
		return "burn"
	case StatusPoison:
		return "poison"
	case StatusParalysis:
		return "paralysis"
	case StatusSleep:
		return "sleep"
	case StatusFreeze:
		return "freeze"
	case StatusConfusion:
		return "confusion"
	default:
		return "none"
	}
}

// adjective renders the kind the way battle text reads ("X is now asleep!").
func (k StatusKind) adjective() string {
	switch k {
	case StatusBurn:
		return "burned"
	case StatusPoison:
		return "poisoned"
	case StatusParalysis:
		return "paralyzed"
	case StatusSleep:
		return "asleep"
	case StatusFreeze:
		return "frozen"
	case StatusConfusion:
		return "confused"
	default:
		return "fine"
	}
}

// Status is the single status slot: a kind plus the turns-remaining counter
// used by Sleep and Confusion.
type Status struct {
	Kind      StatusKind
	TurnsLeft int
}

// ailmentKinds maps stored move ailment identifiers to status kinds.
var ailmentKinds = map[string]StatusKind{
	"burn":      StatusBurn,
	"poison":    StatusPoison,
	"paralysis": StatusParalysis,
	"sleep":     StatusSleep,
	"freeze":    StatusFreeze,
	"confusion": StatusConfusion,
}

// inflict places a status on the combatant, drawing duration counters from
// the battle RNG: sleep lasts 1-3 turns, confusion 2-5. Callers must have
// checked that the slot is empty; the chance is not even rolled otherwise.
func (c *Combatant) inflict(kind StatusKind, rng RNG) {
	status := Status{Kind: kind}
	switch kind {
	case StatusSleep:
		status.TurnsLeft = 1 + rng.Intn(3)
	case StatusConfusion:
		status.TurnsLeft = 2 + rng.Intn(4)
	}
	c.Status = status
}

func (c *Combatant) clearStatus() {
	c.Status = Status{}
}

// gateResult is the outcome of the pre-action status gate.
type gateResult struct {
	CanAct  bool
	SelfHit bool
	Message string
}

// preActionGate evaluates the status slot before the combatant acts.
// Paralysis has a 25% full skip, Sleep always skips while its counter runs
// (the wake-up turn included), Freeze skips unless the 20% thaw lands, and
// Confusion has a 50% chance of a self-hit replacing the action.
func preActionGate(c *Combatant, rng RNG) gateResult {
	switch c.Status.Kind {
	case StatusParalysis:
		if rng.Float64() < 0.25 {
			return gateResult{Message: fmt.Sprintf("%s is fully paralyzed and can't move!", c.Name)}
		}
	case StatusSleep:
		c.Status.TurnsLeft--
		if c.Status.TurnsLeft <= 0 {
			c.clearStatus()
			return gateResult{Message: fmt.Sprintf("%s woke up!", c.Name)}
		}
		return gateResult{Message: fmt.Sprintf("%s is fast asleep!", c.Name)}
	case StatusFreeze:
		if rng.Float64() < 0.2 {
			c.clearStatus()
			return gateResult{CanAct: true, Message: fmt.Sprintf("%s thawed out!", c.Name)}
		}
		return gateResult{Message: fmt.Sprintf("%s is frozen solid!", c.Name)}
	case StatusConfusion:
		c.Status.TurnsLeft--
		if c.Status.TurnsLeft <= 0 {
			c.clearStatus()
			return gateResult{CanAct: true, Message: fmt.Sprintf("%s snapped out of confusion!", c.Name)}
		}
		if rng.Float64() < 0.5 {
			return gateResult{SelfHit: true, Message: fmt.Sprintf("%s is confused and hurt itself!", c.Name)}
		}
	}
	return gateResult{CanAct: true}
}

// endOfTurnTick applies residual status damage after the combatant's action
// phase: burn costs 1/16 max HP per turn, poison 1/8, both at least 1.
// Returns zero damage and an empty message for every other status.
func endOfTurnTick(c *Combatant) (int, string) {
	switch c.Status.Kind {
	case StatusBurn:
		damage := maxInt(1, c.MaxHP/16)
		return damage, fmt.Sprintf("%s is hurt by its burn! (-%d HP)", c.Name, damage)
	case StatusPoison:
		damage := maxInt(1, c.MaxHP/8)
		return damage, fmt.Sprintf("%s is hurt by poison! (-%d HP)", c.Name, damage)
	}
	return 0, ""
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
