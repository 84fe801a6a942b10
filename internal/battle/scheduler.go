package battle

import "pokebattle/internal/domain"

// OrderActions returns the two combatants in action order for one turn.
// Higher effective Speed (paralysis-halved, see EffectiveSpeed) acts first.
// An exact tie keeps slot order: the first-listed combatant acts first. The
// tie-break is fixed so a seeded simulation always produces the same log.
func OrderActions(a, b *Combatant) (*Combatant, *Combatant) {
	if b.EffectiveSpeed() > a.EffectiveSpeed() {
		return b, a
	}
	return a, b
}

// ChooseMove commits the attacker to an action before ordering is applied.
// The heuristic is deterministic and consumes no RNG: highest expected
// damage (power x accuracy x STAB x type multiplier against the current
// opponent), earliest-listed move winning ties. Returns false when the pool
// has no attacking moves.
func ChooseMove(attacker, defender *Combatant) (domain.Move, bool) {
	var best domain.Move
	bestScore := -1.0
	for _, move := range attacker.Moves {
		if move.Power <= 0 {
			continue
		}
		effectiveness, err := Effectiveness(move.Type, defender.Types)
		if err != nil {
			continue
		}
		stab := 1.0
		if attacker.hasType(move.Type) {
			stab = stabMultiplier
		}
		score := float64(move.Power) * float64(move.Accuracy) / 100 * stab * effectiveness
		if score > bestScore {
			bestScore = score
			best = move
		}
	}
	return best, bestScore >= 0
}
