package battle

import "pokebattle/internal/domain"

const (
	critChance     = 1.0 / 16
	critMultiplier = 1.5
	stabMultiplier = 1.5

	// Confusion self-hits use the damage formula with this neutral power
	// and no STAB, type or crit terms.
	confusionSelfPower = 40
)

// MoveOutcome describes a single resolved action.
type MoveOutcome struct {
	Hit                bool
	Damage             int
	Critical           bool
	Effectiveness      float64
	EffectivenessLabel string
	StatusInflicted    StatusKind
}

// ResolveMove resolves one move from attacker against defender and applies
// the damage to the defender. RNG draws happen in a fixed order (accuracy,
// crit, secondary status, duration) so a seeded battle replays identically.
//
// Damage: base = ((2*level/5+2) * power * atk/def)/50 + 2, then STAB, type
// multiplier and crit, floored to at least 1 unless the defender is immune.
func ResolveMove(attacker, defender *Combatant, move domain.Move, rng RNG) (MoveOutcome, error) {
	if rng.Float64()*100 >= float64(move.Accuracy) {
		return MoveOutcome{}, nil
	}

	out := MoveOutcome{Hit: true}
	if move.Power <= 0 {
		return out, nil
	}

	effectiveness, err := Effectiveness(move.Type, defender.Types)
	if err != nil {
		return MoveOutcome{}, err
	}
	out.Effectiveness = effectiveness
	out.EffectivenessLabel = effectivenessLabel(effectiveness)

	crit := rng.Float64() < critChance

	isPhysical := move.DamageClass == "physical"
	var attackStat, defenseStat int
	if isPhysical {
		attackStat = attacker.Attack
		defenseStat = defender.Defense
		// Burn halves the physical attack contribution.
		if attacker.Status.Kind == StatusBurn {
			attackStat /= 2
		}
	} else {
		attackStat = attacker.SpecialAttack
		defenseStat = defender.SpecialDefense
	}

	base := ((2*float64(Level)/5+2)*float64(move.Power)*float64(attackStat)/float64(defenseStat))/50 + 2

	stab := 1.0
	if attacker.hasType(move.Type) {
		stab = stabMultiplier
	}
	critTerm := 1.0
	if crit {
		critTerm = critMultiplier
	}

	damage := int(base * stab * effectiveness * critTerm)
	if effectiveness == 0 {
		// Immunity overrides everything, including the minimum-damage floor.
		damage = 0
	} else {
		out.Critical = crit
		if damage < 1 {
			damage = 1
		}
	}
	out.Damage = damage
	defender.ApplyDamage(damage)

	// Secondary status: rolled only when the defender's slot is empty and
	// the move connected for effect.
	if move.Ailment != "" && effectiveness != 0 && defender.Status.Kind == StatusNone {
		if kind, ok := ailmentKinds[move.Ailment]; ok {
			if rng.Float64()*100 < float64(move.EffectChance) {
				defender.inflict(kind, rng)
				out.StatusInflicted = kind
			}
		}
	}

	return out, nil
}

// confusionSelfDamage computes the self-hit a confused combatant takes in
// place of its action: the damage formula against its own Defense, neutral
// type, no STAB and no crit.
func confusionSelfDamage(c *Combatant) int {
	base := ((2*float64(Level)/5+2)*confusionSelfPower*float64(c.Attack)/float64(c.Defense))/50 + 2
	damage := int(base)
	if damage < 1 {
		damage = 1
	}
	return damage
}

func effectivenessLabel(effectiveness float64) string {
	switch {
	case effectiveness == 0:
		return "It has no effect!"
	case effectiveness < 1:
		return "It's not very effective..."
	case effectiveness > 1:
		return "It's super effective!"
	default:
		return ""
	}
}
