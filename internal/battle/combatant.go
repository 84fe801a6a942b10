package battle

import (
	"fmt"

	"pokebattle/internal/domain"
)

// Level is the fixed battle level every combatant is scaled to.
const Level = 50

// Combatant is the battle-scoped, mutable state of one side: level-50 stats
// derived once at battle start, current HP and the single status slot.
type Combatant struct {
	Name           string
	MaxHP          int
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
	Types          []string
	Moves          []domain.Move
	Status         Status
}

// NewCombatant derives a Combatant from a profile using the standard level-50
// scaling: floor(2*base*50/100)+5 per stat, HP adding +50 on top. Pure
// derivation; the profile is never mutated.
func NewCombatant(profile *domain.PokemonProfile) (*Combatant, error) {
	s := profile.Stats
	if s.HP <= 0 || s.Attack <= 0 || s.Defense <= 0 ||
		s.SpecialAttack <= 0 || s.SpecialDefense <= 0 || s.Speed <= 0 {
		return nil, fmt.Errorf("profile %q is missing base stats: %w", profile.Name, domain.ErrDataIntegrity)
	}
	if len(profile.Types) == 0 {
		return nil, fmt.Errorf("profile %q has no types: %w", profile.Name, domain.ErrDataIntegrity)
	}

	hp := scaleStat(s.HP) + Level
	return &Combatant{
		Name:           profile.Name,
		MaxHP:          hp,
		HP:             hp,
		Attack:         scaleStat(s.Attack),
		Defense:        scaleStat(s.Defense),
		SpecialAttack:  scaleStat(s.SpecialAttack),
		SpecialDefense: scaleStat(s.SpecialDefense),
		Speed:          scaleStat(s.Speed),
		Types:          profile.Types,
		Moves:          profile.Moves,
		Status:         Status{},
	}, nil
}

func scaleStat(base int) int {
	return (2*base*Level)/100 + 5
}

// EffectiveSpeed is the Speed used for turn ordering only: paralysis halves
// it without touching the stored stat.
func (c *Combatant) EffectiveSpeed() int {
	if c.Status.Kind == StatusParalysis {
		return c.Speed / 2
	}
	return c.Speed
}

func (c *Combatant) Alive() bool {
	return c.HP > 0
}

// ApplyDamage decrements HP, clamped at zero.
func (c *Combatant) ApplyDamage(damage int) {
	c.HP -= damage
	if c.HP < 0 {
		c.HP = 0
	}
}

func (c *Combatant) hasType(typeName string) bool {
	for _, t := range c.Types {
		if t == typeName {
			return true
		}
	}
	return false
}
