package domain

// BaseStats are a species' canonical stat values before level scaling.
type BaseStats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// PokemonProfile is the immutable battle-relevant view of a species,
// loaded once from the store at the start of a simulation.
type PokemonProfile struct {
	ID    int
	Name  string
	Stats BaseStats
	Types []string
	Moves []Move
}

// Move is an immutable move definition. Power 0 marks status-only moves.
// Ailment and EffectChance describe the optional secondary effect
// (e.g. flamethrower: ailment "burn", chance 10).
type Move struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	DamageClass  string `json:"damage_class"` // "physical", "special" or "status"
	Power        int    `json:"power"`
	Accuracy     int    `json:"accuracy"`
	Priority     int    `json:"priority"`
	PP           int    `json:"pp"`
	Ailment      string `json:"ailment,omitempty"`
	EffectChance int    `json:"effect_chance,omitempty"`
	ShortEffect  string `json:"short_effect"`
}

// Ability as attached to a profile document.
type Ability struct {
	Name        string `json:"name"`
	IsHidden    bool   `json:"is_hidden"`
	Slot        int    `json:"slot"`
	ShortEffect string `json:"short_effect"`
}

// EvolutionMember is one species in an evolution chain.
type EvolutionMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	EvolvesFrom int    `json:"evolves_from,omitempty"`
}

// ProfileDocument is the full informational payload returned by the
// read-only pokédex query surface. It carries no battle logic.
type ProfileDocument struct {
	Name      string            `json:"name"`
	Height    int               `json:"height"`
	Weight    int               `json:"weight"`
	Stats     BaseStats         `json:"stats"`
	Types     []string          `json:"types"`
	Abilities []Ability         `json:"abilities"`
	Moves     []Move            `json:"moves"`
	Evolution []EvolutionMember `json:"evolution_chain"`
}
