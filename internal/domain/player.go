package domain

// PlayerStats holds the numeric state of a participant. The cumulative
// counters survive across battles; CurrentHP and AttackCount are per battle.
type PlayerStats struct {
	BaseAttack  int `json:"base_attack"`
	BaseDefense int `json:"base_defense"`
	CurrentHP   int `json:"current_hp"`
	MaxHP       int `json:"max_hp"`
	Speed       int `json:"speed"`
	AttackCount int `json:"attack_count"`
	Lives       int `json:"lives"`
	Money       int `json:"money"`

	DamageDealt    int `json:"damage_dealt"`
	DamageReceived int `json:"damage_received"`
	DamageBlocked  int `json:"damage_blocked"`
	MoneySpent     int `json:"money_spent"`
	ItemsBought    int `json:"items_bought"`
}

// Player is one side of a battle, human or AI
type Player struct {
	Name       string         `json:"name"`
	IsAI       bool           `json:"is_ai"`
	Difficulty DifficultyID   `json:"difficulty,omitempty"`
	Stats      PlayerStats    `json:"stats"`
	Items      []*Item        `json:"items"`
	Skills     []AppliedSkill `json:"skills,omitempty"`
}

// IsAlive reports whether the player has HP left
func (p *Player) IsAlive() bool {
	return p.Stats.CurrentHP > 0
}

// Clone returns a deep copy of the player including every item and effect
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	c.Items = CloneItems(p.Items)
	c.Skills = append([]AppliedSkill(nil), p.Skills...)
	return &c
}

// ItemIDs returns the ids of every owned item, in roster order
func (p *Player) ItemIDs() []string {
	ids := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		ids = append(ids, it.ID)
	}
	return ids
}
