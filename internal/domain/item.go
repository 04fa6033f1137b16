package domain

// Rarity is the catalog tier of an item. It drives shop odds and the price multiplier.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists every rarity from most to least common.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

// ItemType is the display category of an item
type ItemType string

const (
	ItemTypeAttack  ItemType = "attack"
	ItemTypeDefense ItemType = "defense"
	ItemTypePassive ItemType = "passive"
)

// Trigger is the lifecycle moment at which an effect may activate
type Trigger string

const (
	TriggerOnAttack      Trigger = "on_attack"
	TriggerOnDefend      Trigger = "on_defend"
	TriggerOnHit         Trigger = "on_hit"
	TriggerOnBlock       Trigger = "on_block"
	TriggerOnTurnStart   Trigger = "on_turn_start"
	TriggerOnTurnEnd     Trigger = "on_turn_end"
	TriggerOnBattleStart Trigger = "on_battle_start"
	TriggerOnBattleEnd   Trigger = "on_battle_end"
	TriggerPassive       Trigger = "passive"
)

// EffectType selects the behavior of an ItemEffect
type EffectType string

const (
	EffectDamage               EffectType = "damage"
	EffectBlock                EffectType = "block"
	EffectHeal                 EffectType = "heal"
	EffectVampire              EffectType = "vampire"
	EffectAttackMultiply       EffectType = "attack_multiply"
	EffectDefenseMultiply      EffectType = "defense_multiply"
	EffectSpeedBoost           EffectType = "speed_boost"
	EffectTempPower            EffectType = "temp_power"
	EffectStack                EffectType = "stack"
	EffectLuck                 EffectType = "luck"
	EffectPreventLifeLoss      EffectType = "prevent_life_loss"
	EffectReduceOpponentAttack EffectType = "reduce_opponent_attack"
	EffectMoneyBonus           EffectType = "money_bonus"
	EffectMoneyMultiplier      EffectType = "money_multiplier"
	EffectMaxHPBonus           EffectType = "max_hp_bonus"
)

// ItemEffect is a single trigger-scoped behavior attached to an item.
//
// Duration is the configured turn count of a temp_power effect and TurnsLeft
// is its runtime countdown. MaxDuration/CurrentDuration count battles (or shop
// rounds for money multipliers).
type ItemEffect struct {
	Trigger Trigger    `json:"trigger"`
	Type    EffectType `json:"effect_type"`
	Value   float64    `json:"value"`

	// Chance is nil when the effect always fires
	Chance *float64 `json:"chance,omitempty"`

	Stackable     bool `json:"stackable,omitempty"`
	CurrentStacks int  `json:"current_stacks,omitempty"`
	MaxStacks     int  `json:"max_stacks,omitempty"`

	Duration  int `json:"duration,omitempty"`
	TurnsLeft int `json:"turns_left,omitempty"`

	Breakable       bool `json:"breakable,omitempty"`
	MaxDuration     int  `json:"max_duration,omitempty"`
	CurrentDuration int  `json:"current_duration,omitempty"`
	IsBroken        bool `json:"is_broken,omitempty"`
}

// Item is a catalog template plus the runtime state it picks up in play
type Item struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Emoji       string       `json:"emoji"`
	Description string       `json:"description"`
	Rarity      Rarity       `json:"rarity"`
	Type        ItemType     `json:"type"`
	BaseAttack  int          `json:"base_attack"`
	BaseDefense int          `json:"base_defense"`
	Price       int          `json:"price"`
	CanSell     bool         `json:"can_sell"`
	Effects     []ItemEffect `json:"effects"`
}

// IsBroken reports whether any effect on the item has broken.
// A broken item keeps its base stats but none of its effects contribute.
func (i *Item) IsBroken() bool {
	for idx := range i.Effects {
		if i.Effects[idx].IsBroken {
			return true
		}
	}
	return false
}

// Break marks the effect at idx as broken and makes the item unsellable
func (i *Item) Break(idx int) {
	if idx < 0 || idx >= len(i.Effects) {
		return
	}
	i.Effects[idx].IsBroken = true
	i.CanSell = false
}

// HasEffect reports whether the item carries an effect of the given type
func (i *Item) HasEffect(t EffectType) bool {
	for idx := range i.Effects {
		if i.Effects[idx].Type == t {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	c.Effects = make([]ItemEffect, len(i.Effects))
	for idx, e := range i.Effects {
		if e.Chance != nil {
			chance := *e.Chance
			e.Chance = &chance
		}
		c.Effects[idx] = e
	}
	return &c
}

// CloneItems deep copies a roster
func CloneItems(items []*Item) []*Item {
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		out = append(out, it.Clone())
	}
	return out
}
