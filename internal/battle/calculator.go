package battle

import (
	"math"

	"github.com/osse101/EmojiBattler_Go/internal/config"
	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// Contribution attributes part of a damage or block total to an item
type Contribution struct {
	ItemID    string
	ItemName  string
	ItemEmoji string
	Amount    int
	Label     string
}

func contributionFrom(it *domain.Item, amount int, label string) Contribution {
	return Contribution{
		ItemID:    it.ID,
		ItemName:  it.Name,
		ItemEmoji: it.Emoji,
		Amount:    amount,
		Label:     label,
	}
}

// DamageResult is the full breakdown of one attack
type DamageResult struct {
	RawDamage     int
	BlockAmount   int
	BlockPercent  float64
	BlockedDamage int
	FinalDamage   int

	BaseDamage       int
	ItemDamages      []Contribution
	EffectDamages    []Contribution
	AttackMultiplier float64
	DamageMultiplier float64

	BaseBlock         int
	ItemBlocks        []Contribution
	DefenseMultiplier float64
}

// StatBreakdown splits aggregate stats by where they came from
type StatBreakdown struct {
	BaseAttack  int
	BaseDefense int
	ItemAttack  int
	ItemDefense int
	StackAttack int
}

// PlayerStats are the aggregate combat stats of a roster
type PlayerStats struct {
	TotalAttack       int
	TotalDefense      int
	DefensePercent    float64
	AttackMultiplier  float64
	DefenseMultiplier float64
	Breakdown         StatBreakdown
}

// Calculator computes stats and damage. The only state it carries is the
// settings, the random source used for chance gates and the multiplier sources.
type Calculator struct {
	settings config.BattleSettings
	rng      utils.RandomSource
	sources  []MultiplierSource
}

// NewCalculator creates a calculator. Item multipliers are always counted;
// extra sources (skills) are added on top.
func NewCalculator(settings config.BattleSettings, rng utils.RandomSource, extra ...MultiplierSource) *Calculator {
	sources := make([]MultiplierSource, 0, len(extra)+1)
	sources = append(sources, ItemMultiplierSource{})
	sources = append(sources, extra...)
	return &Calculator{
		settings: settings,
		rng:      rng,
		sources:  sources,
	}
}

// PlayerStats aggregates a roster. It never mutates the player.
func (c *Calculator) PlayerStats(p *domain.Player) PlayerStats {
	breakdown := StatBreakdown{
		BaseAttack:  p.Stats.BaseAttack,
		BaseDefense: p.Stats.BaseDefense,
	}

	for _, it := range p.Items {
		breakdown.ItemAttack += it.BaseAttack
		breakdown.ItemDefense += it.BaseDefense
		if it.IsBroken() {
			continue
		}
		for idx := range it.Effects {
			e := &it.Effects[idx]
			if e.Type == domain.EffectStack && e.CurrentStacks > 0 {
				breakdown.StackAttack += utils.Round(float64(e.CurrentStacks) * e.Value)
			}
		}
	}

	attackMult := c.attackMultiplier(p)
	defenseMult := c.defenseMultiplier(p)

	totalAttack := utils.Round(float64(breakdown.BaseAttack+breakdown.ItemAttack+breakdown.StackAttack) * attackMult)
	totalDefense := utils.Round(float64(breakdown.BaseDefense+breakdown.ItemDefense) * defenseMult)

	return PlayerStats{
		TotalAttack:       totalAttack,
		TotalDefense:      totalDefense,
		DefensePercent:    c.defensePercent(totalDefense),
		AttackMultiplier:  attackMult,
		DefenseMultiplier: defenseMult,
		Breakdown:         breakdown,
	}
}

// CalculateDamage resolves one attack from attacker against defender.
// Chance gated damage and block effects draw from the calculator's random source.
func (c *Calculator) CalculateDamage(attacker, defender *domain.Player, speedMultiplier, damageMultiplier float64) DamageResult {
	result := DamageResult{
		BaseDamage:       utils.Round(float64(attacker.Stats.BaseAttack) * speedMultiplier),
		DamageMultiplier: damageMultiplier,
	}
	raw := result.BaseDamage

	for _, it := range attacker.Items {
		if it.BaseAttack <= 0 {
			continue
		}
		dmg := utils.Round(float64(it.BaseAttack) * speedMultiplier)
		raw += dmg
		result.ItemDamages = append(result.ItemDamages, contributionFrom(it, dmg, DescItemAttack))
	}

	for _, it := range attacker.Items {
		if it.IsBroken() {
			continue
		}
		for idx := range it.Effects {
			e := &it.Effects[idx]
			var dmg int
			switch {
			case e.Trigger == domain.TriggerOnAttack && e.Type == domain.EffectDamage:
				if utils.Roll(c.rng, e.Chance) {
					dmg = utils.Round(e.Value)
				}
			case e.Type == domain.EffectTempPower && e.TurnsLeft > 0:
				dmg = utils.Round(e.Value)
			case e.Type == domain.EffectStack && e.CurrentStacks > 0:
				dmg = utils.Round(float64(e.CurrentStacks) * e.Value)
			}
			if dmg > 0 {
				raw += dmg
				result.EffectDamages = append(result.EffectDamages, contributionFrom(it, dmg, DescEffectDamage))
			}
		}
	}

	for _, it := range defender.Items {
		if it.IsBroken() {
			continue
		}
		for idx := range it.Effects {
			e := &it.Effects[idx]
			if e.Type != domain.EffectReduceOpponentAttack {
				continue
			}
			reduction := utils.Round(e.Value)
			if reduction <= 0 {
				continue
			}
			raw -= reduction
			result.EffectDamages = append(result.EffectDamages, contributionFrom(it, -reduction, DescAttackReduced))
		}
	}

	if raw < 0 {
		raw = 0
	}
	result.AttackMultiplier = c.attackMultiplier(attacker)
	raw = utils.Round(float64(raw) * result.AttackMultiplier)
	raw = utils.Round(float64(raw) * damageMultiplier)
	result.RawDamage = raw

	result.BaseBlock = defender.Stats.BaseDefense
	block := result.BaseBlock
	for _, it := range defender.Items {
		if it.BaseDefense <= 0 {
			continue
		}
		block += it.BaseDefense
		result.ItemBlocks = append(result.ItemBlocks, contributionFrom(it, it.BaseDefense, DescItemBlock))
	}
	for _, it := range defender.Items {
		if it.IsBroken() {
			continue
		}
		for idx := range it.Effects {
			e := &it.Effects[idx]
			if e.Trigger != domain.TriggerOnDefend || e.Type != domain.EffectBlock {
				continue
			}
			if !utils.Roll(c.rng, e.Chance) {
				continue
			}
			amount := utils.Round(e.Value)
			if amount > 0 {
				block += amount
				result.ItemBlocks = append(result.ItemBlocks, contributionFrom(it, amount, DescItemBlock))
			}
		}
	}

	result.DefenseMultiplier = c.defenseMultiplier(defender)
	result.BlockAmount = utils.Round(float64(block) * result.DefenseMultiplier)
	result.BlockPercent = c.defensePercent(result.BlockAmount)
	result.BlockedDamage = utils.Round(float64(raw) * result.BlockPercent)
	result.FinalDamage = max(1, raw-result.BlockedDamage)

	return result
}

// SpeedMultiplier steps up by SpeedIncreaseValue every SpeedIncreaseInterval attacks
func (c *Calculator) SpeedMultiplier(attackCount int) float64 {
	if attackCount <= 0 || c.settings.SpeedIncreaseInterval <= 0 {
		return 1
	}
	intervals := attackCount / c.settings.SpeedIncreaseInterval
	return 1 + float64(intervals)*c.settings.SpeedIncreaseValue
}

// DamageMultiplier is 1 until DamageMultiplierStart, then grows every two rounds
func (c *Calculator) DamageMultiplier(round int) float64 {
	if round < c.settings.DamageMultiplierStart {
		return 1
	}
	steps := (round - c.settings.DamageMultiplierStart) / 2
	return 1 + float64(steps)*c.settings.DamageMultiplierValue
}

func (c *Calculator) defensePercent(totalDefense int) float64 {
	if totalDefense <= 0 {
		return 0
	}
	return math.Min(float64(totalDefense)/100, c.settings.MaxDefensePercent)
}

func (c *Calculator) attackMultiplier(p *domain.Player) float64 {
	total := 1.0
	for _, src := range c.sources {
		total += src.AttackMultiplierBonus(p)
	}
	return total
}

func (c *Calculator) defenseMultiplier(p *domain.Player) float64 {
	total := 1.0
	for _, src := range c.sources {
		total += src.DefenseMultiplierBonus(p)
	}
	return total
}

// ApplyDamage lowers HP, never below zero
func ApplyDamage(p *domain.Player, damage int) {
	if damage <= 0 {
		return
	}
	p.Stats.CurrentHP = max(0, p.Stats.CurrentHP-damage)
}

// ApplyHeal raises HP up to MaxHP and returns the HP actually restored
func ApplyHeal(p *domain.Player, amount int) int {
	if amount <= 0 {
		return 0
	}
	newHP := min(p.Stats.MaxHP, p.Stats.CurrentHP+amount)
	if newHP < p.Stats.CurrentHP {
		newHP = p.Stats.CurrentHP
	}
	healed := newHP - p.Stats.CurrentHP
	p.Stats.CurrentHP = newHP
	return healed
}
