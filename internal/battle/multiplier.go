package battle

import "github.com/osse101/EmojiBattler_Go/internal/domain"

// MultiplierSource contributes additive bonuses to a player's attack and
// defense multipliers. The calculator sums every source on top of 1.0.
type MultiplierSource interface {
	AttackMultiplierBonus(p *domain.Player) float64
	DefenseMultiplierBonus(p *domain.Player) float64
}

// ItemMultiplierSource reads passive attack_multiply and defense_multiply
// effects from items that are not broken.
type ItemMultiplierSource struct{}

// AttackMultiplierBonus implements MultiplierSource
func (ItemMultiplierSource) AttackMultiplierBonus(p *domain.Player) float64 {
	return sumPassive(p, domain.EffectAttackMultiply)
}

// DefenseMultiplierBonus implements MultiplierSource
func (ItemMultiplierSource) DefenseMultiplierBonus(p *domain.Player) float64 {
	return sumPassive(p, domain.EffectDefenseMultiply)
}

func sumPassive(p *domain.Player, effect domain.EffectType) float64 {
	total := 0.0
	for _, it := range p.Items {
		if it.IsBroken() {
			continue
		}
		for idx := range it.Effects {
			e := &it.Effects[idx]
			if e.Trigger == domain.TriggerPassive && e.Type == effect {
				total += e.Value
			}
		}
	}
	return total
}
