package item

import (
	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// CalculatePrice derives the shop price of an item from its stats and effects.
// It runs once when the catalog is built; prices are never recomputed in play.
func CalculatePrice(it *domain.Item) int {
	value := float64(it.BaseAttack*priceWeightAttack + it.BaseDefense*priceWeightDefense)

	for i := range it.Effects {
		value += effectValue(&it.Effects[i])
	}

	mult, ok := RarityPriceMultiplier[it.Rarity]
	if !ok {
		mult = 1
	}
	return utils.Round(value * mult)
}

func effectValue(e *domain.ItemEffect) float64 {
	chance := 1.0
	if e.Chance != nil {
		chance = *e.Chance
	}

	switch e.Type {
	case domain.EffectDamage, domain.EffectBlock:
		return e.Value * priceWeightDamage * chance
	case domain.EffectHeal:
		return e.Value * priceWeightHeal
	case domain.EffectVampire:
		return e.Value * priceWeightVampire
	case domain.EffectAttackMultiply, domain.EffectDefenseMultiply:
		return e.Value * priceWeightMultiplier
	case domain.EffectStack:
		return e.Value * float64(orDefault(e.MaxStacks, defaultPricedMaxStacks)) * priceWeightStack
	case domain.EffectTempPower:
		return e.Value * float64(orDefault(e.Duration, defaultPricedDuration)) * priceWeightTempPower
	case domain.EffectPreventLifeLoss:
		return priceFlatPreventLifeLoss
	case domain.EffectReduceOpponentAttack:
		return e.Value * priceWeightReduceAttack
	case domain.EffectSpeedBoost:
		return e.Value * priceWeightSpeedBoost
	case domain.EffectMoneyBonus:
		return e.Value * priceWeightMoneyBonus
	case domain.EffectMoneyMultiplier:
		return (e.Value - 1) * float64(orDefault(e.MaxDuration, defaultPricedMaxDuration)) * priceWeightMoneyMultiplier
	case domain.EffectMaxHPBonus:
		return e.Value * priceWeightMaxHP
	case domain.EffectLuck:
		return 0
	}
	return 0
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
