package item

import (
	"fmt"
	"math"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// BalanceReport summarizes how well prices track item power across a catalog
type BalanceReport struct {
	IsBalanced  bool
	Warnings    []string
	Suggestions []string

	Total        int
	AveragePower int
	AveragePrice int
	Correlation  float64
}

// Power scores an item for balancing. It is independent of the price formula.
func Power(it *domain.Item) float64 {
	power := float64(it.BaseAttack)*powerWeightAttack + float64(it.BaseDefense)*powerWeightDefense
	for i := range it.Effects {
		power += effectPower(&it.Effects[i])
	}
	return power
}

func effectPower(e *domain.ItemEffect) float64 {
	chance := 1.0
	if e.Chance != nil {
		chance = *e.Chance
	}

	switch e.Type {
	case domain.EffectDamage, domain.EffectBlock:
		return e.Value * 3 * chance
	case domain.EffectHeal:
		return e.Value * 4
	case domain.EffectVampire, domain.EffectSpeedBoost:
		return e.Value * 80
	case domain.EffectAttackMultiply, domain.EffectDefenseMultiply:
		return e.Value * 150
	case domain.EffectStack:
		return e.Value * float64(orDefault(e.MaxStacks, defaultPricedMaxStacks)) * 2
	case domain.EffectTempPower:
		return e.Value * float64(orDefault(e.Duration, defaultPricedDuration)) * 1.5
	case domain.EffectPreventLifeLoss:
		return 300
	case domain.EffectReduceOpponentAttack:
		return e.Value * 8
	}
	return 0
}

// RecommendedPrice suggests a price from the power score alone
func RecommendedPrice(it *domain.Item) int {
	mult, ok := recommendedPriceMultiplier[it.Rarity]
	if !ok {
		mult = 1
	}
	return utils.Round(Power(it) * recommendedPricePerPower * mult)
}

// Balance checks the catalog for pricing outliers and rarity skew
func (c *Catalog) Balance() BalanceReport {
	report := BalanceReport{Total: len(c.items)}
	if len(c.items) == 0 {
		return report
	}

	powers := make([]float64, len(c.items))
	prices := make([]float64, len(c.items))
	rarityCount := make(map[domain.Rarity]int)

	var sumPower, sumPrice float64
	for i, it := range c.items {
		powers[i] = Power(it)
		prices[i] = float64(it.Price)
		sumPower += powers[i]
		sumPrice += prices[i]
		rarityCount[it.Rarity]++
	}

	total := float64(len(c.items))
	report.AveragePower = utils.Round(sumPower / total)
	report.AveragePrice = utils.Round(sumPrice / total)
	corr := utils.Pearson(powers, prices)
	report.Correlation = math.Round(corr*100) / 100

	if float64(rarityCount[domain.RarityCommon])/total < balanceMinCommonShare {
		report.Warnings = append(report.Warnings, "Too few common items. Should be at least 25% of total.")
	}
	if float64(rarityCount[domain.RarityLegendary])/total > balanceMaxLegendaryShare {
		report.Warnings = append(report.Warnings, "Too many legendary items. Should be less than 20% of total.")
	}

	for i, it := range c.items {
		power := powers[i]
		if power > 0 {
			pricePerPower := prices[i] / power
			if pricePerPower < balanceMinPricePerPower {
				report.Warnings = append(report.Warnings, fmt.Sprintf("%s (%s) may be underpriced for its power.", it.Name, it.Emoji))
			} else if pricePerPower > balanceMaxPricePerPower {
				report.Warnings = append(report.Warnings, fmt.Sprintf("%s (%s) may be overpriced for its power.", it.Name, it.Emoji))
			}
		}
		if power > expectedPowerByRarity[it.Rarity]*balanceExcessFactor {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s (%s) has excessive power (%d) for %s rarity.", it.Name, it.Emoji, utils.Round(power), it.Rarity))
		}
	}

	if corr < balanceMinCorrelation {
		report.Suggestions = append(report.Suggestions,
			"Price-to-power correlation is low. Consider adjusting prices to better reflect item power.")
	}
	if len(c.items) < balanceTargetCatalogSize {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("Add %d more items to reach the target of %d+ items.", balanceTargetCatalogSize-len(c.items), balanceTargetCatalogSize))
	}

	report.IsBalanced = len(report.Warnings) == 0 && corr >= balanceMinCorrelation
	return report
}
