package item

import "github.com/osse101/EmojiBattler_Go/internal/domain"

// ==================== Configuration File Names ====================

const (
	// CatalogPath is the bundled catalog inside the embedded data directory
	CatalogPath = "data/items.json"
	// CatalogSchemaPath is the JSON schema every catalog must satisfy
	CatalogSchemaPath = "data/items.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"

	ErrFmtItemAtIndexEmpty   = "%w: item at index %d has empty id"
	ErrFmtItemEmptyName      = "%w: item '%s' has empty name"
	ErrFmtItemNegativeStat   = "%w: item '%s' has negative base stats"
	ErrFmtStackWithoutMax    = "%w: item '%s' has a stack effect without max_stacks"
	ErrFmtTempPowerNoTurns   = "%w: item '%s' has a temp_power effect without duration"
	ErrFmtChanceOutOfRange   = "%w: item '%s' has an effect chance outside (0,1]"
	ErrFmtUnknownEffectType  = "%w: item '%s' has unknown effect type '%s'"
	ErrFmtUnknownTriggerType = "%w: item '%s' has unknown trigger '%s'"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)

// ==================== Pricing ====================

// Flat stat weights
const (
	priceWeightAttack  = 3
	priceWeightDefense = 3
)

// Per effect weights
const (
	priceWeightDamage          = 5
	priceWeightHeal            = 6
	priceWeightVampire         = 100
	priceWeightMultiplier      = 200
	priceWeightStack           = 2
	priceWeightTempPower       = 2
	priceFlatPreventLifeLoss   = 500
	priceWeightReduceAttack    = 10
	priceWeightSpeedBoost      = 100
	priceWeightMoneyBonus      = 3
	priceWeightMoneyMultiplier = 100 * 4
	priceWeightMaxHP           = 8

	defaultPricedMaxStacks   = 10
	defaultPricedDuration    = 5
	defaultPricedMaxDuration = 3
)

// RarityPriceMultiplier scales the summed item value by rarity
var RarityPriceMultiplier = map[domain.Rarity]float64{
	domain.RarityCommon:    1,
	domain.RarityRare:      1.5,
	domain.RarityEpic:      2.5,
	domain.RarityLegendary: 4,
}

// ==================== Balance ====================

// Expected power ceiling per rarity before an item is flagged as excessive
var expectedPowerByRarity = map[domain.Rarity]float64{
	domain.RarityCommon:    30,
	domain.RarityRare:      60,
	domain.RarityEpic:      100,
	domain.RarityLegendary: 150,
}

// Recommended price multiplier per rarity
var recommendedPriceMultiplier = map[domain.Rarity]float64{
	domain.RarityCommon:    0.8,
	domain.RarityRare:      1.2,
	domain.RarityEpic:      1.8,
	domain.RarityLegendary: 2.5,
}

const (
	powerWeightAttack  = 1.5
	powerWeightDefense = 1.2

	balanceExcessFactor      = 1.5
	balanceMinPricePerPower  = 0.5
	balanceMaxPricePerPower  = 3.0
	balanceMinCorrelation    = 0.7
	balanceMinCommonShare    = 0.25
	balanceMaxLegendaryShare = 0.20
	balanceTargetCatalogSize = 90
	recommendedPricePerPower = 2
)
