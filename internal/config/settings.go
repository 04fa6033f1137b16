package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
)

// ErrInvalidSettings wraps every game settings validation failure
var ErrInvalidSettings = errors.New(ErrMsgInvalidSettings)

// GameSettings holds the tunable game rules. Zero values in a YAML file
// keep the defaults because the file is decoded over DefaultGameSettings.
type GameSettings struct {
	Rules   RuleSettings    `yaml:"rules"`
	Player  PlayerSettings  `yaml:"player"`
	Battle  BattleSettings  `yaml:"battle"`
	Economy EconomySettings `yaml:"economy"`
}

// RuleSettings bounds the length of a game
type RuleSettings struct {
	MaxRounds int `yaml:"max_rounds" validate:"gt=0"`
	MaxLives  int `yaml:"max_lives" validate:"gt=0"`
}

// PlayerSettings are the stats every new player starts with
type PlayerSettings struct {
	StartingHP      int `yaml:"starting_hp" validate:"gt=0"`
	StartingAttack  int `yaml:"starting_attack" validate:"gte=0"`
	StartingDefense int `yaml:"starting_defense" validate:"gte=0"`
	StartingMoney   int `yaml:"starting_money" validate:"gte=0"`
}

// BattleSettings tune the turn loop and its escalation
type BattleSettings struct {
	MaxTurns              int     `yaml:"max_turns" validate:"gt=0"`
	MaxDefensePercent     float64 `yaml:"max_defense_percent" validate:"gt=0,lte_one"`
	SpeedIncreaseInterval int     `yaml:"speed_increase_interval" validate:"gt=0"`
	SpeedIncreaseValue    float64 `yaml:"speed_increase_value" validate:"gte=0"`
	DamageMultiplierStart int     `yaml:"damage_multiplier_start" validate:"gte=0"`
	DamageMultiplierValue float64 `yaml:"damage_multiplier_value" validate:"gte=0"`
}

// EconomySettings tune income and the shop
type EconomySettings struct {
	MoneyPerRound int        `yaml:"money_per_round" validate:"gte=0"`
	ShopSize      int        `yaml:"shop_size" validate:"gt=0"`
	MaxItems      int        `yaml:"max_items" validate:"gt=0"`
	ShopTiers     []ShopTier `yaml:"shop_tiers" validate:"required,min=1,dive"`
}

// ShopTier applies its rarity weights to every round up to MaxRound
type ShopTier struct {
	MaxRound int           `yaml:"max_round" validate:"gt=0"`
	Weights  RarityWeights `yaml:"weights"`
}

// RarityWeights are per-rarity shop probabilities
type RarityWeights struct {
	Common    float64 `yaml:"common" validate:"gte=0,lte_one"`
	Rare      float64 `yaml:"rare" validate:"gte=0,lte_one"`
	Epic      float64 `yaml:"epic" validate:"gte=0,lte_one"`
	Legendary float64 `yaml:"legendary" validate:"gte=0,lte_one"`
}

// ForRarities returns the weights in domain.Rarities order
func (w RarityWeights) ForRarities() []float64 {
	weights := make([]float64, len(domain.Rarities))
	for i, r := range domain.Rarities {
		switch r {
		case domain.RarityCommon:
			weights[i] = w.Common
		case domain.RarityRare:
			weights[i] = w.Rare
		case domain.RarityEpic:
			weights[i] = w.Epic
		case domain.RarityLegendary:
			weights[i] = w.Legendary
		}
	}
	return weights
}

// TierFor returns the weights that apply to a round. Rounds past the last
// tier use the last tier.
func (e EconomySettings) TierFor(round int) RarityWeights {
	for _, tier := range e.ShopTiers {
		if round <= tier.MaxRound {
			return tier.Weights
		}
	}
	if len(e.ShopTiers) == 0 {
		return RarityWeights{Common: 1}
	}
	return e.ShopTiers[len(e.ShopTiers)-1].Weights
}

// DefaultGameSettings returns the standard rule set
func DefaultGameSettings() GameSettings {
	return GameSettings{
		Rules: RuleSettings{
			MaxRounds: domain.MaxRounds,
			MaxLives:  domain.MaxLives,
		},
		Player: PlayerSettings{
			StartingHP:      domain.StartingHP,
			StartingAttack:  domain.StartingAttack,
			StartingDefense: domain.StartingDefense,
			StartingMoney:   domain.StartingMoney,
		},
		Battle: DefaultBattleSettings(),
		Economy: EconomySettings{
			MoneyPerRound: domain.MoneyPerRound,
			ShopSize:      domain.ShopSize,
			MaxItems:      domain.MaxItems,
			ShopTiers: []ShopTier{
				{MaxRound: 5, Weights: RarityWeights{Common: 0.70, Rare: 0.25, Epic: 0.05}},
				{MaxRound: 10, Weights: RarityWeights{Common: 0.40, Rare: 0.40, Epic: 0.15, Legendary: 0.05}},
				{MaxRound: domain.MaxRounds, Weights: RarityWeights{Common: 0.20, Rare: 0.30, Epic: 0.30, Legendary: 0.20}},
			},
		},
	}
}

// DefaultBattleSettings returns the standard battle tuning
func DefaultBattleSettings() BattleSettings {
	return BattleSettings{
		MaxTurns:              domain.MaxBattleTurn,
		MaxDefensePercent:     domain.MaxDefensePercent,
		SpeedIncreaseInterval: domain.SpeedIncreaseInterval,
		SpeedIncreaseValue:    domain.SpeedIncreaseValue,
		DamageMultiplierStart: domain.DamageMultiplierStart,
		DamageMultiplierValue: domain.DamageMultiplierValue,
	}
}

// LoadGameSettings loads game settings from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGameSettings(path string) (GameSettings, error) {
	settings := DefaultGameSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf(ErrMsgReadSettings, path, err)
	}

	return ParseGameSettings(path, data)
}

// ParseGameSettings decodes YAML over the defaults and validates the result
func ParseGameSettings(name string, data []byte) (GameSettings, error) {
	settings := DefaultGameSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf(ErrMsgParseSettings, name, err)
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

var (
	settingsValidator     *validator.Validate
	settingsValidatorOnce sync.Once
)

func getValidator() *validator.Validate {
	settingsValidatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation(TagLteOne, validateLteOne)
		settingsValidator = v
	})
	return settingsValidator
}

// validateLteOne accepts probabilities and percentages no larger than 1
func validateLteOne(fl validator.FieldLevel) bool {
	return fl.Field().Float() <= 1
}

// Validate checks struct tags and the tier ordering
func (s GameSettings) Validate() error {
	if err := getValidator().Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("%w: %s failed %s", ErrInvalidSettings, first.Namespace(), first.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	last := 0
	for _, tier := range s.Economy.ShopTiers {
		if tier.MaxRound <= last {
			return fmt.Errorf("%w: %s", ErrInvalidSettings, ErrMsgTierOrder)
		}
		last = tier.MaxRound
	}
	return nil
}
