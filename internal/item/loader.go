package item

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/logger"
	"github.com/osse101/EmojiBattler_Go/internal/validation"
)

//go:embed data/*.json
var bundled embed.FS

// Sentinel errors for item loader
var (
	ErrDuplicateID = errors.New("duplicate item id")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for items
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// EffectDef is one effect as written in the catalog file
type EffectDef struct {
	Trigger     domain.Trigger    `json:"trigger"`
	Type        domain.EffectType `json:"effect_type"`
	Value       float64           `json:"value"`
	Chance      *float64          `json:"chance,omitempty"`
	Stackable   bool              `json:"stackable,omitempty"`
	MaxStacks   int               `json:"max_stacks,omitempty"`
	Duration    int               `json:"duration,omitempty"`
	Breakable   bool              `json:"breakable,omitempty"`
	MaxDuration int               `json:"max_duration,omitempty"`
}

// Def represents a single item definition in the JSON
type Def struct {
	ID          string          `json:"id"`
	Emoji       string          `json:"emoji"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Rarity      domain.Rarity   `json:"rarity"`
	Type        domain.ItemType `json:"type"`
	BaseAttack  int             `json:"base_attack"`
	BaseDefense int             `json:"base_defense"`
	Effects     []EffectDef     `json:"effects"`
}

// Loader handles loading and validating item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	fsys            fs.FS
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader reading catalogs from fsys.
// The schema is always taken from the bundled copy.
func NewLoader(fsys fs.FS) Loader {
	return &itemLoader{
		fsys:            fsys,
		schemaValidator: validation.NewSchemaValidator(bundled),
	}
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, CatalogSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the semantic rules the schema cannot express
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	ids := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := validateItemDef(i, &config.Items[i], ids); err != nil {
			return err
		}
	}

	return nil
}

func validateItemDef(index int, def *Def, ids map[string]bool) error {
	if def.ID == "" {
		return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, index)
	}
	if ids[def.ID] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateID, def.ID)
	}
	ids[def.ID] = true

	if def.Name == "" {
		return fmt.Errorf(ErrFmtItemEmptyName, ErrInvalidConfig, def.ID)
	}
	if def.BaseAttack < 0 || def.BaseDefense < 0 {
		return fmt.Errorf(ErrFmtItemNegativeStat, ErrInvalidConfig, def.ID)
	}

	for _, e := range def.Effects {
		if !knownTriggers[e.Trigger] {
			return fmt.Errorf(ErrFmtUnknownTriggerType, ErrInvalidConfig, def.ID, e.Trigger)
		}
		if !knownEffects[e.Type] {
			return fmt.Errorf(ErrFmtUnknownEffectType, ErrInvalidConfig, def.ID, e.Type)
		}
		if e.Chance != nil && (*e.Chance <= 0 || *e.Chance > 1) {
			return fmt.Errorf(ErrFmtChanceOutOfRange, ErrInvalidConfig, def.ID)
		}
		if e.Type == domain.EffectStack && e.MaxStacks <= 0 {
			return fmt.Errorf(ErrFmtStackWithoutMax, ErrInvalidConfig, def.ID)
		}
		if e.Type == domain.EffectTempPower && e.Duration <= 0 {
			return fmt.Errorf(ErrFmtTempPowerNoTurns, ErrInvalidConfig, def.ID)
		}
	}
	return nil
}

var knownTriggers = map[domain.Trigger]bool{
	domain.TriggerOnAttack:      true,
	domain.TriggerOnDefend:      true,
	domain.TriggerOnHit:         true,
	domain.TriggerOnBlock:       true,
	domain.TriggerOnTurnStart:   true,
	domain.TriggerOnTurnEnd:     true,
	domain.TriggerOnBattleStart: true,
	domain.TriggerOnBattleEnd:   true,
	domain.TriggerPassive:       true,
}

var knownEffects = map[domain.EffectType]bool{
	domain.EffectDamage:               true,
	domain.EffectBlock:                true,
	domain.EffectHeal:                 true,
	domain.EffectVampire:              true,
	domain.EffectAttackMultiply:       true,
	domain.EffectDefenseMultiply:      true,
	domain.EffectSpeedBoost:           true,
	domain.EffectTempPower:            true,
	domain.EffectStack:                true,
	domain.EffectLuck:                 true,
	domain.EffectPreventLifeLoss:      true,
	domain.EffectReduceOpponentAttack: true,
	domain.EffectMoneyBonus:           true,
	domain.EffectMoneyMultiplier:      true,
	domain.EffectMaxHPBonus:           true,
}

// LoadBundled loads, validates and prices the catalog compiled into the binary
func LoadBundled(ctx context.Context) (*Catalog, error) {
	return LoadFrom(ctx, bundled, CatalogPath)
}

// LoadFrom loads, validates and prices a catalog file inside fsys
func LoadFrom(ctx context.Context, fsys fs.FS, path string) (*Catalog, error) {
	loader := NewLoader(fsys)

	cfg, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}

	catalog := NewCatalog(cfg)
	logger.FromContext(ctx).Debug(LogMsgCatalogLoaded, "path", path, "items", catalog.Len(), "version", cfg.Version)
	return catalog, nil
}

// toItem builds a priced, sellable item template from its definition
func (d *Def) toItem() *domain.Item {
	it := &domain.Item{
		ID:          d.ID,
		Name:        d.Name,
		Emoji:       d.Emoji,
		Description: d.Description,
		Rarity:      d.Rarity,
		Type:        d.Type,
		BaseAttack:  d.BaseAttack,
		BaseDefense: d.BaseDefense,
		CanSell:     true,
		Effects:     make([]domain.ItemEffect, 0, len(d.Effects)),
	}
	for _, e := range d.Effects {
		it.Effects = append(it.Effects, domain.ItemEffect{
			Trigger:     e.Trigger,
			Type:        e.Type,
			Value:       e.Value,
			Chance:      e.Chance,
			Stackable:   e.Stackable,
			MaxStacks:   e.MaxStacks,
			Duration:    e.Duration,
			TurnsLeft:   e.Duration,
			Breakable:   e.Breakable,
			MaxDuration: e.MaxDuration,
		})
	}
	it.Price = CalculatePrice(it)
	return it
}
