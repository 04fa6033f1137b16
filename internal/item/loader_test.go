package item

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

func TestLoadBundled(t *testing.T) {
	catalog, err := LoadBundled(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 117, catalog.Len())

	sword, ok := catalog.ByID("sword")
	require.True(t, ok)
	assert.Equal(t, 4, sword.BaseAttack)
	assert.True(t, sword.CanSell)
	assert.Equal(t, 12, sword.Price)
}

func TestLoadBundled_Prices(t *testing.T) {
	catalog, err := LoadBundled(context.Background())
	require.NoError(t, err)

	tests := []struct {
		id    string
		price int
	}{
		{id: "sword", price: 12},
		{id: "shield", price: 33},
		{id: "bomb", price: 191},
		{id: "guardian_angel", price: 2000},
		{id: "luckycharm", price: 3000},
		{id: "hourglass", price: 200},
		{id: "diamond", price: 375},
		{id: "royal_crown", price: 1128},
		{id: "meteor", price: 716},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			it, ok := catalog.ByID(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.price, it.Price)
		})
	}
}

func TestLoadBundled_TempPowerStartsFull(t *testing.T) {
	catalog, err := LoadBundled(context.Background())
	require.NoError(t, err)

	bomb, ok := catalog.ByID("bomb")
	require.True(t, ok)
	require.Len(t, bomb.Effects, 1)
	assert.Equal(t, 5, bomb.Effects[0].Duration)
	assert.Equal(t, 5, bomb.Effects[0].TurnsLeft)
}

func TestLoader_SchemaRejectsUnknownEffect(t *testing.T) {
	fsys := fstest.MapFS{
		"items.json": {Data: []byte(`{
			"version": "1.0",
			"items": [{
				"id": "wand", "emoji": "🪄", "name": "Wand", "rarity": "rare", "type": "attack",
				"base_attack": 3, "base_defense": 0,
				"effects": [{"trigger": "on_attack", "effect_type": "teleport", "value": 1}]
			}]
		}`)},
	}

	_, err := LoadFrom(context.Background(), fsys, "items.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestLoader_Validate(t *testing.T) {
	loader := NewLoader(fstest.MapFS{})

	valid := func() *Config {
		return &Config{
			Version: "1.0",
			Items: []Def{
				{ID: "sword", Name: "Sword", Rarity: domain.RarityCommon, Type: domain.ItemTypeAttack, BaseAttack: 4},
				{ID: "ant", Name: "Ant", Rarity: domain.RarityRare, Type: domain.ItemTypePassive, Effects: []EffectDef{
					{Trigger: domain.TriggerOnTurnStart, Type: domain.EffectStack, Value: 1, Stackable: true, MaxStacks: 10},
				}},
			},
		}
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, loader.Validate(valid()))
	})

	t.Run("nil config", func(t *testing.T) {
		err := loader.Validate(nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("no items", func(t *testing.T) {
		err := loader.Validate(&Config{})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), ErrMsgNoItemsDefined)
	})

	t.Run("duplicate id", func(t *testing.T) {
		cfg := valid()
		cfg.Items[1].ID = "sword"
		assert.ErrorIs(t, loader.Validate(cfg), ErrDuplicateID)
	})

	t.Run("stack without max", func(t *testing.T) {
		cfg := valid()
		cfg.Items[1].Effects[0].MaxStacks = 0
		err := loader.Validate(cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "max_stacks")
	})

	t.Run("chance out of range", func(t *testing.T) {
		cfg := valid()
		chance := 1.5
		cfg.Items[1].Effects[0].Chance = &chance
		assert.ErrorIs(t, loader.Validate(cfg), ErrInvalidConfig)
	})

	t.Run("negative stats", func(t *testing.T) {
		cfg := valid()
		cfg.Items[0].BaseAttack = -1
		assert.ErrorIs(t, loader.Validate(cfg), ErrInvalidConfig)
	})
}

func TestCatalog_LookupsReturnCopies(t *testing.T) {
	catalog, err := LoadBundled(context.Background())
	require.NoError(t, err)

	first, _ := catalog.ByID("bomb")
	first.Break(0)

	second, _ := catalog.ByID("bomb")
	assert.False(t, second.IsBroken())
	assert.True(t, second.CanSell)
}

func TestCatalog_Filters(t *testing.T) {
	catalog, err := LoadBundled(context.Background())
	require.NoError(t, err)

	for _, it := range catalog.ByRarity(domain.RarityLegendary) {
		assert.Equal(t, domain.RarityLegendary, it.Rarity)
	}
	assert.Len(t, catalog.ByRarity(domain.RarityLegendary), 18)

	for _, it := range catalog.ByType(domain.ItemTypeDefense) {
		assert.Equal(t, domain.ItemTypeDefense, it.Type)
	}
}

func TestCatalog_Random(t *testing.T) {
	catalog, err := LoadBundled(context.Background())
	require.NoError(t, err)

	exclude := map[string]bool{"sword": true, "shield": true}
	picked := catalog.Random(utils.NewSeededSource(7), 10, exclude)
	require.Len(t, picked, 10)

	seen := make(map[string]bool)
	for _, it := range picked {
		assert.False(t, exclude[it.ID])
		assert.False(t, seen[it.ID], "duplicate %s", it.ID)
		seen[it.ID] = true
	}

	again := catalog.Random(utils.NewSeededSource(7), 10, exclude)
	for i := range picked {
		assert.Equal(t, picked[i].ID, again[i].ID)
	}
}
