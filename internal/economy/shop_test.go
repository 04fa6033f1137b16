package economy

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiBattler_Go/internal/config"
	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/item"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

func testCatalog(perRarity int) *item.Catalog {
	var items []*domain.Item
	for _, r := range domain.Rarities {
		for i := 0; i < perRarity; i++ {
			items = append(items, &domain.Item{
				ID:     fmt.Sprintf("%s_%d", r, i),
				Name:   fmt.Sprintf("%s %d", r, i),
				Rarity: r,
				Type:   domain.ItemTypeAttack,
				Price:  10,
			})
		}
	}
	return item.NewCatalogFromItems(items)
}

func TestGenerate_SizeAndUniqueness(t *testing.T) {
	settings := config.DefaultGameSettings().Economy
	gen := NewShopGenerator(testCatalog(5), settings, utils.NewSeededSource(1))
	owned := []*domain.Item{{ID: "common_0"}, {ID: "rare_1"}}

	for round := 1; round <= domain.MaxRounds; round++ {
		shop := gen.Generate(context.Background(), round, owned)
		require.Len(t, shop, settings.ShopSize)

		seen := map[string]bool{}
		for _, it := range shop {
			assert.False(t, seen[it.ID], "duplicate %s", it.ID)
			seen[it.ID] = true
			assert.NotEqual(t, "common_0", it.ID)
			assert.NotEqual(t, "rare_1", it.ID)
		}
	}
}

func TestGenerate_SmallPool(t *testing.T) {
	gen := NewShopGenerator(testCatalog(1), config.DefaultGameSettings().Economy, utils.NewSeededSource(2))

	shop := gen.Generate(context.Background(), 1, []*domain.Item{{ID: "epic_0"}})
	assert.Len(t, shop, 3)

	all := []*domain.Item{{ID: "common_0"}, {ID: "rare_0"}, {ID: "epic_0"}, {ID: "legendary_0"}}
	assert.Empty(t, gen.Generate(context.Background(), 1, all))
}

func TestGenerate_RarityOddsFollowRound(t *testing.T) {
	settings := config.DefaultGameSettings().Economy
	settings.ShopSize = 1
	gen := NewShopGenerator(testCatalog(10), settings, utils.NewSeededSource(3))

	count := func(round int) map[domain.Rarity]int {
		out := map[domain.Rarity]int{}
		for i := 0; i < 2000; i++ {
			out[gen.Generate(context.Background(), round, nil)[0].Rarity]++
		}
		return out
	}

	early := count(1)
	late := count(15)

	assert.Greater(t, early[domain.RarityCommon], early[domain.RarityRare])
	assert.Less(t, early[domain.RarityLegendary], 80)
	assert.Greater(t, late[domain.RarityLegendary], early[domain.RarityLegendary])
	assert.Greater(t, late[domain.RarityEpic], late[domain.RarityCommon])
}

func TestRefresh(t *testing.T) {
	settings := config.DefaultGameSettings().Economy
	gen := NewShopGenerator(testCatalog(5), settings, utils.NewSeededSource(4))
	shop := gen.Generate(context.Background(), 1, nil)

	remaining := shop[:4]
	owned := []*domain.Item{shop[5]}
	refreshed := gen.Refresh(context.Background(), 1, remaining, owned)

	require.Len(t, refreshed, settings.ShopSize)
	for i := 0; i < 4; i++ {
		assert.Same(t, remaining[i], refreshed[i])
	}
	seen := map[string]bool{}
	for _, it := range refreshed {
		assert.False(t, seen[it.ID])
		seen[it.ID] = true
		assert.NotEqual(t, shop[5].ID, it.ID)
	}
}

func TestGenerate_SeedDeterminism(t *testing.T) {
	catalog, err := item.LoadBundled(context.Background())
	require.NoError(t, err)
	settings := config.DefaultGameSettings().Economy

	a := NewShopGenerator(catalog, settings, utils.NewSeededSource(99)).Generate(context.Background(), 7, nil)
	b := NewShopGenerator(catalog, settings, utils.NewSeededSource(99)).Generate(context.Background(), 7, nil)

	assert.Equal(t, a, b)
}
