package economy

import (
	"context"

	"github.com/osse101/EmojiBattler_Go/internal/config"
	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/item"
	"github.com/osse101/EmojiBattler_Go/internal/logger"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// ShopGenerator draws shop offers from the catalog with round-dependent
// rarity odds
type ShopGenerator struct {
	catalog  *item.Catalog
	settings config.EconomySettings
	rng      utils.RandomSource
}

// NewShopGenerator creates a generator drawing from rng
func NewShopGenerator(catalog *item.Catalog, settings config.EconomySettings, rng utils.RandomSource) *ShopGenerator {
	return &ShopGenerator{catalog: catalog, settings: settings, rng: rng}
}

// Generate returns up to ShopSize distinct items the owner does not already
// hold. Each item is weighted by the round's weight for its rarity.
func (g *ShopGenerator) Generate(ctx context.Context, round int, owned []*domain.Item) []*domain.Item {
	shop := g.fill(round, nil, excludeIDs(owned), g.settings.ShopSize)
	logger.FromContext(ctx).Debug(LogMsgShopGenerated, "round", round, "offers", len(shop))
	return shop
}

// Refresh keeps the offers still on the shelf and tops the shop back up to
// ShopSize with fresh draws
func (g *ShopGenerator) Refresh(ctx context.Context, round int, remaining, owned []*domain.Item) []*domain.Item {
	exclude := excludeIDs(owned)
	for _, it := range remaining {
		exclude[it.ID] = true
	}
	shop := append([]*domain.Item(nil), remaining...)
	shop = g.fill(round, shop, exclude, g.settings.ShopSize-len(remaining))
	logger.FromContext(ctx).Debug(LogMsgShopGenerated, "round", round, "offers", len(shop), "kept", len(remaining))
	return shop
}

func (g *ShopGenerator) fill(round int, shop []*domain.Item, exclude map[string]bool, count int) []*domain.Item {
	pool := make([]*domain.Item, 0, g.catalog.Len())
	for _, it := range g.catalog.All() {
		if !exclude[it.ID] {
			pool = append(pool, it)
		}
	}

	byRarity := rarityWeights(g.settings.TierFor(round))
	weights := make([]float64, len(pool))
	for i, it := range pool {
		weights[i] = byRarity[it.Rarity]
	}

	for n := 0; n < count && len(pool) > 0; n++ {
		idx := utils.WeightedIndex(g.rng, weights)
		if idx < 0 {
			break
		}
		shop = append(shop, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
		weights = append(weights[:idx], weights[idx+1:]...)
	}
	return shop
}

func rarityWeights(w config.RarityWeights) map[domain.Rarity]float64 {
	values := w.ForRarities()
	out := make(map[domain.Rarity]float64, len(values))
	for i, r := range domain.Rarities {
		out[r] = max(values[i], minRarityWeight)
	}
	return out
}

func excludeIDs(items []*domain.Item) map[string]bool {
	ids := make(map[string]bool, len(items))
	for _, it := range items {
		ids[it.ID] = true
	}
	return ids
}
