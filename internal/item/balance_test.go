package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
)

func TestPower(t *testing.T) {
	tests := []struct {
		name     string
		item     *domain.Item
		expected float64
	}{
		{
			name:     "base stats only",
			item:     &domain.Item{BaseAttack: 4, BaseDefense: 5},
			expected: 4*1.5 + 5*1.2,
		},
		{
			name: "chance damage is weighted by chance",
			item: &domain.Item{Effects: []domain.ItemEffect{
				{Type: domain.EffectDamage, Value: 10, Chance: ptr(0.5)},
			}},
			expected: 15,
		},
		{
			name: "prevent life loss is flat",
			item: &domain.Item{Effects: []domain.ItemEffect{
				{Type: domain.EffectPreventLifeLoss, Value: 1},
			}},
			expected: 300,
		},
		{
			name: "money effects carry no combat power",
			item: &domain.Item{Effects: []domain.ItemEffect{
				{Type: domain.EffectMoneyBonus, Value: 50},
			}},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Power(tt.item), 0.0001)
		})
	}
}

func TestRecommendedPrice(t *testing.T) {
	it := &domain.Item{Rarity: domain.RarityRare, BaseAttack: 10}
	// 15 power * 2 per power * 1.2 rare
	assert.Equal(t, 36, RecommendedPrice(it))
}

func TestCatalog_Balance(t *testing.T) {
	catalog, err := LoadBundled(context.Background())
	require.NoError(t, err)

	report := catalog.Balance()
	assert.Equal(t, 117, report.Total)
	assert.Greater(t, report.AveragePrice, 0)
	assert.Greater(t, report.AveragePower, 0)
	assert.GreaterOrEqual(t, report.Correlation, -1.0)
	assert.LessOrEqual(t, report.Correlation, 1.0)
}

func TestCatalog_BalanceFlagsOutliers(t *testing.T) {
	catalog := NewCatalogFromItems([]*domain.Item{
		{ID: "cheap", Name: "Cheap", Emoji: "🪙", Rarity: domain.RarityCommon, BaseAttack: 100, Price: 1},
		{ID: "pricey", Name: "Pricey", Emoji: "💰", Rarity: domain.RarityCommon, BaseAttack: 1, Price: 500},
	})

	report := catalog.Balance()
	assert.False(t, report.IsBalanced)
	assert.Contains(t, report.Warnings, "Cheap (🪙) may be underpriced for its power.")
	assert.Contains(t, report.Warnings, "Pricey (💰) may be overpriced for its power.")
	assert.Contains(t, report.Suggestions, "Add 88 more items to reach the target of 90+ items.")
}

func TestCalculatePrice_DefaultsForMissingFields(t *testing.T) {
	it := &domain.Item{
		Rarity: domain.RarityCommon,
		Effects: []domain.ItemEffect{
			{Type: domain.EffectStack, Value: 1},
		},
	}
	// stack value * default 10 stacks * 2
	assert.Equal(t, 20, CalculatePrice(it))
}

func ptr(f float64) *float64 { return &f }
