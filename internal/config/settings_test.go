package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
)

func TestDefaultGameSettings_Valid(t *testing.T) {
	settings := DefaultGameSettings()
	require.NoError(t, settings.Validate())

	assert.Equal(t, domain.MaxBattleTurn, settings.Battle.MaxTurns)
	assert.Equal(t, domain.MaxDefensePercent, settings.Battle.MaxDefensePercent)
	assert.Len(t, settings.Economy.ShopTiers, 3)
}

func TestLoadGameSettings_MissingFileUsesDefaults(t *testing.T) {
	settings, err := LoadGameSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultGameSettings(), settings)
}

func TestLoadGameSettings_OverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte(`
battle:
  max_turns: 40
economy:
  shop_size: 6
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	settings, err := LoadGameSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 40, settings.Battle.MaxTurns)
	assert.Equal(t, 6, settings.Economy.ShopSize)
	assert.Equal(t, domain.SpeedIncreaseInterval, settings.Battle.SpeedIncreaseInterval)
	assert.Equal(t, domain.StartingHP, settings.Player.StartingHP)
}

func TestParseGameSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "defense cap above one",
			yaml: "battle:\n  max_defense_percent: 1.5\n",
		},
		{
			name: "negative max turns",
			yaml: "battle:\n  max_turns: -1\n",
		},
		{
			name: "weight above one",
			yaml: "economy:\n  shop_tiers:\n    - max_round: 15\n      weights: {common: 2}\n",
		},
		{
			name: "tiers out of order",
			yaml: "economy:\n  shop_tiers:\n    - max_round: 10\n      weights: {common: 1}\n    - max_round: 5\n      weights: {rare: 1}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameSettings("inline", []byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestParseGameSettings_BadYAML(t *testing.T) {
	_, err := ParseGameSettings("inline", []byte("battle: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing game settings inline")
}

func TestEconomySettings_TierFor(t *testing.T) {
	economy := DefaultGameSettings().Economy

	assert.Equal(t, 0.70, economy.TierFor(1).Common)
	assert.Equal(t, 0.70, economy.TierFor(5).Common)
	assert.Equal(t, 0.40, economy.TierFor(6).Common)
	assert.Equal(t, 0.20, economy.TierFor(15).Common)
	assert.Equal(t, 0.20, economy.TierFor(99).Common)
}

func TestRarityWeights_ForRarities(t *testing.T) {
	w := RarityWeights{Common: 0.1, Rare: 0.2, Epic: 0.3, Legendary: 0.4}
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, w.ForRarities())
}
