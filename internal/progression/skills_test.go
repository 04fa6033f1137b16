package progression

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiBattler_Go/internal/battle"
	"github.com/osse101/EmojiBattler_Go/internal/config"
	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

func TestBonuses(t *testing.T) {
	tree := DefaultTree()
	levels := []domain.AppliedSkill{
		{SkillID: SkillBaseAttack, Level: 3},
		{SkillID: SkillMaxHP, Level: 2},
		{SkillID: SkillMoneyPerRound, Level: 1},
		{SkillID: SkillAttackMultiplier, Level: 2},
		{SkillID: "unknown", Level: 4},
	}

	b := tree.Bonuses(levels)

	assert.Equal(t, 6, b.BaseAttack)
	assert.Equal(t, 40, b.MaxHP)
	assert.Equal(t, 20, b.MoneyPerRound)
	assert.InDelta(t, 0.10, b.AttackMultiplier, 1e-9)
	assert.Zero(t, b.DefenseMultiplier)
	assert.Zero(t, b.StartingMoney)
}

func TestApplySkills(t *testing.T) {
	tree := DefaultTree()
	p := &domain.Player{Stats: domain.PlayerStats{BaseAttack: 10, BaseDefense: 5, CurrentHP: 100, MaxHP: 100}}
	levels := []domain.AppliedSkill{
		{SkillID: SkillBaseDefense, Level: 2},
		{SkillID: SkillMaxHP, Level: 1},
		{SkillID: SkillAttackMultiplier, Level: 5},
	}

	tree.ApplySkills(p, levels)

	assert.Equal(t, 10, p.Stats.BaseAttack)
	assert.Equal(t, 9, p.Stats.BaseDefense)
	assert.Equal(t, 120, p.Stats.MaxHP)
	assert.Equal(t, 120, p.Stats.CurrentHP)
	assert.Equal(t, levels, p.Skills)

	levels[0].Level = 9
	assert.Equal(t, 2, p.Skills[0].Level)
}

func TestPurchase(t *testing.T) {
	tree := DefaultTree()
	ctx := context.Background()

	t.Run("first level", func(t *testing.T) {
		levels, points, err := tree.Purchase(ctx, nil, 5, SkillMaxHP)
		require.NoError(t, err)
		assert.Equal(t, 2, points)
		assert.Equal(t, []domain.AppliedSkill{{SkillID: SkillMaxHP, Level: 1}}, levels)
	})

	t.Run("level up does not touch input", func(t *testing.T) {
		owned := []domain.AppliedSkill{{SkillID: SkillBaseAttack, Level: 4}}
		levels, points, err := tree.Purchase(ctx, owned, 2, SkillBaseAttack)
		require.NoError(t, err)
		assert.Zero(t, points)
		assert.Equal(t, 5, Level(levels, SkillBaseAttack))
		assert.Equal(t, 4, owned[0].Level)
	})

	t.Run("maxed", func(t *testing.T) {
		owned := []domain.AppliedSkill{{SkillID: SkillMaxHP, Level: 5}}
		_, points, err := tree.Purchase(ctx, owned, 50, SkillMaxHP)
		assert.ErrorIs(t, err, domain.ErrSkillMaxed)
		assert.Equal(t, 50, points)
	})

	t.Run("not enough points", func(t *testing.T) {
		_, _, err := tree.Purchase(ctx, nil, 4, SkillMoneyPerRound)
		assert.ErrorIs(t, err, domain.ErrInsufficientSkillPoints)
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := tree.Purchase(ctx, nil, 10, "teleport")
		assert.ErrorIs(t, err, domain.ErrUnknownSkill)
	})
}

func TestPointsSpentAndSummary(t *testing.T) {
	tree := DefaultTree()
	levels := []domain.AppliedSkill{
		{SkillID: SkillBaseAttack, Level: 10},
		{SkillID: SkillStartingMoney, Level: 2},
	}

	assert.Equal(t, 26, tree.PointsSpent(levels))

	summary := tree.Summary(levels)
	require.Len(t, summary, 7)
	assert.True(t, summary[0].Maxed)
	assert.Zero(t, summary[0].NextCost)
	assert.Equal(t, 20, summary[0].Spent)
	assert.False(t, summary[3].Maxed)
	assert.Equal(t, 2, summary[3].Level)
	assert.Equal(t, 3, summary[3].NextCost)
}

func TestAutoAllocate(t *testing.T) {
	tree := DefaultTree()

	assert.Empty(t, tree.AutoAllocate(0))
	assert.Empty(t, tree.AutoAllocate(1))

	levels := tree.AutoAllocate(20)
	assert.LessOrEqual(t, tree.PointsSpent(levels), 20)
	assert.Equal(t, 1, Level(levels, SkillBaseAttack))
	for _, applied := range levels {
		s, ok := tree.Skill(applied.SkillID)
		require.True(t, ok)
		assert.LessOrEqual(t, applied.Level, s.MaxLevel)
	}

	// every remaining point is too few for the cheapest skill
	assert.Less(t, 20-tree.PointsSpent(levels), 2)
}

func TestSkillMultiplierSource(t *testing.T) {
	tree := DefaultTree()
	src := NewSkillMultiplierSource(tree)
	p := &domain.Player{
		Stats: domain.PlayerStats{BaseAttack: 20, CurrentHP: 100, MaxHP: 100},
		Skills: []domain.AppliedSkill{
			{SkillID: SkillAttackMultiplier, Level: 2},
			{SkillID: SkillDefenseMultiplier, Level: 1},
		},
	}

	assert.InDelta(t, 0.10, src.AttackMultiplierBonus(p), 1e-9)
	assert.InDelta(t, 0.05, src.DefenseMultiplierBonus(p), 1e-9)

	calc := battle.NewCalculator(config.DefaultBattleSettings(), &utils.ScriptedSource{}, src)
	stats := calc.PlayerStats(p)
	assert.InDelta(t, 1.10, stats.AttackMultiplier, 1e-9)
	assert.Equal(t, 22, stats.TotalAttack)
}
