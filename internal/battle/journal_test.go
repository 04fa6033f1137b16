package battle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

func TestCreateAttackEvent_DetailOrder(t *testing.T) {
	result := DamageResult{
		RawDamage:    20,
		BlockAmount:  10,
		BlockPercent: 0.1,
		FinalDamage:  18,
		BaseDamage:   10,
		ItemDamages: []Contribution{
			{ItemID: "sword", ItemName: "Sword", ItemEmoji: "🗡️", Amount: 4, Label: DescItemAttack},
		},
		EffectDamages: []Contribution{
			{ItemID: "fire", ItemName: "Fire", ItemEmoji: "🔥", Amount: 6, Label: DescEffectDamage},
		},
		BaseBlock: 5,
		ItemBlocks: []Contribution{
			{ItemID: "shield", ItemName: "Shield", ItemEmoji: "🛡️", Amount: 5, Label: DescItemBlock},
		},
	}

	ev := CreateAttackEvent(2, domain.SidePlayer, result, 90, 82)

	require.Len(t, ev.Details, 6)
	descriptions := make([]string, 0, len(ev.Details))
	for _, d := range ev.Details {
		descriptions = append(descriptions, d.Description)
	}
	assert.Equal(t, []string{
		DescBaseAttack, DescItemAttack, DescEffectDamage, DescBaseDefense, DescItemBlock, DescFinalDamage,
	}, descriptions)
	assert.Equal(t, 4, ev.Details[1].RawDamage)
	assert.Equal(t, 5, ev.Details[4].BlockAmount)
	assert.Equal(t, 18, ev.Details[5].FinalDamage)
	assert.Equal(t, "Player attacks for 20 damage. Opponent blocks 10% (18 damage dealt).", ev.Message)
}

func TestCreateAttackEvent_NoBlockSection(t *testing.T) {
	ev := CreateAttackEvent(1, domain.SideOpponent, DamageResult{RawDamage: 7, FinalDamage: 7, BaseDamage: 7}, 93, 100)

	require.Len(t, ev.Details, 2)
	assert.Equal(t, DescBaseAttack, ev.Details[0].Description)
	assert.Equal(t, DescFinalDamage, ev.Details[1].Description)
	assert.Equal(t, "Opponent attacks for 7 damage!", ev.Message)
	assert.Equal(t, domain.SideOpponent, ev.Attacker)
}

func TestCreateAttackEvent_MultiplierDetailReproducesRawDamage(t *testing.T) {
	calc := newTestCalculator()
	rage := &domain.Item{ID: "rage", Effects: []domain.ItemEffect{
		{Trigger: domain.TriggerPassive, Type: domain.EffectAttackMultiply, Value: 0.5},
	}}
	sword := &domain.Item{ID: "sword", Name: "Sword", BaseAttack: 4}
	result := calc.CalculateDamage(newTestPlayer("a", 10, 0, 100, rage, sword), newTestPlayer("d", 0, 20, 100), 1, 1.2)

	ev := CreateAttackEvent(4, domain.SidePlayer, result, 100, 100)

	sum := 0
	var multiplier *domain.BattleEventDetail
	for i, d := range ev.Details {
		sum += d.RawDamage
		if d.Description == fmt.Sprintf(DescMultipliedFmt, 1.5*1.2) {
			multiplier = &ev.Details[i]
		}
	}
	require.NotNil(t, multiplier)
	assert.Equal(t, result.RawDamage, sum)
	assert.Equal(t, utils.Round(14*1.5*1.2)-14, multiplier.RawDamage)
	assert.Equal(t, DescFinalDamage, ev.Details[len(ev.Details)-1].Description)

	t.Run("unit multipliers add no entry", func(t *testing.T) {
		plain := calc.CalculateDamage(newTestPlayer("a", 10, 0, 100, sword), newTestPlayer("d", 0, 0, 100), 1, 1)
		ev := CreateAttackEvent(0, domain.SidePlayer, plain, 100, 100)
		assert.Len(t, ev.Details, 3)
	})
}

func TestVerdictEvents(t *testing.T) {
	won := CreateBattleWonEvent(5, domain.SideOpponent, 0, 40)
	assert.Equal(t, domain.BattleEventBattleEnd, won.Type)
	assert.Equal(t, "🏆 Opponent wins the battle!", won.Message)

	tooLong := CreateBattleTooLongEvent(75, 12, 30)
	assert.Equal(t, domain.BattleEventBattleEnd, tooLong.Type)
	assert.Equal(t, DescBattleTooLong, tooLong.Details[0].Description)
	assert.Equal(t, 12, tooLong.PlayerHP)
}

func TestFormatEvent(t *testing.T) {
	ev := CreateAttackEvent(0, domain.SidePlayer, DamageResult{
		RawDamage:   14,
		FinalDamage: 14,
		BaseDamage:  10,
		ItemDamages: []Contribution{
			{ItemID: "sword", ItemName: "Sword", ItemEmoji: "🗡️", Amount: 4, Label: DescItemAttack},
		},
	}, 100, 86)
	ev.Details = append(ev.Details, domain.BattleEventDetail{
		ItemID: "heart", ItemName: "Heart", ItemEmoji: "❤️", HealAmount: 4,
	})

	expected := "[Turn 0] Player attacks for 14 damage!\n" +
		"  🗡️ Sword: +4 dmg (Item Attack)\n" +
		"  ❤️ Heart: +4 heal\n" +
		"  Player HP: 100 | Opponent HP: 86"
	assert.Equal(t, expected, FormatEvent(ev))
}

func TestFormatBattleLog(t *testing.T) {
	events := []domain.BattleEvent{
		CreateTurnStartEvent(0, domain.SidePlayer, 100, 100),
		CreateBattleWonEvent(0, domain.SidePlayer, 100, 0),
	}

	out := FormatBattleLog(events)

	assert.Equal(t, "[Turn 0] --- Turn 1 (Player) ---\n"+
		"  Player HP: 100 | Opponent HP: 100\n"+
		"[Turn 0] 🏆 Player wins the battle!\n"+
		"  Player HP: 100 | Opponent HP: 0", out)
	assert.Empty(t, FormatBattleLog(nil))
}
