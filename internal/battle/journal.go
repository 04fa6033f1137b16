package battle

import (
	"fmt"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// CreateAttackEvent turns a damage result into an attack event. Details are
// ordered: base damage, item damages, effect damages, the multiplier share
// (when attack or damage multipliers are not 1), then (when anything was
// blocked) base defense and item or effect blocks, and finally the final damage.
func CreateAttackEvent(turn int, attacker domain.Side, result DamageResult, playerHP, opponentHP int) domain.BattleEvent {
	details := make([]domain.BattleEventDetail, 0, 4+len(result.ItemDamages)+len(result.EffectDamages)+len(result.ItemBlocks))

	details = append(details, domain.BattleEventDetail{
		RawDamage:   result.BaseDamage,
		Description: DescBaseAttack,
	})
	for _, c := range result.ItemDamages {
		details = append(details, contributionDetail(c, true))
	}
	for _, c := range result.EffectDamages {
		details = append(details, contributionDetail(c, true))
	}
	if m := result.AttackMultiplier * result.DamageMultiplier; m != 0 && m != 1 {
		sum := 0
		for _, d := range details {
			sum += d.RawDamage
		}
		details = append(details, domain.BattleEventDetail{
			RawDamage:   result.RawDamage - max(sum, 0),
			Description: fmt.Sprintf(DescMultipliedFmt, m),
		})
	}

	if result.BlockAmount > 0 {
		details = append(details, domain.BattleEventDetail{
			BlockAmount:  result.BaseBlock,
			BlockPercent: result.BlockPercent,
			Description:  DescBaseDefense,
		})
		for _, c := range result.ItemBlocks {
			details = append(details, contributionDetail(c, false))
		}
	}

	details = append(details, domain.BattleEventDetail{
		FinalDamage: result.FinalDamage,
		Description: DescFinalDamage,
	})

	return domain.BattleEvent{
		Turn:       turn,
		Attacker:   attacker,
		Type:       domain.BattleEventAttack,
		Details:    details,
		PlayerHP:   playerHP,
		OpponentHP: opponentHP,
		Message:    attackMessage(attacker, result),
	}
}

func contributionDetail(c Contribution, isDamage bool) domain.BattleEventDetail {
	d := domain.BattleEventDetail{
		ItemID:      c.ItemID,
		ItemName:    c.ItemName,
		ItemEmoji:   c.ItemEmoji,
		Description: c.Label,
	}
	if isDamage {
		d.RawDamage = c.Amount
	} else {
		d.BlockAmount = c.Amount
	}
	return d
}

func attackMessage(attacker domain.Side, result DamageResult) string {
	name := displayName(attacker)
	if result.BlockPercent > 0 {
		return fmt.Sprintf(MsgAttackBlockedFmt, name, result.RawDamage, displayName(attacker.Other()),
			utils.Round(result.BlockPercent*100), result.FinalDamage)
	}
	return fmt.Sprintf(MsgAttackFmt, name, result.FinalDamage)
}

// CreateTurnStartEvent marks the start of a single attack turn
func CreateTurnStartEvent(turn int, side domain.Side, playerHP, opponentHP int) domain.BattleEvent {
	return domain.BattleEvent{
		Turn:       turn,
		Attacker:   side,
		Type:       domain.BattleEventTurnStart,
		Details:    []domain.BattleEventDetail{},
		PlayerHP:   playerHP,
		OpponentHP: opponentHP,
		Message:    fmt.Sprintf(MsgTurnStartFmt, turn+1, displayName(side)),
	}
}

// CreateSpeedIncreaseEvent announces a new speed multiplier
func CreateSpeedIncreaseEvent(turn int, side domain.Side, multiplier float64, playerHP, opponentHP int) domain.BattleEvent {
	pct := utils.Round(multiplier * 100)
	return domain.BattleEvent{
		Turn:       turn,
		Attacker:   side,
		Type:       domain.BattleEventSpeedIncrease,
		Details:    []domain.BattleEventDetail{{Description: fmt.Sprintf(DescSpeedFmt, pct)}},
		PlayerHP:   playerHP,
		OpponentHP: opponentHP,
		Message:    fmt.Sprintf(MsgSpeedIncreaseFmt, pct),
	}
}

// CreateDamageMultiplierEvent announces a new late-battle damage multiplier
func CreateDamageMultiplierEvent(turn int, side domain.Side, multiplier float64, playerHP, opponentHP int) domain.BattleEvent {
	pct := utils.Round(multiplier * 100)
	return domain.BattleEvent{
		Turn:       turn,
		Attacker:   side,
		Type:       domain.BattleEventDamageMultiplier,
		Details:    []domain.BattleEventDetail{{Description: fmt.Sprintf(DescMultiplierFmt, pct)}},
		PlayerHP:   playerHP,
		OpponentHP: opponentHP,
		Message:    fmt.Sprintf(MsgDamageMultiplierFmt, pct),
	}
}

// CreateBattleTooLongEvent records a draw by turn limit
func CreateBattleTooLongEvent(turn, playerHP, opponentHP int) domain.BattleEvent {
	return domain.BattleEvent{
		Turn:       turn,
		Attacker:   domain.SidePlayer,
		Type:       domain.BattleEventBattleEnd,
		Details:    []domain.BattleEventDetail{{Description: DescBattleTooLong}},
		PlayerHP:   playerHP,
		OpponentHP: opponentHP,
		Message:    MsgBattleTooLong,
	}
}

// CreateDoubleKnockoutEvent records a draw where both sides fell at once
func CreateDoubleKnockoutEvent(turn, playerHP, opponentHP int) domain.BattleEvent {
	return domain.BattleEvent{
		Turn:       turn,
		Attacker:   domain.SidePlayer,
		Type:       domain.BattleEventBattleEnd,
		Details:    []domain.BattleEventDetail{{Description: DescBattleVerdict}},
		PlayerHP:   playerHP,
		OpponentHP: opponentHP,
		Message:    MsgDoubleKnockout,
	}
}

// CreateBattleWonEvent records a knockout
func CreateBattleWonEvent(turn int, winner domain.Side, playerHP, opponentHP int) domain.BattleEvent {
	return domain.BattleEvent{
		Turn:       turn,
		Attacker:   winner,
		Type:       domain.BattleEventBattleEnd,
		Details:    []domain.BattleEventDetail{{Description: DescBattleVerdict}},
		PlayerHP:   playerHP,
		OpponentHP: opponentHP,
		Message:    fmt.Sprintf(MsgBattleWonFmt, displayName(winner)),
	}
}

func sideName(s domain.Side) string {
	if s == domain.SidePlayer {
		return NamePlayer
	}
	return NameOpponent
}
