package battle

import (
	"fmt"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// defaultMaxStacks caps stack effects loaded without an explicit max
const defaultMaxStacks = 10

// EffectOutcome is what one trigger pass produced
type EffectOutcome struct {
	Events          []domain.BattleEvent
	PreventLifeLoss bool
	// DirectDamage is damage dealt to the other side by damage effects outside the attack itself
	DirectDamage int
}

// EffectsEngine applies the stateful item effects: heals, stacks, temporary
// power, life prevention and direct damage. Stat effects are read by the
// Calculator instead.
type EffectsEngine struct {
	rng utils.RandomSource
}

// NewEffectsEngine creates an effects engine drawing chance gates from rng
func NewEffectsEngine(rng utils.RandomSource) *EffectsEngine {
	return &EffectsEngine{rng: rng}
}

// ApplyEffects runs every effect of actor's items that matches trigger, in
// item order then effect order. Broken items are skipped entirely.
// damageDealt is the final damage of the attack that caused the trigger, or 0.
func (e *EffectsEngine) ApplyEffects(trigger domain.Trigger, actor, other *domain.Player, actorSide domain.Side, turn, damageDealt int) EffectOutcome {
	var out EffectOutcome

	for _, it := range actor.Items {
		for idx := range it.Effects {
			if it.IsBroken() {
				break
			}
			if it.Effects[idx].Trigger != trigger {
				continue
			}
			e.applyEffect(&out, it, idx, actor, other, actorSide, turn, damageDealt)
		}
	}

	return out
}

func (e *EffectsEngine) applyEffect(out *EffectOutcome, it *domain.Item, idx int, actor, other *domain.Player, side domain.Side, turn, damageDealt int) {
	eff := &it.Effects[idx]

	switch eff.Type {
	case domain.EffectHeal:
		if !utils.Roll(e.rng, eff.Chance) {
			out.Events = append(out.Events, missedHealEvent(it, turn, side, actor, other))
			return
		}
		healed := ApplyHeal(actor, utils.Round(eff.Value))
		detail := itemDetail(it)
		detail.HealAmount = healed
		msg := fmt.Sprintf(MsgHealFmt, it.Emoji, it.Name, healed)
		if healed == 0 {
			detail.Description = DescAtMaxHP
			msg = fmt.Sprintf(MsgHealBlockedFmt, it.Emoji, it.Name)
		}
		out.Events = append(out.Events, newEvent(turn, side, domain.BattleEventHeal, actor, other, msg, detail))

	case domain.EffectVampire:
		if damageDealt <= 0 {
			return
		}
		if !utils.Roll(e.rng, eff.Chance) {
			out.Events = append(out.Events, missedHealEvent(it, turn, side, actor, other))
			return
		}
		healed := ApplyHeal(actor, utils.Round(float64(damageDealt)*eff.Value))
		pct := utils.Round(eff.Value * 100)
		detail := itemDetail(it)
		detail.HealAmount = healed
		detail.Description = fmt.Sprintf(DescVampireFmt, pct)
		msg := fmt.Sprintf(MsgVampireFmt, it.Emoji, it.Name, healed)
		if healed == 0 {
			detail.Description = fmt.Sprintf(DescVampireMaxFmt, pct)
			msg = fmt.Sprintf(MsgVampireBlockedFmt, it.Emoji, it.Name)
		}
		out.Events = append(out.Events, newEvent(turn, side, domain.BattleEventHeal, actor, other, msg, detail))

	case domain.EffectStack:
		maxStacks := eff.MaxStacks
		if maxStacks <= 0 {
			maxStacks = defaultMaxStacks
		}
		if eff.CurrentStacks >= maxStacks {
			return
		}
		eff.CurrentStacks++
		detail := itemDetail(it)
		detail.Description = fmt.Sprintf(DescStackFmt, eff.Value, eff.CurrentStacks, maxStacks)
		msg := fmt.Sprintf(MsgStackFmt, it.Emoji, it.Name, eff.CurrentStacks, maxStacks)
		out.Events = append(out.Events, newEvent(turn, side, domain.BattleEventEffect, actor, other, msg, detail))

	case domain.EffectTempPower:
		if eff.TurnsLeft <= 0 {
			return
		}
		eff.TurnsLeft--
		if eff.TurnsLeft == 0 && eff.Breakable {
			it.Break(idx)
			detail := itemDetail(it)
			detail.Description = DescPowerExpired
			msg := fmt.Sprintf(MsgPowerFadesFmt, it.Emoji, it.Name)
			out.Events = append(out.Events, newEvent(turn, side, domain.BattleEventEffect, actor, other, msg, detail))
		}

	case domain.EffectPreventLifeLoss:
		if eff.IsBroken {
			return
		}
		it.Break(idx)
		out.PreventLifeLoss = true
		detail := itemDetail(it)
		detail.Description = DescLifeSaved
		msg := fmt.Sprintf(MsgLifeSavedFmt, it.Emoji, it.Name)
		out.Events = append(out.Events, newEvent(turn, side, domain.BattleEventEffect, actor, other, msg, detail))

	case domain.EffectDamage:
		// on_attack damage is part of the attack roll; on_defend damage has no target here
		if eff.Trigger == domain.TriggerOnAttack || eff.Trigger == domain.TriggerOnDefend {
			return
		}
		if !utils.Roll(e.rng, eff.Chance) {
			return
		}
		dmg := utils.Round(eff.Value)
		if dmg <= 0 {
			return
		}
		ApplyDamage(other, dmg)
		out.DirectDamage += dmg
		detail := itemDetail(it)
		detail.RawDamage = dmg
		detail.FinalDamage = dmg
		detail.Description = DescDirectDamage
		msg := fmt.Sprintf(MsgDirectDamageFmt, it.Emoji, it.Name, dmg)
		out.Events = append(out.Events, newEvent(turn, side, domain.BattleEventEffect, actor, other, msg, detail))

	case domain.EffectBlock,
		domain.EffectAttackMultiply,
		domain.EffectDefenseMultiply,
		domain.EffectSpeedBoost,
		domain.EffectLuck,
		domain.EffectReduceOpponentAttack:
		// read by the Calculator

	case domain.EffectMoneyBonus,
		domain.EffectMoneyMultiplier,
		domain.EffectMaxHPBonus:
		// applied by the economy between battles
	}
}

// missedHealEvent logs a heal whose chance roll failed as a zero heal
func missedHealEvent(it *domain.Item, turn int, side domain.Side, actor, other *domain.Player) domain.BattleEvent {
	detail := itemDetail(it)
	detail.Description = DescChanceMissed
	msg := fmt.Sprintf(MsgHealMissedFmt, it.Emoji, it.Name)
	return newEvent(turn, side, domain.BattleEventHeal, actor, other, msg, detail)
}

// ResetBattleEffects clears per-battle counters: stacks go back to zero and
// temporary power is refilled. Broken effects stay broken.
func ResetBattleEffects(p *domain.Player) {
	for _, it := range p.Items {
		for idx := range it.Effects {
			eff := &it.Effects[idx]
			switch eff.Type {
			case domain.EffectStack:
				eff.CurrentStacks = 0
			case domain.EffectTempPower:
				if eff.IsBroken {
					eff.TurnsLeft = 0
				} else {
					eff.TurnsLeft = eff.Duration
				}
			}
		}
	}
}

// UpdateBreakableItems counts one more battle against every breakable effect
// with a battle limit and breaks the ones that reached it. Money multipliers
// count shop rounds instead and are skipped. Returns the items that broke.
func UpdateBreakableItems(p *domain.Player) []*domain.Item {
	var broken []*domain.Item
	for _, it := range p.Items {
		if it.IsBroken() {
			continue
		}
		for idx := range it.Effects {
			eff := &it.Effects[idx]
			if !eff.Breakable || eff.MaxDuration <= 0 || eff.Type == domain.EffectMoneyMultiplier {
				continue
			}
			eff.CurrentDuration++
			if eff.CurrentDuration >= eff.MaxDuration && !it.IsBroken() {
				it.Break(idx)
				broken = append(broken, it)
			}
		}
	}
	return broken
}

// HasLifePreventionItem reports whether a loss this round would be absorbed
func HasLifePreventionItem(p *domain.Player) bool {
	_, idx := findLifePrevention(p)
	return idx >= 0
}

// ConsumeLifePrevention breaks the first unused life prevention effect and
// returns its item, or nil when the player has none.
func ConsumeLifePrevention(p *domain.Player) *domain.Item {
	it, idx := findLifePrevention(p)
	if idx < 0 {
		return nil
	}
	it.Break(idx)
	return it
}

func findLifePrevention(p *domain.Player) (*domain.Item, int) {
	for _, it := range p.Items {
		if it.IsBroken() {
			continue
		}
		for idx := range it.Effects {
			if it.Effects[idx].Type == domain.EffectPreventLifeLoss {
				return it, idx
			}
		}
	}
	return nil, -1
}

func itemDetail(it *domain.Item) domain.BattleEventDetail {
	return domain.BattleEventDetail{
		ItemID:    it.ID,
		ItemName:  it.Name,
		ItemEmoji: it.Emoji,
	}
}

// newEvent snapshots both HP values from the acting side's point of view
func newEvent(turn int, side domain.Side, typ domain.BattleEventType, actor, other *domain.Player, msg string, details ...domain.BattleEventDetail) domain.BattleEvent {
	ev := domain.BattleEvent{
		Turn:     turn,
		Attacker: side,
		Type:     typ,
		Details:  details,
		Message:  msg,
	}
	if side == domain.SidePlayer {
		ev.PlayerHP, ev.OpponentHP = actor.Stats.CurrentHP, other.Stats.CurrentHP
	} else {
		ev.PlayerHP, ev.OpponentHP = other.Stats.CurrentHP, actor.Stats.CurrentHP
	}
	return ev
}
