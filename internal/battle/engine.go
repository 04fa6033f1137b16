package battle

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/EmojiBattler_Go/internal/config"
	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/logger"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// Engine runs battles. It is not safe for concurrent use because the
// calculator and effects engine share one random source; give every
// goroutine its own engine.
type Engine struct {
	settings config.BattleSettings
	calc     *Calculator
	effects  *EffectsEngine
}

// NewEngine creates a battle engine. Extra multiplier sources are added to
// the item multipliers.
func NewEngine(settings config.BattleSettings, rng utils.RandomSource, sources ...MultiplierSource) *Engine {
	return &Engine{
		settings: settings,
		calc:     NewCalculator(settings, rng, sources...),
		effects:  NewEffectsEngine(rng),
	}
}

// Calculator exposes the engine's calculator for stat previews
func (e *Engine) Calculator() *Calculator {
	return e.calc
}

// Run simulates a full battle between clones of player and opponent.
//
// The returned state owns the clones, including every item mutation that
// happened during the battle. The persistent players only receive the
// damage counters; callers copy item state back from the clones.
func (e *Engine) Run(ctx context.Context, player, opponent *domain.Player, round int) (*domain.BattleState, error) {
	if player == nil {
		return nil, domain.ErrNoPlayer
	}
	if opponent == nil {
		return nil, domain.ErrNoOpponent
	}

	bp := player.Clone()
	bo := opponent.Clone()
	bp.Stats.AttackCount = 0
	bo.Stats.AttackCount = 0

	state := &domain.BattleState{
		ID:                uuid.NewString(),
		Round:             round,
		Player:            bp,
		Opponent:          bo,
		Events:            []domain.BattleEvent{},
		Status:            domain.BattleRunning,
		PlayerHPHistory:   []int{bp.Stats.CurrentHP},
		OpponentHPHistory: []int{bo.Stats.CurrentHP},
		SpeedMultiplier:   1,
		DamageMultiplier:  1,
	}

	log := logger.FromContext(ctx)
	log.Debug(LogMsgBattleStarted, logger.AttrKeyBattleID, state.ID, "round", round)

	ResetBattleEffects(bp)
	ResetBattleEffects(bo)

	e.fire(state, domain.TriggerOnBattleStart, domain.SidePlayer)
	e.fire(state, domain.TriggerOnBattleStart, domain.SideOpponent)
	e.resolveKnockout(state)

	for !state.IsComplete() && state.Turn < e.settings.MaxTurns {
		e.playTurn(state)
	}

	if !state.IsComplete() {
		state.Status = domain.BattleComplete
		state.Winner = domain.WinnerDraw
		state.Events = append(state.Events, CreateBattleTooLongEvent(state.Turn, bp.Stats.CurrentHP, bo.Stats.CurrentHP))
	}

	e.fire(state, domain.TriggerOnBattleEnd, domain.SidePlayer)
	e.fire(state, domain.TriggerOnBattleEnd, domain.SideOpponent)

	UpdateBreakableItems(bp)
	UpdateBreakableItems(bo)

	foldDelta(player, state.PlayerDelta)
	foldDelta(opponent, state.OpponentDelta)

	log.Debug(LogMsgBattleFinished,
		logger.AttrKeyBattleID, state.ID,
		"winner", state.Winner,
		"turns", state.Turn,
		"events", len(state.Events))

	return state, nil
}

// sideForTurn maps even turns to the player and odd turns to the opponent
func sideForTurn(turn int) domain.Side {
	if turn%2 == 0 {
		return domain.SidePlayer
	}
	return domain.SideOpponent
}

func (e *Engine) playTurn(state *domain.BattleState) {
	side := sideForTurn(state.Turn)
	attacker := state.Participant(side)
	defender := state.Participant(side.Other())

	state.Events = append(state.Events, CreateTurnStartEvent(state.Turn, side,
		state.Player.Stats.CurrentHP, state.Opponent.Stats.CurrentHP))

	e.fire(state, domain.TriggerOnTurnStart, side)
	e.fire(state, domain.TriggerOnTurnStart, side.Other())
	if e.resolveKnockout(state) {
		return
	}

	if attacker.IsAlive() {
		e.executeAttack(state, attacker, defender, side)
		if e.resolveKnockout(state) {
			return
		}
	}

	e.fire(state, domain.TriggerOnTurnEnd, side)
	e.fire(state, domain.TriggerOnTurnEnd, side.Other())
	if e.resolveKnockout(state) {
		return
	}

	e.checkSpeedIncrease(state, side)
	e.checkDamageMultiplier(state, side)

	state.PlayerHPHistory = append(state.PlayerHPHistory, state.Player.Stats.CurrentHP)
	state.OpponentHPHistory = append(state.OpponentHPHistory, state.Opponent.Stats.CurrentHP)

	state.Turn++
}

// executeAttack resolves one hit and its trigger cascade. Heals from the
// cascade are folded into the attack event; other effect events follow it.
func (e *Engine) executeAttack(state *domain.BattleState, attacker, defender *domain.Player, side domain.Side) {
	result := e.calc.CalculateDamage(attacker, defender, state.SpeedMultiplier, state.DamageMultiplier)

	ApplyDamage(defender, result.FinalDamage)
	attacker.Stats.AttackCount++

	state.Delta(side).DamageDealt += result.FinalDamage
	received := state.Delta(side.Other())
	received.DamageReceived += result.FinalDamage
	received.DamageBlocked += max(0, result.RawDamage-result.FinalDamage)

	var heals []domain.BattleEventDetail
	var trailing []domain.BattleEvent
	collect := func(out EffectOutcome, actorSide domain.Side) {
		e.accountDirectDamage(state, out, actorSide)
		for _, ev := range out.Events {
			if ev.Type == domain.BattleEventHeal {
				heals = append(heals, ev.Details...)
				continue
			}
			trailing = append(trailing, ev)
		}
	}

	turn := state.Turn
	collect(e.effects.ApplyEffects(domain.TriggerOnHit, attacker, defender, side, turn, result.FinalDamage), side)
	collect(e.effects.ApplyEffects(domain.TriggerOnAttack, attacker, defender, side, turn, result.FinalDamage), side)
	if result.BlockPercent > 0 {
		collect(e.effects.ApplyEffects(domain.TriggerOnBlock, defender, attacker, side.Other(), turn, 0), side.Other())
	}
	collect(e.effects.ApplyEffects(domain.TriggerOnDefend, defender, attacker, side.Other(), turn, 0), side.Other())

	ev := CreateAttackEvent(turn, side, result, state.Player.Stats.CurrentHP, state.Opponent.Stats.CurrentHP)
	ev.Details = append(ev.Details, heals...)

	state.Events = append(state.Events, ev)
	state.Events = append(state.Events, trailing...)
}

// fire applies one trigger for one side and records its events
func (e *Engine) fire(state *domain.BattleState, trigger domain.Trigger, side domain.Side) {
	actor := state.Participant(side)
	other := state.Participant(side.Other())
	out := e.effects.ApplyEffects(trigger, actor, other, side, state.Turn, 0)
	e.accountDirectDamage(state, out, side)
	state.Events = append(state.Events, out.Events...)
}

func (e *Engine) accountDirectDamage(state *domain.BattleState, out EffectOutcome, side domain.Side) {
	if out.DirectDamage <= 0 {
		return
	}
	state.Delta(side).DamageDealt += out.DirectDamage
	state.Delta(side.Other()).DamageReceived += out.DirectDamage
}

// resolveKnockout ends the battle when a side is out of HP. A double
// knockout is a draw; otherwise the surviving side wins.
func (e *Engine) resolveKnockout(state *domain.BattleState) bool {
	playerDown := !state.Player.IsAlive()
	opponentDown := !state.Opponent.IsAlive()
	if !playerDown && !opponentDown {
		return false
	}

	state.Status = domain.BattleComplete
	pHP, oHP := state.Player.Stats.CurrentHP, state.Opponent.Stats.CurrentHP
	switch {
	case playerDown && opponentDown:
		state.Winner = domain.WinnerDraw
		state.Events = append(state.Events, CreateDoubleKnockoutEvent(state.Turn, pHP, oHP))
	case opponentDown:
		state.Winner = domain.WinnerPlayer
		state.Events = append(state.Events, CreateBattleWonEvent(state.Turn, domain.SidePlayer, pHP, oHP))
	default:
		state.Winner = domain.WinnerOpponent
		state.Events = append(state.Events, CreateBattleWonEvent(state.Turn, domain.SideOpponent, pHP, oHP))
	}

	state.PlayerHPHistory = append(state.PlayerHPHistory, pHP)
	state.OpponentHPHistory = append(state.OpponentHPHistory, oHP)
	return true
}

// checkSpeedIncrease recomputes speed every SpeedIncreaseInterval attack pairs.
// Turns count single attacks, so the interval is doubled.
func (e *Engine) checkSpeedIncrease(state *domain.BattleState, side domain.Side) {
	period := e.settings.SpeedIncreaseInterval * 2
	if period <= 0 || (state.Turn+1)%period != 0 {
		return
	}
	next := e.calc.SpeedMultiplier((state.Turn + 1) / 2)
	if next <= state.SpeedMultiplier {
		return
	}
	state.SpeedMultiplier = next
	state.Events = append(state.Events, CreateSpeedIncreaseEvent(state.Turn, side, next,
		state.Player.Stats.CurrentHP, state.Opponent.Stats.CurrentHP))
}

// checkDamageMultiplier recomputes the late-battle multiplier every four
// turns once the start round is reached, using turn/2 as the round.
func (e *Engine) checkDamageMultiplier(state *domain.BattleState, side domain.Side) {
	start := e.settings.DamageMultiplierStart * 2
	if state.Turn < start || (state.Turn-start)%4 != 0 {
		return
	}
	next := e.calc.DamageMultiplier(state.Turn / 2)
	if next <= state.DamageMultiplier {
		return
	}
	state.DamageMultiplier = next
	state.Events = append(state.Events, CreateDamageMultiplierEvent(state.Turn, side, next,
		state.Player.Stats.CurrentHP, state.Opponent.Stats.CurrentHP))
}

func foldDelta(p *domain.Player, d domain.BattleDelta) {
	p.Stats.DamageDealt += d.DamageDealt
	p.Stats.DamageReceived += d.DamageReceived
	p.Stats.DamageBlocked += d.DamageBlocked
}
