package battle

// ============================================================================
// Event Detail Descriptions
// ============================================================================

// Attack breakdown labels, in the order they appear on an attack event
const (
	DescBaseAttack    = "Base Attack"
	DescItemAttack    = "Item Attack"
	DescEffectDamage  = "Effect Damage"
	DescAttackReduced = "Attack Reduced"
	DescBaseDefense   = "Base Defense"
	DescItemBlock     = "Item/Effect Block"
	DescFinalDamage   = "Final Damage"
	DescMultipliedFmt = "Multiplier x%.2f"
)

// Effect outcome labels
const (
	DescAtMaxHP       = "(at max HP)"
	DescChanceMissed  = "(chance failed)"
	DescLifeSaved     = "Life saved!"
	DescPowerExpired  = "Temporary power expired"
	DescDirectDamage  = "Direct Damage"
	DescVampireFmt    = "Vampire (%d%%)"
	DescVampireMaxFmt = "Vampire (%d%%) - at max HP"
	DescStackFmt      = "Stack +%g (%d/%d)"
	DescSpeedFmt      = "Speed increased to %d%%"
	DescMultiplierFmt = "Damage multiplier: %d%%"
	DescBattleTooLong = "Battle too long"
	DescBattleVerdict = "Battle over"
)

// ============================================================================
// Event Messages
// ============================================================================

const (
	MsgTurnStartFmt        = "--- Turn %d (%s) ---"
	MsgAttackBlockedFmt    = "%s attacks for %d damage. %s blocks %d%% (%d damage dealt)."
	MsgAttackFmt           = "%s attacks for %d damage!"
	MsgHealFmt             = "%s %s heals for %d HP!"
	MsgHealBlockedFmt      = "%s %s heal blocked (at max HP)"
	MsgHealMissedFmt       = "%s %s fails to heal"
	MsgVampireFmt          = "%s %s drains %d HP!"
	MsgVampireBlockedFmt   = "%s %s vampire heal blocked (at max HP)"
	MsgStackFmt            = "%s %s gains a stack! (%d/%d)"
	MsgPowerFadesFmt       = "%s %s power fades away!"
	MsgLifeSavedFmt        = "%s %s prevents life loss!"
	MsgDirectDamageFmt     = "%s %s strikes for %d damage!"
	MsgSpeedIncreaseFmt    = "⚡ Speed increased! Attacks now deal %d%% damage!"
	MsgDamageMultiplierFmt = "💥 Battle intensifies! Damage multiplier increased to %d%%!"
	MsgBattleTooLong       = "⏱️ Battle lasted too long! It's a draw!"
	MsgBattleWonFmt        = "🏆 %s wins the battle!"
	MsgDoubleKnockout      = "☠️ Both sides fall! It's a draw!"
)

// Side display names used in messages
const (
	NamePlayer   = "player"
	NameOpponent = "opponent"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgBattleStarted  = "Battle started"
	LogMsgBattleFinished = "Battle finished"
)
