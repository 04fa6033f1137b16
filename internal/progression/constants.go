package progression

import "github.com/osse101/EmojiBattler_Go/internal/domain"

// ============================================================================
// Skill Identifiers
// ============================================================================

// Skill ids of the bundled tree
const (
	SkillBaseAttack        domain.SkillID = "base_attack"
	SkillBaseDefense       domain.SkillID = "base_defense"
	SkillMaxHP             domain.SkillID = "max_hp"
	SkillStartingMoney     domain.SkillID = "starting_money"
	SkillMoneyPerRound     domain.SkillID = "money_per_round"
	SkillAttackMultiplier  domain.SkillID = "attack_multiplier"
	SkillDefenseMultiplier domain.SkillID = "defense_multiplier"
)

// ============================================================================
// Difficulty Rules
// ============================================================================

const (
	// TormentUnlockWindow is how many torment levels above the highest beaten one can be selected
	TormentUnlockWindow = 2

	// MinTormentLevel is the first torment level
	MinTormentLevel = 1

	// Skill point awards per won battle
	NormalWinsPerPoint  = 3
	HardWinsPerPoint    = 2
	ExpertPointsPerWin  = 1
	MasterPointsPerWin  = 2
	TormentPointsPerWin = 4
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgReadTree          = "failed to read skill tree: %w"
	ErrMsgParseTree         = "failed to parse skill tree: %w"
	ErrMsgEmptyTree         = "no skills defined"
	ErrMsgSkillFieldFmt     = "skill '%s' failed %s on %s"
	ErrMsgSkillAtIndexFmt   = "skill at index %d failed %s on %s"
	ErrMsgSkillMaxedFmt     = "%s is at level %d: %w"
	ErrMsgSkillCostFmt      = "%s costs %d, have %d: %w"
	ErrMsgTormentLockedFmt  = "torment %d requires beating torment %d: %w"
	ErrMsgTormentLevelFmt   = "torment level %d: %w"
	ErrMsgDifficultyNameFmt = "%s: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSkillPurchased = "Skill purchased"
	LogMsgTreeLoaded     = "Skill tree loaded"
)
