package domain

// SkillID identifies a node of the persistent skill tree
type SkillID string

// SkillEffectType is the stat a skill improves
type SkillEffectType string

const (
	SkillEffectBaseAttack        SkillEffectType = "base_attack"
	SkillEffectBaseDefense       SkillEffectType = "base_defense"
	SkillEffectMaxHP             SkillEffectType = "max_hp"
	SkillEffectStartingMoney     SkillEffectType = "starting_money"
	SkillEffectMoneyPerRound     SkillEffectType = "money_per_round"
	SkillEffectAttackMultiplier  SkillEffectType = "attack_multiplier"
	SkillEffectDefenseMultiplier SkillEffectType = "defense_multiplier"
)

// Skill is a purchasable skill tree node. ValuePerLevel is added once per level.
type Skill struct {
	ID            SkillID         `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Description   string          `json:"description" yaml:"description"`
	Cost          int             `json:"cost" yaml:"cost"`
	MaxLevel      int             `json:"max_level" yaml:"max_level"`
	Effect        SkillEffectType `json:"effect" yaml:"effect"`
	ValuePerLevel float64         `json:"value_per_level" yaml:"value_per_level"`
}

// AppliedSkill is a skill and the level a player owns it at
type AppliedSkill struct {
	SkillID SkillID `json:"skill_id"`
	Level   int     `json:"level"`
}

// DifficultyID names a difficulty preset
type DifficultyID string

const (
	DifficultyNormal  DifficultyID = "normal"
	DifficultyHard    DifficultyID = "hard"
	DifficultyExpert  DifficultyID = "expert"
	DifficultyMaster  DifficultyID = "master"
	DifficultyTorment DifficultyID = "torment"
)

// Difficulty describes how strong the AI opponent is.
// TormentLevel is only meaningful for DifficultyTorment.
type Difficulty struct {
	ID                   DifficultyID `json:"id"`
	TormentLevel         int          `json:"torment_level,omitempty"`
	AISkillPoints        int          `json:"ai_skill_points"`
	AIMoneyBonus         int          `json:"ai_money_bonus"`
	AIStatMultiplier     float64      `json:"ai_stat_multiplier"`
	AIOptimalPlayPercent float64      `json:"ai_optimal_play_percent"`
}

// DifficultyProgress records the hardest difficulties beaten across playthroughs
type DifficultyProgress struct {
	Normal  bool `json:"normal"`
	Hard    bool `json:"hard"`
	Expert  bool `json:"expert"`
	Master  bool `json:"master"`
	Torment int  `json:"torment"`
}
