package progression

import (
	"context"
	"fmt"

	"github.com/osse101/EmojiBattler_Go/internal/battle"
	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/logger"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// Bonuses are the summed effects of a set of skill levels. The multiplier
// fields hold the bonus only, so 0.1 means +10%.
type Bonuses struct {
	BaseAttack        int     `json:"base_attack"`
	BaseDefense       int     `json:"base_defense"`
	MaxHP             int     `json:"max_hp"`
	StartingMoney     int     `json:"starting_money"`
	MoneyPerRound     int     `json:"money_per_round"`
	AttackMultiplier  float64 `json:"attack_multiplier"`
	DefenseMultiplier float64 `json:"defense_multiplier"`
}

// SkillStatus is one row of a skill summary
type SkillStatus struct {
	Skill    domain.Skill
	Level    int
	Maxed    bool
	Spent    int
	NextCost int
}

// Bonuses sums every known skill. Unknown ids are ignored.
func (t *Tree) Bonuses(levels []domain.AppliedSkill) Bonuses {
	var b Bonuses
	for _, applied := range levels {
		s, ok := t.byID[applied.SkillID]
		if !ok || applied.Level <= 0 {
			continue
		}
		total := s.ValuePerLevel * float64(applied.Level)
		switch s.Effect {
		case domain.SkillEffectBaseAttack:
			b.BaseAttack += utils.Round(total)
		case domain.SkillEffectBaseDefense:
			b.BaseDefense += utils.Round(total)
		case domain.SkillEffectMaxHP:
			b.MaxHP += utils.Round(total)
		case domain.SkillEffectStartingMoney:
			b.StartingMoney += utils.Round(total)
		case domain.SkillEffectMoneyPerRound:
			b.MoneyPerRound += utils.Round(total)
		case domain.SkillEffectAttackMultiplier:
			b.AttackMultiplier += total
		case domain.SkillEffectDefenseMultiplier:
			b.DefenseMultiplier += total
		}
	}
	return b
}

// ApplySkills bakes the flat stat skills into p and records the levels on it.
// Multiplier skills are not baked in; SkillMultiplierSource reads them at
// damage time. Money skills are applied by the economy.
func (t *Tree) ApplySkills(p *domain.Player, levels []domain.AppliedSkill) {
	b := t.Bonuses(levels)
	p.Stats.BaseAttack += b.BaseAttack
	p.Stats.BaseDefense += b.BaseDefense
	p.Stats.MaxHP += b.MaxHP
	p.Stats.CurrentHP += b.MaxHP
	p.Skills = append([]domain.AppliedSkill(nil), levels...)
}

// Level returns the owned level of a skill
func Level(levels []domain.AppliedSkill, id domain.SkillID) int {
	for _, applied := range levels {
		if applied.SkillID == id {
			return applied.Level
		}
	}
	return 0
}

// PointsSpent totals the cost of every owned level
func (t *Tree) PointsSpent(levels []domain.AppliedSkill) int {
	total := 0
	for _, applied := range levels {
		if s, ok := t.byID[applied.SkillID]; ok {
			total += s.Cost * applied.Level
		}
	}
	return total
}

// CanAfford reports whether one more level of s can be bought
func CanAfford(s domain.Skill, currentLevel, points int) bool {
	return currentLevel < s.MaxLevel && points >= s.Cost
}

// Purchase buys one level of id. It returns the new level list and the
// remaining points; the input slice is not modified.
func (t *Tree) Purchase(ctx context.Context, levels []domain.AppliedSkill, points int, id domain.SkillID) ([]domain.AppliedSkill, int, error) {
	s, ok := t.byID[id]
	if !ok {
		return nil, points, fmt.Errorf("%s: %w", id, domain.ErrUnknownSkill)
	}

	current := Level(levels, id)
	if current >= s.MaxLevel {
		return nil, points, fmt.Errorf(ErrMsgSkillMaxedFmt, s.Name, current, domain.ErrSkillMaxed)
	}
	if points < s.Cost {
		return nil, points, fmt.Errorf(ErrMsgSkillCostFmt, s.Name, s.Cost, points, domain.ErrInsufficientSkillPoints)
	}

	updated := make([]domain.AppliedSkill, 0, len(levels)+1)
	found := false
	for _, applied := range levels {
		if applied.SkillID == id {
			applied.Level++
			found = true
		}
		updated = append(updated, applied)
	}
	if !found {
		updated = append(updated, domain.AppliedSkill{SkillID: id, Level: 1})
	}

	logger.FromContext(ctx).Debug(LogMsgSkillPurchased, "skill", id, "level", current+1, "cost", s.Cost)
	return updated, points - s.Cost, nil
}

// AutoAllocate spends points round-robin over the tree in file order, one
// level at a time, until nothing affordable is left. AI opponents use it to
// turn their difficulty skill points into levels.
func (t *Tree) AutoAllocate(points int) []domain.AppliedSkill {
	levels := make([]domain.AppliedSkill, 0, len(t.skills))
	for progress := true; progress; {
		progress = false
		for _, s := range t.skills {
			current := Level(levels, s.ID)
			if !CanAfford(s, current, points) {
				continue
			}
			points -= s.Cost
			levels = setLevel(levels, s.ID, current+1)
			progress = true
		}
	}
	return levels
}

func setLevel(levels []domain.AppliedSkill, id domain.SkillID, level int) []domain.AppliedSkill {
	for i := range levels {
		if levels[i].SkillID == id {
			levels[i].Level = level
			return levels
		}
	}
	return append(levels, domain.AppliedSkill{SkillID: id, Level: level})
}

// Summary lists every skill with its owned level and next cost
func (t *Tree) Summary(levels []domain.AppliedSkill) []SkillStatus {
	out := make([]SkillStatus, 0, len(t.skills))
	for _, s := range t.skills {
		lvl := Level(levels, s.ID)
		status := SkillStatus{
			Skill: s,
			Level: lvl,
			Maxed: lvl >= s.MaxLevel,
			Spent: s.Cost * lvl,
		}
		if !status.Maxed {
			status.NextCost = s.Cost
		}
		out = append(out, status)
	}
	return out
}

// SkillMultiplierSource feeds attack and defense multiplier skills into the
// damage calculator, read from Player.Skills.
type SkillMultiplierSource struct {
	tree *Tree
}

var _ battle.MultiplierSource = (*SkillMultiplierSource)(nil)

// NewSkillMultiplierSource creates a source backed by tree
func NewSkillMultiplierSource(tree *Tree) *SkillMultiplierSource {
	return &SkillMultiplierSource{tree: tree}
}

// AttackMultiplierBonus implements battle.MultiplierSource
func (s *SkillMultiplierSource) AttackMultiplierBonus(p *domain.Player) float64 {
	return s.tree.Bonuses(p.Skills).AttackMultiplier
}

// DefenseMultiplierBonus implements battle.MultiplierSource
func (s *SkillMultiplierSource) DefenseMultiplierBonus(p *domain.Player) float64 {
	return s.tree.Bonuses(p.Skills).DefenseMultiplier
}
