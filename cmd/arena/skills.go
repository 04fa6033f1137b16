package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/osse101/EmojiBattler_Go/internal/progression"
)

// SkillsCommand shows the skill tree and how the AI spends its points
type SkillsCommand struct {
	env *env
}

func (c *SkillsCommand) Name() string {
	return "skills"
}

func (c *SkillsCommand) Description() string {
	return "Show the skill tree and the AI allocation for a difficulty"
}

func (c *SkillsCommand) Run(_ context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	difficulty := difficultyFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	d, err := difficulty()
	if err != nil {
		return err
	}

	PrintHeader("Skill Tree")
	for _, s := range c.env.tree.All() {
		fmt.Printf("  %-20s cost %d, max level %2d, +%g %s per level (%d points to max)\n",
			s.Name, s.Cost, s.MaxLevel, s.ValuePerLevel, s.Effect, progression.TotalCost(s))
	}

	levels := c.env.tree.AutoAllocate(d.AISkillPoints)
	PrintHeader(fmt.Sprintf("AI allocation for %s (%d points)", d.ID, d.AISkillPoints))
	if len(levels) == 0 {
		PrintInfo("No skill points")
		return nil
	}
	for _, st := range c.env.tree.Summary(levels) {
		if st.Level == 0 {
			continue
		}
		fmt.Printf("  %-20s level %d/%d\n", st.Skill.Name, st.Level, st.Skill.MaxLevel)
	}
	bonuses := c.env.tree.Bonuses(levels)
	PrintInfo("Bonuses: %+v", bonuses)
	return nil
}
