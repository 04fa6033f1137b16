package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/osse101/EmojiBattler_Go/internal/event"
	"github.com/osse101/EmojiBattler_Go/internal/game"
	"github.com/osse101/EmojiBattler_Go/internal/metrics"
)

// BatchCommand autoplays many seeded games in parallel
type BatchCommand struct {
	env *env
}

func (c *BatchCommand) Name() string {
	return "batch"
}

func (c *BatchCommand) Description() string {
	return "Autoplay many seeded games in parallel and report the win rate"
}

func (c *BatchCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	difficulty := difficultyFlags(fs)
	games := fs.Int("games", 100, "number of games")
	workers := fs.Int("workers", c.env.cfg.Workers, "parallel games")
	seed := fs.Int64("seed", c.env.cfg.Seed, "seed of the first game, game i uses seed+i")
	skill := fs.Float64("skill", defaultSkill, "how well the player shops, 0 (random) to 1 (greedy)")
	verbose := fs.Bool("v", false, "print every game")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := difficulty()
	if err != nil {
		return err
	}

	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return err
	}

	started := time.Now()
	report, err := game.RunBatch(ctx, game.BatchConfig{
		Games:      *games,
		Workers:    *workers,
		Seed:       *seed,
		Difficulty: d,
		Skill:      *skill,
		Settings:   c.env.settings,
		Catalog:    c.env.catalog,
		Tree:       c.env.tree,
		Bus:        bus,
	})
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Batch of %d games (%s, %d workers)", report.Games, d.ID, *workers))
	if *verbose {
		for _, r := range report.Results {
			verdict := "defeat"
			if r.Victory {
				verdict = "victory"
			}
			fmt.Printf("  seed %-6d %-8s rounds %2d, won %2d, lost %2d\n",
				r.Seed, verdict, r.Stats.RoundsSurvived, r.Stats.BattlesWon, r.Stats.BattlesLost)
		}
	}
	PrintInfo("Win rate %.1f%% (%d/%d)", report.WinRate*100, report.Victories, report.Games)
	PrintInfo("Average rounds %.2f, average battles won %.2f", report.AverageRounds, report.AverageWins)
	PrintInfo("Skill points earned %d", report.SkillPoints)
	PrintSuccess("Done in %v", time.Since(started).Round(time.Millisecond))
	return nil
}
