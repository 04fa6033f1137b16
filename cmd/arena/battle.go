package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/osse101/EmojiBattler_Go/internal/battle"
	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/progression"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// BattleCommand runs one battle between two random rosters
type BattleCommand struct {
	env *env
}

func (c *BattleCommand) Name() string {
	return "battle"
}

func (c *BattleCommand) Description() string {
	return "Run a single seeded battle between two random rosters"
}

func (c *BattleCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	seed := fs.Int64("seed", c.env.cfg.Seed, "random seed")
	round := fs.Int("round", 1, "round number, drives the damage multiplier")
	items := fs.Int("items", 4, "items per side, drawn from the catalog")
	quiet := fs.Bool("quiet", false, "print the verdict only")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *items < 0 || *round < 1 {
		return fmt.Errorf("items must be >= 0 and round >= 1")
	}

	rng := utils.NewSeededSource(*seed)
	start := c.env.settings.Player
	newSide := func(name string, ai bool) *domain.Player {
		return &domain.Player{
			Name: name,
			IsAI: ai,
			Stats: domain.PlayerStats{
				BaseAttack:  start.StartingAttack,
				BaseDefense: start.StartingDefense,
				CurrentHP:   start.StartingHP,
				MaxHP:       start.StartingHP,
				Speed:       1,
				Lives:       c.env.settings.Rules.MaxLives,
			},
			Items: c.env.catalog.Random(rng, *items, nil),
		}
	}
	player := newSide("Player", false)
	opponent := newSide("Opponent", true)

	engine := battle.NewEngine(c.env.settings.Battle, rng, progression.NewSkillMultiplierSource(c.env.tree))
	started := time.Now()
	state, err := engine.Run(ctx, player, opponent, *round)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Battle %s (seed %d)", state.ID, *seed))
	fmt.Printf("Player:   %v\n", player.ItemIDs())
	fmt.Printf("Opponent: %v\n", opponent.ItemIDs())
	if !*quiet {
		fmt.Println()
		fmt.Println(battle.FormatBattleLog(state.Events))
	}
	fmt.Println()

	switch state.Winner {
	case domain.WinnerPlayer:
		PrintSuccess("Player wins on turn %d (%d HP left)", state.Turn, state.Player.Stats.CurrentHP)
	case domain.WinnerOpponent:
		PrintError("Opponent wins on turn %d (%d HP left)", state.Turn, state.Opponent.Stats.CurrentHP)
	default:
		PrintWarning("Draw after %d turns", state.Turn)
	}
	PrintInfo("Damage dealt %d, received %d, blocked %d in %v",
		state.PlayerDelta.DamageDealt,
		state.PlayerDelta.DamageReceived,
		state.PlayerDelta.DamageBlocked,
		time.Since(started))
	return nil
}

// difficultyFlags registers the shared difficulty flags on fs
func difficultyFlags(fs *flag.FlagSet) func() (domain.Difficulty, error) {
	name := fs.String("difficulty", defaultDifficulty, "normal, hard, expert, master or torment")
	torment := fs.Int("torment", progression.MinTormentLevel, "torment level, only read for torment")
	return func() (domain.Difficulty, error) {
		return progression.Preset(domain.DifficultyID(*name), *torment)
	}
}
