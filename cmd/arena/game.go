package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/economy"
	"github.com/osse101/EmojiBattler_Go/internal/event"
	"github.com/osse101/EmojiBattler_Go/internal/game"
	"github.com/osse101/EmojiBattler_Go/internal/metrics"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// GameCommand autoplays a full game against the AI
type GameCommand struct {
	env *env
}

func (c *GameCommand) Name() string {
	return "game"
}

func (c *GameCommand) Description() string {
	return "Autoplay a full game against the AI opponent"
}

func (c *GameCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	difficulty := difficultyFlags(fs)
	seed := fs.Int64("seed", c.env.cfg.Seed, "random seed")
	skill := fs.Float64("skill", defaultSkill, "how well the player shops, 0 (random) to 1 (greedy)")
	record := fs.String("record", "", "write every game event to this JSON lines file")
	showMetrics := fs.Bool("metrics", false, "print the event counters after the game")
	asJSON := fs.Bool("json", false, "print the final stats as JSON")
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
	if *record != "" {
		rec, err := event.NewFileRecorder(*record)
		if err != nil {
			return err
		}
		defer rec.Close()
		rec.Register(bus)
	}

	rng := utils.NewSeededSource(*seed)
	session, err := game.NewSession(game.Deps{
		Settings: c.env.settings,
		Catalog:  c.env.catalog,
		Tree:     c.env.tree,
		Bus:      bus,
		Archive:  game.NewArchive(c.env.cfg.ArchiveSize, c.env.cfg.ArchiveTTL),
		RNG:      rng,
	})
	if err != nil {
		return err
	}
	if err := session.InitializeGame(ctx, "Player", d, nil); err != nil {
		return err
	}

	human := economy.NewGreedyStrategy(
		domain.Difficulty{ID: d.ID, AIOptimalPlayPercent: *skill},
		c.env.settings.Economy.MaxItems,
		rng,
	)
	stats, err := session.Autoplay(ctx, human)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	PrintHeader(fmt.Sprintf("Game %s (%s, seed %d)", session.ID(), d.ID, *seed))
	for _, r := range session.Timeline() {
		line := fmt.Sprintf("Round %2d: %-8s player %3d HP, opponent %3d HP", r.Round, r.Winner, r.PlayerHP, r.OpponentHP)
		switch {
		case r.LifeSaved:
			line += " (life saved)"
		case r.LostLife:
			line += " (life lost)"
		}
		if r.SkillPoints > 0 {
			line += fmt.Sprintf(" +%d skill", r.SkillPoints)
		}
		fmt.Println(line)
	}
	fmt.Printf("Final roster: %s\n", strings.Join(session.Player().ItemIDs(), ", "))
	fmt.Println()

	if session.Victory() {
		PrintSuccess("Victory after %d rounds with %d lives left", stats.RoundsSurvived, stats.LivesRemaining)
	} else {
		PrintError("Defeat in round %d", stats.CurrentRound)
	}
	PrintInfo("Battles %d won, %d lost (%d draws), longest streak %d",
		stats.BattlesWon, stats.BattlesLost, stats.Draws, stats.LongestWinStreak)
	PrintInfo("Spent %d on %d items, earned %d skill points",
		stats.TotalMoneySpent, stats.TotalItemsBought, stats.SkillPoints)

	if *showMetrics {
		return printMetrics()
	}
	return nil
}

// printMetrics dumps every game metric. Histograms print their sample count.
func printMetrics() error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	ours := make(map[string]bool, len(metrics.AllMetricNames))
	for _, name := range metrics.AllMetricNames {
		ours[name] = true
	}

	PrintHeader("Metrics")
	for _, mf := range families {
		if !ours[mf.GetName()] {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			value := m.GetCounter().GetValue()
			if h := m.GetHistogram(); h != nil {
				value = float64(h.GetSampleCount())
			}
			fmt.Printf("  %s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), value)
		}
	}
	return nil
}
