package game

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/EmojiBattler_Go/internal/config"
	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/economy"
	"github.com/osse101/EmojiBattler_Go/internal/event"
	"github.com/osse101/EmojiBattler_Go/internal/item"
	"github.com/osse101/EmojiBattler_Go/internal/logger"
	"github.com/osse101/EmojiBattler_Go/internal/progression"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// BatchConfig describes a set of autoplayed games. Game i is seeded with
// Seed+i, so a batch is reproducible regardless of Workers.
type BatchConfig struct {
	Games      int
	Workers    int
	Seed       int64
	Difficulty domain.Difficulty
	// Skill is how well the human side shops, from 0 (random) to 1 (greedy)
	Skill    float64
	Settings config.GameSettings
	Catalog  *item.Catalog
	Tree     *progression.Tree
	// Bus is shared by every game and must be safe for concurrent use
	Bus event.Bus
}

// BatchResult is the outcome of one game in a batch
type BatchResult struct {
	Seed    int64 `json:"seed"`
	Victory bool  `json:"victory"`
	Stats   Stats `json:"stats"`
}

// BatchReport aggregates a batch
type BatchReport struct {
	Games         int           `json:"games"`
	Victories     int           `json:"victories"`
	WinRate       float64       `json:"win_rate"`
	AverageRounds float64       `json:"average_rounds"`
	AverageWins   float64       `json:"average_wins"`
	SkillPoints   int           `json:"skill_points"`
	Results       []BatchResult `json:"results"`
}

// RunBatch autoplays cfg.Games independent games on up to cfg.Workers
// goroutines. Every game owns its session, engine and random source. The
// first failing game cancels the rest.
func RunBatch(ctx context.Context, cfg BatchConfig) (BatchReport, error) {
	if cfg.Games <= 0 || cfg.Catalog == nil {
		return BatchReport{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidBatch)
	}
	workers := max(cfg.Workers, 1)
	results := make([]BatchResult, cfg.Games)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + int64(i)
		g.Go(func() error {
			res, err := playOne(gctx, cfg, seed)
			if err != nil {
				return fmt.Errorf(ErrMsgBatchGameFmt, seed, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return BatchReport{}, err
	}

	report := summarize(results)
	logger.FromContext(ctx).Info(LogMsgBatchFinished,
		"games", report.Games,
		"workers", workers,
		"win_rate", report.WinRate)
	return report, nil
}

func playOne(ctx context.Context, cfg BatchConfig, seed int64) (BatchResult, error) {
	rng := utils.NewSeededSource(seed)
	s, err := NewSession(Deps{
		Settings: cfg.Settings,
		Catalog:  cfg.Catalog,
		Tree:     cfg.Tree,
		Bus:      cfg.Bus,
		RNG:      rng,
	})
	if err != nil {
		return BatchResult{}, err
	}
	if err := s.InitializeGame(ctx, fmt.Sprintf(BatchPlayerNameFmt, seed), cfg.Difficulty, nil); err != nil {
		return BatchResult{}, err
	}

	human := economy.NewGreedyStrategy(
		domain.Difficulty{ID: cfg.Difficulty.ID, AIOptimalPlayPercent: cfg.Skill},
		s.settings.Economy.MaxItems,
		rng,
	)
	stats, err := s.Autoplay(ctx, human)
	if err != nil {
		return BatchResult{}, err
	}
	return BatchResult{Seed: seed, Victory: s.Victory(), Stats: stats}, nil
}

func summarize(results []BatchResult) BatchReport {
	report := BatchReport{Games: len(results), Results: results}
	var rounds, wins int
	for _, r := range results {
		if r.Victory {
			report.Victories++
		}
		rounds += r.Stats.RoundsSurvived
		wins += r.Stats.BattlesWon
		report.SkillPoints += r.Stats.SkillPoints
	}
	n := float64(len(results))
	report.WinRate = float64(report.Victories) / n
	report.AverageRounds = float64(rounds) / n
	report.AverageWins = float64(wins) / n
	return report
}
