package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/EmojiBattler_Go/internal/config"
	"github.com/osse101/EmojiBattler_Go/internal/item"
	"github.com/osse101/EmojiBattler_Go/internal/logger"
	"github.com/osse101/EmojiBattler_Go/internal/progression"
)

const (
	appName = "arena"

	defaultDifficulty = "normal"
	defaultSkill      = 0.75
)

// env is what every command shares: process config, game rules and content
type env struct {
	cfg      *config.Config
	settings config.GameSettings
	catalog  *item.Catalog
	tree     *progression.Tree
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		PrintError("Failed to load config: %v", err)
		os.Exit(1)
	}
	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := newEnv(ctx, cfg)
	if err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}

	registry := NewRegistry()
	registry.Register(&BattleCommand{env: e})
	registry.Register(&GameCommand{env: e})
	registry.Register(&BatchCommand{env: e})
	registry.Register(&CatalogCommand{env: e})
	registry.Register(&BalanceCommand{env: e})
	registry.Register(&SkillsCommand{env: e})

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	if err := cmd.Run(ctx, os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}

// newEnv loads the game settings (defaults when the file is missing) and the
// bundled content
func newEnv(ctx context.Context, cfg *config.Config) (*env, error) {
	settings, err := config.LoadGameSettings(cfg.GameSettingsPath)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("Game settings loaded",
		"path", cfg.GameSettingsPath,
		"max_rounds", settings.Rules.MaxRounds,
		"shop_size", settings.Economy.ShopSize)

	catalog, err := item.LoadBundled(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading item catalog: %w", err)
	}

	return &env{
		cfg:      cfg,
		settings: settings,
		catalog:  catalog,
		tree:     progression.DefaultTree(),
	}, nil
}
