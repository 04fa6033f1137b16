package game

import (
	"context"
	"errors"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/economy"
)

// Autoplay plays the rest of the game for the human side, letting strategy
// do the shopping. It returns the final stats.
func (s *Session) Autoplay(ctx context.Context, strategy economy.PurchaseStrategy) (Stats, error) {
	for !s.IsOver() {
		if err := ctx.Err(); err != nil {
			return s.Stats(), err
		}
		if err := s.PlayRound(ctx, strategy); err != nil {
			return s.Stats(), err
		}
	}
	return s.Stats(), nil
}

// PlayRound runs one full round from wherever the session is: shop, battle
// and round resolution
func (s *Session) PlayRound(ctx context.Context, strategy economy.PurchaseStrategy) error {
	if s.Phase() == domain.PhaseMenu {
		if err := s.StartShopPhase(ctx); err != nil {
			return err
		}
	}
	if s.Phase() == domain.PhaseShop {
		for _, want := range strategy.Choose(ctx, s.player, s.Shop(), s.round) {
			_, err := s.Purchase(ctx, want.ID)
			if err != nil && !isShopRefusal(err) {
				return err
			}
		}
		if _, err := s.StartBattle(ctx); err != nil {
			return err
		}
	}
	_, err := s.EndRound(ctx)
	return err
}

func isShopRefusal(err error) bool {
	return errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrInventoryFull) ||
		errors.Is(err, domain.ErrItemNotFound)
}
