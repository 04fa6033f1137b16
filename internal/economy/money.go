package economy

import (
	"context"
	"fmt"

	"github.com/osse101/EmojiBattler_Go/internal/config"
	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/logger"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// Manager validates and applies purchases, sales and income
type Manager struct {
	economy config.EconomySettings
	player  config.PlayerSettings
}

// NewManager creates an economy manager for the given rules
func NewManager(economy config.EconomySettings, player config.PlayerSettings) *Manager {
	return &Manager{economy: economy, player: player}
}

// MaxItems is the roster limit
func (m *Manager) MaxItems() int {
	return m.economy.MaxItems
}

// CanPurchase returns nil when p can buy it
func (m *Manager) CanPurchase(p *domain.Player, it *domain.Item) error {
	if it == nil {
		return fmt.Errorf(ErrMsgNilItem, domain.ErrItemNotFound)
	}
	if p.Stats.Money < it.Price {
		return fmt.Errorf(ErrMsgCannotAffordFmt, it.Name, it.Price, p.Stats.Money, domain.ErrInsufficientFunds)
	}
	if len(p.Items) >= m.economy.MaxItems {
		return fmt.Errorf(ErrMsgRosterFullFmt, len(p.Items), m.economy.MaxItems, domain.ErrInventoryFull)
	}
	return nil
}

// Purchase charges p and appends a copy of it to the roster. The returned
// item is the owned copy.
func (m *Manager) Purchase(ctx context.Context, p *domain.Player, it *domain.Item) (*domain.Item, error) {
	if err := m.CanPurchase(p, it); err != nil {
		return nil, err
	}

	owned := it.Clone()
	p.Stats.Money -= owned.Price
	p.Stats.MoneySpent += owned.Price
	p.Stats.ItemsBought++
	p.Items = append(p.Items, owned)

	logger.FromContext(ctx).Debug(LogMsgItemPurchased, "player", p.Name, "item", owned.ID, "price", owned.Price, "money", p.Stats.Money)
	return owned, nil
}

// CanSell returns nil when the item in slot index can be sold
func (m *Manager) CanSell(p *domain.Player, index int) error {
	if index < 0 || index >= len(p.Items) {
		return fmt.Errorf(ErrMsgSlotOutOfRange, index, len(p.Items), domain.ErrItemNotFound)
	}
	if it := p.Items[index]; !it.CanSell || it.IsBroken() {
		return fmt.Errorf(ErrMsgItemBrokenFmt, it.Name, domain.ErrNotSellable)
	}
	return nil
}

// Sell removes the item in slot index and refunds its full price
func (m *Manager) Sell(ctx context.Context, p *domain.Player, index int) (*domain.Item, error) {
	if err := m.CanSell(p, index); err != nil {
		return nil, err
	}

	sold := p.Items[index]
	p.Items = append(p.Items[:index:index], p.Items[index+1:]...)
	p.Stats.Money += sold.Price

	logger.FromContext(ctx).Debug(LogMsgItemSold, "player", p.Name, "item", sold.ID, "refund", sold.Price, "money", p.Stats.Money)
	return sold, nil
}

// IndexOf returns the roster slot of the first item with id, or -1
func IndexOf(p *domain.Player, id string) int {
	for i, it := range p.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// RoundIncome is the money p earns at the start of a shop phase:
// (base + skill bonus + money bonuses) times every money multiplier.
// Broken items contribute nothing.
func (m *Manager) RoundIncome(p *domain.Player, skillBonus int) int {
	base := float64(m.economy.MoneyPerRound + skillBonus)
	multiplier := 1.0
	for _, it := range p.Items {
		if it.IsBroken() {
			continue
		}
		for idx := range it.Effects {
			e := &it.Effects[idx]
			if e.Trigger != domain.TriggerPassive {
				continue
			}
			switch e.Type {
			case domain.EffectMoneyBonus:
				base += e.Value
			case domain.EffectMoneyMultiplier:
				multiplier *= e.Value
			}
		}
	}
	return utils.Round(base * multiplier)
}

// AwardRoundIncome adds RoundIncome to p and returns it
func (m *Manager) AwardRoundIncome(ctx context.Context, p *domain.Player, skillBonus int) int {
	earned := m.RoundIncome(p, skillBonus)
	p.Stats.Money += earned
	logger.FromContext(ctx).Debug(LogMsgIncomeAwarded, "player", p.Name, "earned", earned, "money", p.Stats.Money)
	return earned
}

// AdvanceMoneyItemDurations counts one shop round against every breakable
// money multiplier and breaks those that reached their limit. Returns the
// items that broke.
func AdvanceMoneyItemDurations(p *domain.Player) []*domain.Item {
	var broken []*domain.Item
	for _, it := range p.Items {
		if it.IsBroken() {
			continue
		}
		for idx := range it.Effects {
			e := &it.Effects[idx]
			if e.Type != domain.EffectMoneyMultiplier || !e.Breakable {
				continue
			}
			e.CurrentDuration++
			if e.MaxDuration > 0 && e.CurrentDuration >= e.MaxDuration {
				it.Break(idx)
				broken = append(broken, it)
				break
			}
		}
	}
	return broken
}

// UpdateMaxHP recomputes max HP from the starting value, skills and
// max_hp_bonus items, and clamps current HP to it
func (m *Manager) UpdateMaxHP(p *domain.Player, skillBonus int) {
	bonus := 0.0
	for _, it := range p.Items {
		if it.IsBroken() {
			continue
		}
		for idx := range it.Effects {
			e := &it.Effects[idx]
			if e.Trigger == domain.TriggerPassive && e.Type == domain.EffectMaxHPBonus {
				bonus += e.Value
			}
		}
	}
	p.Stats.MaxHP = m.player.StartingHP + skillBonus + utils.Round(bonus)
	p.Stats.CurrentHP = min(p.Stats.CurrentHP, p.Stats.MaxHP)
}
