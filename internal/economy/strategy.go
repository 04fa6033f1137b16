package economy

import (
	"context"
	"math"
	"sort"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/logger"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// PurchaseStrategy decides what an AI opponent buys
type PurchaseStrategy interface {
	// Choose returns the items to try to buy, in order
	Choose(ctx context.Context, p *domain.Player, shop []*domain.Item, round int) []*domain.Item
	// Score rates an item for p; higher is better
	Score(it *domain.Item, p *domain.Player, round int) float64
	// ShouldSell reports whether owned is worth trading for candidate
	ShouldSell(owned, candidate *domain.Item, p *domain.Player, round int) bool
}

var rarityScoreBonus = map[domain.Rarity]float64{
	domain.RarityCommon:    1.0,
	domain.RarityRare:      1.1,
	domain.RarityEpic:      1.2,
	domain.RarityLegendary: 1.3,
}

// GreedyStrategy ranks affordable items by a value-per-price score and picks
// from the top. Lower difficulties skip good picks more often.
type GreedyStrategy struct {
	difficulty domain.Difficulty
	maxItems   int
	rng        utils.RandomSource
}

var _ PurchaseStrategy = (*GreedyStrategy)(nil)

// NewGreedyStrategy creates a strategy for the given difficulty
func NewGreedyStrategy(difficulty domain.Difficulty, maxItems int, rng utils.RandomSource) *GreedyStrategy {
	return &GreedyStrategy{difficulty: difficulty, maxItems: maxItems, rng: rng}
}

type scoredItem struct {
	item  *domain.Item
	score float64
}

// Choose implements PurchaseStrategy. A full roster still gets one candidate
// so the caller can consider a swap.
func (s *GreedyStrategy) Choose(ctx context.Context, p *domain.Player, shop []*domain.Item, round int) []*domain.Item {
	slots := max(s.maxItems-len(p.Items), 1)
	money := p.Stats.Money

	scored := make([]scoredItem, 0, len(shop))
	for _, it := range shop {
		if it.Price <= money {
			scored = append(scored, scoredItem{item: it, score: s.Score(it, p, round)})
		}
	}
	if len(scored) == 0 {
		return nil
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	selected := make([]*domain.Item, 0, slots)
	spent := 0
	for _, c := range scored {
		if spent+c.item.Price > money || len(selected) >= slots {
			break
		}
		if len(selected) == 0 || s.rng.Float64() < s.difficulty.AIOptimalPlayPercent {
			selected = append(selected, c.item)
			spent += c.item.Price
		}
	}

	return balanceComposition(selected, p.Items)
}

// Score implements PurchaseStrategy
func (s *GreedyStrategy) Score(it *domain.Item, p *domain.Player, round int) float64 {
	score := float64(it.BaseAttack)*scoreAttack + float64(it.BaseDefense)*scoreDefense

	for idx := range it.Effects {
		e := &it.Effects[idx]
		chance := 1.0
		if e.Chance != nil {
			chance = *e.Chance
		}
		switch e.Type {
		case domain.EffectDamage:
			score += e.Value * scoreDamage * chance
		case domain.EffectBlock:
			score += e.Value * scoreBlock * chance
		case domain.EffectHeal:
			score += e.Value * scoreHeal
		case domain.EffectVampire:
			score += e.Value * scoreVampire
		case domain.EffectAttackMultiply, domain.EffectDefenseMultiply:
			score += e.Value * scoreMultiplier
		case domain.EffectStack:
			stacks := e.MaxStacks
			if stacks <= 0 {
				stacks = defaultScoredStacks
			}
			score += e.Value * float64(stacks) * scoreStack
		case domain.EffectPreventLifeLoss:
			score += scorePreventLifeLoss
		case domain.EffectReduceOpponentAttack:
			score += e.Value * scoreReduceAttack
		}
	}

	score += synergy(it, p.Items)
	score = roundAdjusted(score, it, round)

	if bonus, ok := rarityScoreBonus[it.Rarity]; ok {
		score *= bonus
	}

	if it.Price > 0 && score > 0 {
		score *= math.Sqrt(score / float64(it.Price))
	}
	return score
}

// ShouldSell implements PurchaseStrategy. Affordability is judged on half
// the owned item's price to leave a margin.
func (s *GreedyStrategy) ShouldSell(owned, candidate *domain.Item, p *domain.Player, round int) bool {
	if !owned.CanSell || owned.IsBroken() {
		return false
	}
	if p.Stats.Money+owned.Price/2 < candidate.Price {
		return false
	}
	threshold := swapThresholdBase - s.difficulty.AIOptimalPlayPercent*swapThresholdSlope
	return s.Score(candidate, p, round) > s.Score(owned, p, round)*threshold
}

func synergy(it *domain.Item, owned []*domain.Item) float64 {
	total := 0.0

	if it.HasEffect(domain.EffectVampire) {
		total += float64(countWith(owned, domain.EffectVampire)) * synergyVampire
	}
	if it.HasEffect(domain.EffectStack) {
		total += float64(countWith(owned, domain.EffectStack)) * synergyStack
	}
	if it.HasEffect(domain.EffectAttackMultiply) || it.HasEffect(domain.EffectDefenseMultiply) {
		stats := 0
		for _, o := range owned {
			stats += o.BaseAttack + o.BaseDefense
		}
		total += math.Sqrt(float64(stats)) * synergyMultiplier
	}
	if it.HasEffect(domain.EffectHeal) {
		for _, o := range owned {
			if o.BaseDefense > synergyTankDefense {
				total += synergyHeal
			}
		}
	}
	return total
}

func countWith(items []*domain.Item, t domain.EffectType) int {
	n := 0
	for _, it := range items {
		if it.HasEffect(t) {
			n++
		}
	}
	return n
}

func roundAdjusted(score float64, it *domain.Item, round int) float64 {
	switch {
	case round <= earlyGameLastRound:
		if it.Type == domain.ItemTypeDefense {
			return score * favoredTypeBonus
		}
		if it.Type == domain.ItemTypeAttack {
			return score * unfavoredTypeMalus
		}
	case round >= lateGameFirstRound:
		if it.Type == domain.ItemTypeAttack {
			return score * favoredTypeBonus
		}
		if it.Type == domain.ItemTypeDefense {
			return score * unfavoredTypeMalus
		}
	}
	return score
}

// balanceComposition reorders picks so that the types the roster lacks are
// bought first
func balanceComposition(picks, owned []*domain.Item) []*domain.Item {
	if len(picks) == 0 {
		return picks
	}

	counts := map[domain.ItemType]int{}
	for _, it := range owned {
		counts[it.Type]++
	}
	for _, it := range picks {
		counts[it.Type]++
	}
	total := float64(len(owned) + len(picks))

	needAttack := float64(counts[domain.ItemTypeAttack])/total < minAttackShare
	needDefense := float64(counts[domain.ItemTypeDefense])/total < minDefenseShare
	tooManyPassive := float64(counts[domain.ItemTypePassive])/total > maxPassiveShare
	if !needAttack && !needDefense && !tooManyPassive {
		return picks
	}

	ordered := make([]*domain.Item, 0, len(picks))
	used := make(map[*domain.Item]bool, len(picks))
	take := func(t domain.ItemType) {
		for _, it := range picks {
			if it.Type == t && !used[it] {
				ordered = append(ordered, it)
				used[it] = true
			}
		}
	}
	if needAttack {
		take(domain.ItemTypeAttack)
	}
	if needDefense {
		take(domain.ItemTypeDefense)
	}
	if !tooManyPassive {
		take(domain.ItemTypePassive)
	}
	for _, it := range picks {
		if !used[it] {
			ordered = append(ordered, it)
		}
	}
	return ordered
}

// AIShoppingResult is what one AI shopping pass did
type AIShoppingResult struct {
	Bought    []*domain.Item
	Sold      []*domain.Item
	Remaining []*domain.Item
}

// ShopForAI lets strategy shop for p. When the roster is full the worst
// sellable item is traded away if the strategy approves the swap.
// hpSkillBonus keeps max HP in sync after every roster change.
func (m *Manager) ShopForAI(ctx context.Context, strategy PurchaseStrategy, p *domain.Player, shop []*domain.Item, round, hpSkillBonus int) AIShoppingResult {
	log := logger.FromContext(ctx)
	result := AIShoppingResult{Remaining: append([]*domain.Item(nil), shop...)}

	for _, want := range strategy.Choose(ctx, p, shop, round) {
		if len(p.Items) >= m.economy.MaxItems {
			worst := worstSellable(strategy, p, round)
			if worst < 0 || !strategy.ShouldSell(p.Items[worst], want, p, round) {
				log.Debug(LogMsgAISkipped, "player", p.Name, "item", want.ID)
				continue
			}
			sold, err := m.Sell(ctx, p, worst)
			if err != nil {
				continue
			}
			result.Sold = append(result.Sold, sold)
			m.UpdateMaxHP(p, hpSkillBonus)
			log.Debug(LogMsgAISwapped, "player", p.Name, "sold", sold.ID, "for", want.ID)
		}

		owned, err := m.Purchase(ctx, p, want)
		if err != nil {
			continue
		}
		result.Bought = append(result.Bought, owned)
		m.UpdateMaxHP(p, hpSkillBonus)
		result.Remaining = removeByID(result.Remaining, want.ID)
	}

	return result
}

func worstSellable(strategy PurchaseStrategy, p *domain.Player, round int) int {
	worst := -1
	worstScore := math.Inf(1)
	for i, it := range p.Items {
		if !it.CanSell || it.IsBroken() {
			continue
		}
		if score := strategy.Score(it, p, round); score < worstScore {
			worst, worstScore = i, score
		}
	}
	return worst
}

func removeByID(items []*domain.Item, id string) []*domain.Item {
	for i, it := range items {
		if it.ID == id {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}
