package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/EmojiBattler_Go/internal/battle"
	"github.com/osse101/EmojiBattler_Go/internal/config"
	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/economy"
	"github.com/osse101/EmojiBattler_Go/internal/event"
	"github.com/osse101/EmojiBattler_Go/internal/item"
	"github.com/osse101/EmojiBattler_Go/internal/logger"
	"github.com/osse101/EmojiBattler_Go/internal/progression"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// StrategyFactory builds the purchase strategy of the AI opponent
type StrategyFactory func(d domain.Difficulty, maxItems int, rng utils.RandomSource) economy.PurchaseStrategy

// Deps are the collaborators of a Session. Catalog is required; every other
// field has a default.
type Deps struct {
	Settings config.GameSettings
	Catalog  *item.Catalog
	Tree     *progression.Tree
	Bus      event.Bus
	Archive  *Archive
	RNG      utils.RandomSource
	Strategy StrategyFactory
	// Progress is the difficulty progress carried over from earlier playthroughs
	Progress domain.DifficultyProgress
	Now      func() time.Time
}

// RoundResult is the outcome of one finished round
type RoundResult struct {
	Round           int           `json:"round"`
	BattleID        string        `json:"battle_id"`
	Winner          domain.Winner `json:"winner"`
	PlayerWon       bool          `json:"player_won"`
	PlayerHP        int           `json:"player_hp"`
	OpponentHP      int           `json:"opponent_hp"`
	LostLife        bool          `json:"lost_life"`
	LifeSaved       bool          `json:"life_saved"`
	SkillPoints     int           `json:"skill_points"`
	ConsecutiveWins int           `json:"consecutive_wins"`
}

// Session drives one playthrough: shop phases, battles and round
// resolution against a single AI opponent. A Session is not safe for
// concurrent use.
type Session struct {
	id       string
	settings config.GameSettings
	catalog  *item.Catalog
	tree     *progression.Tree
	bus      event.Bus
	archive  *Archive
	rng      utils.RandomSource
	now      func() time.Time
	newAI    StrategyFactory

	engine *battle.Engine
	money  *economy.Manager
	shops  *economy.ShopGenerator
	ledger *economy.Ledger

	phase           domain.GamePhase
	round           int
	difficulty      domain.Difficulty
	progress        domain.DifficultyProgress
	player          *domain.Player
	opponent        *domain.Player
	playerBonuses   progression.Bonuses
	opponentBonuses progression.Bonuses
	strategy        economy.PurchaseStrategy

	playerShop   []*domain.Item
	aiShop       []*domain.Item
	purchasedIDs []string
	soldItems    []*domain.Item

	currentBattle   *domain.BattleState
	skillPoints     int
	consecutiveWins int
	timeline        []RoundResult
	victory         bool
	startedAt       time.Time
	endedAt         time.Time
}

// NewSession creates a session in the menu phase. InitializeGame starts a game.
func NewSession(deps Deps) (*Session, error) {
	if deps.Catalog == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingCatalog)
	}
	if deps.Settings.Economy.ShopSize == 0 {
		deps.Settings = config.DefaultGameSettings()
	}
	if err := deps.Settings.Validate(); err != nil {
		return nil, err
	}
	if deps.Tree == nil {
		deps.Tree = progression.DefaultTree()
	}
	if deps.Bus == nil {
		deps.Bus = event.NewMemoryBus()
	}
	if deps.RNG == nil {
		deps.RNG = utils.NewSeededSource(time.Now().UnixNano())
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Strategy == nil {
		deps.Strategy = func(d domain.Difficulty, maxItems int, rng utils.RandomSource) economy.PurchaseStrategy {
			return economy.NewGreedyStrategy(d, maxItems, rng)
		}
	}

	return &Session{
		id:       uuid.NewString(),
		settings: deps.Settings,
		catalog:  deps.Catalog,
		tree:     deps.Tree,
		bus:      deps.Bus,
		archive:  deps.Archive,
		rng:      deps.RNG,
		now:      deps.Now,
		newAI:    deps.Strategy,
		engine:   battle.NewEngine(deps.Settings.Battle, deps.RNG, progression.NewSkillMultiplierSource(deps.Tree)),
		money:    economy.NewManager(deps.Settings.Economy, deps.Settings.Player),
		shops:    economy.NewShopGenerator(deps.Catalog, deps.Settings.Economy, deps.RNG),
		ledger:   economy.NewLedger(deps.Now),
		phase:    domain.PhaseMenu,
		progress: deps.Progress,
	}, nil
}

func (s *Session) withSession(ctx context.Context) context.Context {
	return logger.WithSessionID(ctx, s.id)
}

func (s *Session) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

// InitializeGame starts a new playthrough for name at difficulty with the
// given permanent skill levels. The session is left in the menu phase of
// round 1; call StartShopPhase next.
func (s *Session) InitializeGame(ctx context.Context, name string, difficulty domain.Difficulty, levels []domain.AppliedSkill) error {
	ctx = s.withSession(ctx)
	if name == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyName)
	}
	if !progression.CanSelect(difficulty, s.progress) {
		return fmt.Errorf("%w: %s %d", domain.ErrDifficultyLocked, difficulty.ID, difficulty.TormentLevel)
	}

	s.difficulty = difficulty
	s.player = s.newPlayer(name, levels)
	s.playerBonuses = s.tree.Bonuses(levels)
	s.opponent = s.newOpponent(difficulty)
	s.strategy = s.newAI(difficulty, s.settings.Economy.MaxItems, s.rng)

	s.phase = domain.PhaseMenu
	s.round = 1
	s.playerShop = nil
	s.aiShop = nil
	s.purchasedIDs = nil
	s.soldItems = nil
	s.currentBattle = nil
	s.skillPoints = 0
	s.consecutiveWins = 0
	s.timeline = nil
	s.victory = false
	s.startedAt = s.now()
	s.endedAt = time.Time{}
	s.ledger = economy.NewLedger(s.now)

	logger.FromContext(ctx).Info(LogMsgGameInitialized,
		"player", name,
		"difficulty", difficulty.ID,
		"torment_level", difficulty.TormentLevel,
		"money", s.player.Stats.Money)
	return nil
}

func (s *Session) newPlayer(name string, levels []domain.AppliedSkill) *domain.Player {
	start := s.settings.Player
	p := &domain.Player{
		Name: name,
		Stats: domain.PlayerStats{
			BaseAttack:  start.StartingAttack,
			BaseDefense: start.StartingDefense,
			CurrentHP:   start.StartingHP,
			MaxHP:       start.StartingHP,
			Speed:       1,
			Lives:       s.settings.Rules.MaxLives,
			Money:       start.StartingMoney,
		},
		Items: []*domain.Item{},
	}
	s.tree.ApplySkills(p, levels)
	p.Stats.Money += s.tree.Bonuses(levels).StartingMoney
	return p
}

// newOpponent scales the starting stats by the difficulty and spends the
// difficulty's skill points on the AI
func (s *Session) newOpponent(d domain.Difficulty) *domain.Player {
	start := s.settings.Player
	mult := d.AIStatMultiplier
	if mult <= 0 {
		mult = 1
	}
	p := &domain.Player{
		Name:       OpponentName,
		IsAI:       true,
		Difficulty: d.ID,
		Stats: domain.PlayerStats{
			BaseAttack:  utils.Round(float64(start.StartingAttack) * mult),
			BaseDefense: utils.Round(float64(start.StartingDefense) * mult),
			CurrentHP:   start.StartingHP,
			MaxHP:       start.StartingHP,
			Speed:       1,
			Lives:       s.settings.Rules.MaxLives,
			Money:       start.StartingMoney + d.AIMoneyBonus,
		},
		Items: []*domain.Item{},
	}
	levels := s.tree.AutoAllocate(d.AISkillPoints)
	s.tree.ApplySkills(p, levels)
	s.opponentBonuses = s.tree.Bonuses(levels)
	p.Stats.Money += s.opponentBonuses.StartingMoney
	return p
}

func (s *Session) requireActive() error {
	if s.player == nil {
		return domain.ErrGameNotStarted
	}
	if s.phase == domain.PhaseGameOver {
		return domain.ErrGameOver
	}
	return nil
}

func (s *Session) requirePhase(op string, want domain.GamePhase) error {
	if err := s.requireActive(); err != nil {
		return err
	}
	if s.phase != want {
		return fmt.Errorf(ErrMsgPhaseFmt, domain.ErrWrongPhase, op, want, s.phase)
	}
	return nil
}

// StartShopPhase opens the shop for the current round. From round 2 on both
// sides receive their round income and breakable money items count the
// round. The AI opponent does its shopping here.
func (s *Session) StartShopPhase(ctx context.Context) error {
	ctx = s.withSession(ctx)
	if err := s.requireActive(); err != nil {
		return err
	}
	if s.currentBattle != nil {
		return domain.ErrBattleNotEnded
	}
	if err := s.requirePhase("StartShopPhase", domain.PhaseMenu); err != nil {
		return err
	}

	s.phase = domain.PhaseShop
	s.purchasedIDs = nil
	s.soldItems = nil

	income := 0
	if s.round > 1 {
		income = s.money.AwardRoundIncome(ctx, s.player, s.playerBonuses.MoneyPerRound)
		s.ledger.RecordIncome(s.round, income)
		for _, it := range economy.AdvanceMoneyItemDurations(s.player) {
			s.publish(ctx, event.NewItemBrokenEvent(s.id, s.player, it, s.round))
		}

		s.money.AwardRoundIncome(ctx, s.opponent, s.opponentBonuses.MoneyPerRound+s.difficulty.AIMoneyBonus)
		economy.AdvanceMoneyItemDurations(s.opponent)
	}

	s.playerShop = s.shops.Generate(ctx, s.round, s.player.Items)
	s.aiShop = s.shops.Generate(ctx, s.round, s.opponent.Items)
	s.shopForAI(ctx)

	logger.FromContext(ctx).Info(LogMsgShopOpened,
		"round", s.round,
		"income", income,
		"money", s.player.Stats.Money,
		"shop_size", len(s.playerShop))
	s.publish(ctx, event.NewRoundStartedEvent(s.id, s.round, income, s.player.Stats.Money))
	return nil
}

func (s *Session) shopForAI(ctx context.Context) {
	result := s.money.ShopForAI(ctx, s.strategy, s.opponent, s.aiShop, s.round, s.opponentBonuses.MaxHP)
	s.aiShop = result.Remaining
	logger.FromContext(ctx).Debug(LogMsgAIShopped,
		"round", s.round,
		"bought", len(result.Bought),
		"sold", len(result.Sold),
		"money", s.opponent.Stats.Money)
}

// Purchase buys the shop item with itemID for the player and returns the
// owned copy
func (s *Session) Purchase(ctx context.Context, itemID string) (*domain.Item, error) {
	ctx = s.withSession(ctx)
	if err := s.requirePhase("Purchase", domain.PhaseShop); err != nil {
		return nil, err
	}

	idx := -1
	for i, it := range s.playerShop {
		if it.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf(ErrMsgShopItemFmt, domain.ErrItemNotFound, itemID)
	}

	owned, err := s.money.Purchase(ctx, s.player, s.playerShop[idx])
	if err != nil {
		return nil, err
	}
	s.playerShop = append(s.playerShop[:idx:idx], s.playerShop[idx+1:]...)
	s.purchasedIDs = append(s.purchasedIDs, owned.ID)
	s.ledger.RecordPurchase(s.round, owned)
	s.money.UpdateMaxHP(s.player, s.playerBonuses.MaxHP)

	logger.FromContext(ctx).Info(LogMsgItemPurchased,
		"item", owned.ID, "price", owned.Price, "money", s.player.Stats.Money)
	s.publish(ctx, event.NewItemBoughtEvent(s.id, s.player, owned, s.round))
	return owned, nil
}

// Sell sells the player's item at roster index for its full price
func (s *Session) Sell(ctx context.Context, index int) (*domain.Item, error) {
	ctx = s.withSession(ctx)
	if err := s.requirePhase("Sell", domain.PhaseShop); err != nil {
		return nil, err
	}

	sold, err := s.money.Sell(ctx, s.player, index)
	if err != nil {
		return nil, err
	}
	s.soldItems = append(s.soldItems, sold)
	s.ledger.RecordSale(s.round, sold)
	s.money.UpdateMaxHP(s.player, s.playerBonuses.MaxHP)

	logger.FromContext(ctx).Info(LogMsgItemSold,
		"item", sold.ID, "price", sold.Price, "money", s.player.Stats.Money)
	s.publish(ctx, event.NewItemSoldEvent(s.id, s.player, sold, s.round))
	return sold, nil
}

// Refresh restocks the empty shop slots without replacing what is left.
// Items the player owns are never offered.
func (s *Session) Refresh(ctx context.Context) error {
	ctx = s.withSession(ctx)
	if err := s.requirePhase("Refresh", domain.PhaseShop); err != nil {
		return err
	}
	s.playerShop = s.shops.Refresh(ctx, s.round, s.playerShop, s.player.Items)
	logger.FromContext(ctx).Debug(LogMsgShopRefreshed, "round", s.round, "shop_size", len(s.playerShop))
	return nil
}

// StartBattle resets both sides to full HP and runs the round's battle.
// Item state changed in battle (breaks, durations) is written back to both
// rosters, so a broken item is already broken in the next shop.
func (s *Session) StartBattle(ctx context.Context) (*domain.BattleState, error) {
	ctx = s.withSession(ctx)
	if err := s.requireActive(); err != nil {
		return nil, err
	}
	if s.opponent == nil {
		return nil, domain.ErrNoOpponent
	}
	if err := s.requirePhase("StartBattle", domain.PhaseShop); err != nil {
		return nil, err
	}

	s.player.Stats.CurrentHP = s.player.Stats.MaxHP
	s.opponent.Stats.CurrentHP = s.opponent.Stats.MaxHP

	state, err := s.engine.Run(ctx, s.player, s.opponent, s.round)
	if err != nil {
		return nil, err
	}

	for _, it := range writeBack(s.player, state.Player) {
		s.publish(ctx, event.NewItemBrokenEvent(s.id, s.player, it, s.round))
	}
	writeBack(s.opponent, state.Opponent)

	s.phase = domain.PhaseBattle
	s.currentBattle = state
	if s.archive != nil {
		s.archive.Put(state)
	}

	logger.FromContext(ctx).Info(LogMsgBattleResolved,
		logger.AttrKeyBattleID, state.ID,
		"round", s.round,
		"winner", state.Winner,
		"turns", state.Turn+1)
	s.publish(ctx, event.NewBattleCompletedEvent(s.id, state))
	return state, nil
}

// writeBack replaces p's items with copies of the battle clone's items and
// returns the items that broke during the battle
func writeBack(p, clone *domain.Player) []*domain.Item {
	items := domain.CloneItems(clone.Items)
	var broken []*domain.Item
	for i, it := range items {
		if i < len(p.Items) && !p.Items[i].IsBroken() && it.IsBroken() {
			broken = append(broken, it)
		}
	}
	p.Items = items
	return broken
}

// EndRound resolves the current battle: a draw counts as a win, a loss
// costs a life unless a life prevention item absorbs it, and wins earn
// skill points. The game ends when the player is out of lives or the last
// round was played; otherwise the session moves to the next round's menu
// phase.
func (s *Session) EndRound(ctx context.Context) (RoundResult, error) {
	ctx = s.withSession(ctx)
	if s.currentBattle == nil {
		return RoundResult{}, domain.ErrNoActiveBattle
	}
	if err := s.requirePhase("EndRound", domain.PhaseBattle); err != nil {
		return RoundResult{}, err
	}

	b := s.currentBattle
	result := RoundResult{
		Round:      s.round,
		BattleID:   b.ID,
		Winner:     b.Winner,
		PlayerWon:  b.Winner == domain.WinnerPlayer || b.Winner == domain.WinnerDraw,
		PlayerHP:   b.Player.Stats.CurrentHP,
		OpponentHP: b.Opponent.Stats.CurrentHP,
	}
	log := logger.FromContext(ctx)

	if result.PlayerWon {
		s.consecutiveWins++
		result.SkillPoints = progression.SkillPointsForWin(s.difficulty, s.consecutiveWins)
		s.skillPoints += result.SkillPoints
	} else {
		s.consecutiveWins = 0
		if saver := battle.ConsumeLifePrevention(s.player); saver != nil {
			result.LifeSaved = true
			log.Info(LogMsgLifeSaved, "item", saver.ID, "round", s.round)
			s.publish(ctx, event.NewItemBrokenEvent(s.id, s.player, saver, s.round))
		} else {
			result.LostLife = true
			s.player.Stats.Lives--
			s.publish(ctx, event.NewLifeLostEvent(s.id, s.player, s.round))
		}
	}
	result.ConsecutiveWins = s.consecutiveWins
	s.timeline = append(s.timeline, result)
	s.currentBattle = nil

	log.Info(LogMsgRoundEnded,
		"round", s.round,
		"won", result.PlayerWon,
		"lost_life", result.LostLife,
		"lives", s.player.Stats.Lives,
		"skill_points", s.skillPoints)

	switch {
	case s.player.Stats.Lives <= 0:
		s.finish(ctx, false)
	case s.round >= s.settings.Rules.MaxRounds:
		s.finish(ctx, true)
	default:
		s.round++
		s.phase = domain.PhaseMenu
	}
	return result, nil
}

func (s *Session) finish(ctx context.Context, victory bool) {
	s.phase = domain.PhaseGameOver
	s.victory = victory
	s.endedAt = s.now()
	s.progress = progression.UpdateDifficultyProgress(s.progress, s.difficulty, victory)

	stats := s.Stats()
	logger.FromContext(ctx).Info(LogMsgGameOver,
		"victory", victory,
		"rounds", stats.RoundsSurvived,
		"wins", stats.BattlesWon,
		"losses", stats.BattlesLost)
	s.publish(ctx, event.NewGameOverEvent(s.id, event.GameOverPayloadV1{
		Player:         s.player.Name,
		Victory:        victory,
		Difficulty:     s.difficulty.ID,
		TormentLevel:   s.difficulty.TormentLevel,
		RoundsSurvived: stats.RoundsSurvived,
		Wins:           stats.BattlesWon - stats.Draws,
		Losses:         stats.BattlesLost,
		Draws:          stats.Draws,
	}))
}

// Battle returns an archived battle by id
func (s *Session) Battle(id string) (*domain.BattleState, error) {
	if s.archive == nil {
		return nil, fmt.Errorf("%w: battle %s", domain.ErrItemNotFound, id)
	}
	state, ok := s.archive.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: battle %s", domain.ErrItemNotFound, id)
	}
	return state, nil
}

// ID returns the session id used in logs and event metadata
func (s *Session) ID() string { return s.id }

// Phase returns the current phase
func (s *Session) Phase() domain.GamePhase { return s.phase }

// Round returns the current round number, starting at 1
func (s *Session) Round() int { return s.round }

// Player returns the persistent human player
func (s *Session) Player() *domain.Player { return s.player }

// Opponent returns the persistent AI opponent
func (s *Session) Opponent() *domain.Player { return s.opponent }

// Difficulty returns the difficulty of the running game
func (s *Session) Difficulty() domain.Difficulty { return s.difficulty }

// Progress returns the difficulty progress including the finished game
func (s *Session) Progress() domain.DifficultyProgress { return s.progress }

// SkillPoints returns the skill points earned this game
func (s *Session) SkillPoints() int { return s.skillPoints }

// Victory reports whether a finished game was won
func (s *Session) Victory() bool { return s.victory }

// Shop returns the player's current shop offer
func (s *Session) Shop() []*domain.Item {
	return append([]*domain.Item(nil), s.playerShop...)
}

// OpponentShop returns what the AI left in its shop this round
func (s *Session) OpponentShop() []*domain.Item {
	return append([]*domain.Item(nil), s.aiShop...)
}

// SoldItems returns the items sold this shop phase
func (s *Session) SoldItems() []*domain.Item {
	return append([]*domain.Item(nil), s.soldItems...)
}

// PurchasedIDs returns the ids bought this shop phase
func (s *Session) PurchasedIDs() []string {
	return append([]string(nil), s.purchasedIDs...)
}

// CurrentBattle returns the battle waiting for EndRound, or nil
func (s *Session) CurrentBattle() *domain.BattleState { return s.currentBattle }

// Timeline returns every finished round
func (s *Session) Timeline() []RoundResult {
	return append([]RoundResult(nil), s.timeline...)
}

// Ledger returns the player's transaction history
func (s *Session) Ledger() *economy.Ledger { return s.ledger }

// PlayerBonuses returns the player's summed skill bonuses
func (s *Session) PlayerBonuses() progression.Bonuses { return s.playerBonuses }

// IsOver reports whether the game has ended
func (s *Session) IsOver() bool { return s.phase == domain.PhaseGameOver }
