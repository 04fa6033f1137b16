package economy

// ==================== Error Messages ====================

// Formatted error messages for shop actions
const (
	ErrMsgCannotAffordFmt = "%s costs %d, balance %d: %w"
	ErrMsgRosterFullFmt   = "roster holds %d/%d items: %w"
	ErrMsgSlotOutOfRange  = "slot %d out of range (%d items): %w"
	ErrMsgItemBrokenFmt   = "%s is broken: %w"
	ErrMsgNilItem         = "no item given: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgItemPurchased   = "Item purchased"
	LogMsgItemSold        = "Item sold"
	LogMsgIncomeAwarded   = "Round income awarded"
	LogMsgMoneyItemBroken = "Money item expired"
	LogMsgShopGenerated   = "Shop generated"
	LogMsgAISwapped       = "AI sold an item to make room"
	LogMsgAISkipped       = "AI skipped a purchase"
)

// ==================== Transaction Types ====================

// TransactionType classifies a ledger entry
type TransactionType string

const (
	TransactionMoneyReceived TransactionType = "money_received"
	TransactionItemBought    TransactionType = "item_bought"
	TransactionItemSold      TransactionType = "item_sold"
)

// ==================== Shop Tuning ====================

// minRarityWeight keeps zero-weight rarities drawable at a tiny rate
const minRarityWeight = 0.01

// ==================== AI Scoring ====================

// Item scoring weights for the greedy strategy
const (
	scoreAttack          = 3.0
	scoreDefense         = 2.5
	scoreDamage          = 4.0
	scoreBlock           = 3.5
	scoreHeal            = 5.0
	scoreVampire         = 100.0
	scoreMultiplier      = 150.0
	scoreStack           = 2.5
	scorePreventLifeLoss = 400.0
	scoreReduceAttack    = 10.0
	defaultScoredStacks  = 10
)

// Synergy bonuses per owned item of the same kind
const (
	synergyVampire     = 20.0
	synergyStack       = 15.0
	synergyMultiplier  = 5.0
	synergyHeal        = 10.0
	synergyTankDefense = 10
)

// Round strategy: defense early, attack late
const (
	earlyGameLastRound = 5
	lateGameFirstRound = 11
	favoredTypeBonus   = 1.3
	unfavoredTypeMalus = 0.9
)

// Composition targets checked after selection
const (
	minAttackShare  = 0.35
	minDefenseShare = 0.25
	maxPassiveShare = 0.25
)

// Swap threshold: a candidate must beat the sold item by
// swapThresholdBase - optimalPlay*swapThresholdSlope
const (
	swapThresholdBase  = 1.5
	swapThresholdSlope = 0.4
)
