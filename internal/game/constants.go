package game

// ArchiveSchemaVersion is the current version of archived battle entries.
// Increment this when BattleState changes shape to drop stale entries.
const ArchiveSchemaVersion = "1.0"

// Error message formats
const (
	ErrMsgMissingCatalog = "session requires an item catalog"
	ErrMsgEmptyName      = "player name must not be empty"
	ErrMsgShopItemFmt    = "%w: %q is not in the shop"
	ErrMsgPhaseFmt       = "%w: %s requires phase %s, current phase is %s"
	ErrMsgInvalidBatch   = "batch needs a catalog and at least one game"
	ErrMsgBatchGameFmt   = "game with seed %d: %w"
)

// Log messages
const (
	LogMsgGameInitialized = "Game initialized"
	LogMsgShopOpened      = "Shop phase started"
	LogMsgItemPurchased   = "Item purchased"
	LogMsgItemSold        = "Item sold"
	LogMsgShopRefreshed   = "Shop refreshed"
	LogMsgBattleResolved  = "Battle resolved"
	LogMsgRoundEnded      = "Round ended"
	LogMsgLifeSaved       = "Life loss prevented"
	LogMsgGameOver        = "Game over"
	LogMsgPublishFailed   = "Failed to publish event"
	LogMsgAIShopped       = "AI opponent shopped"
	LogMsgBatchFinished   = "Batch finished"
)

// AI opponent naming
const (
	OpponentName       = "Opponent"
	BatchPlayerNameFmt = "player-%d"
)
