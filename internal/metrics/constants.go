package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Battle metric names
const (
	MetricNameBattlesCompleted = "battles_completed_total"
	MetricNameBattleTurns      = "battle_turns"
	MetricNameDamageDealt      = "battle_damage_dealt_total"
	MetricNameDamageReceived   = "battle_damage_received_total"
	MetricNameLivesLost        = "lives_lost_total"
)

// Economy metric names
const (
	MetricNameItemsSold    = "items_sold_total"
	MetricNameItemsBought  = "items_bought_total"
	MetricNameItemsBroken  = "items_broken_total"
	MetricNameMoneyEarned  = "money_earned_total"
	MetricNameMoneySpent   = "money_spent_total"
	MetricNameRoundIncome  = "round_income_total"
	MetricNameRoundsPlayed = "rounds_started_total"
)

// Game metric names
const (
	MetricNameGamesCompleted = "games_completed_total"
)

// AllMetricNames lists every metric registered by this package
var AllMetricNames = []string{
	MetricNameEventsPublished, MetricNameEventHandlerErrors,
	MetricNameBattlesCompleted, MetricNameBattleTurns, MetricNameDamageDealt, MetricNameDamageReceived, MetricNameLivesLost,
	MetricNameItemsSold, MetricNameItemsBought, MetricNameItemsBroken,
	MetricNameMoneyEarned, MetricNameMoneySpent, MetricNameRoundIncome, MetricNameRoundsPlayed,
	MetricNameGamesCompleted,
}

// ============================================================================
// Metric Help Text
// ============================================================================

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Battle metric help text
const (
	HelpTextBattlesCompleted = "Total number of battles completed, by winner"
	HelpTextBattleTurns      = "Number of turns a battle lasted"
	HelpTextDamageDealt      = "Total damage dealt by the player"
	HelpTextDamageReceived   = "Total damage received by the player"
	HelpTextLivesLost        = "Total number of lives lost"
)

// Economy metric help text
const (
	HelpTextItemsSold    = "Total number of items sold"
	HelpTextItemsBought  = "Total number of items bought"
	HelpTextItemsBroken  = "Total number of items broken"
	HelpTextMoneyEarned  = "Total money earned from selling items"
	HelpTextMoneySpent   = "Total money spent buying items"
	HelpTextRoundIncome  = "Total money granted at round start"
	HelpTextRoundsPlayed = "Total number of shop rounds started"
)

// Game metric help text
const (
	HelpTextGamesCompleted = "Total number of games completed, by outcome and difficulty"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelType       = "type"
	LabelItem       = "item"
	LabelRarity     = "rarity"
	LabelWinner     = "winner"
	LabelOutcome    = "outcome"
	LabelDifficulty = "difficulty"
)

// Outcome label values
const (
	OutcomeVictory = "victory"
	OutcomeDefeat  = "defeat"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// BattleTurnBuckets spans a one-blow knockout up to the turn limit
var BattleTurnBuckets = []float64{1, 2, 4, 8, 12, 16, 24, 32, 48, 64, 76}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
