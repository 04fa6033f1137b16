package domain

// Event type constants used for event bus subscriptions and metrics
// tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypeItemSold is published when a player sells an item in the shop
	EventTypeItemSold = "item.sold"

	// EventTypeItemBought is published when a player buys an item in the shop
	EventTypeItemBought = "item.bought"

	// EventTypeItemBroken is published when an item breaks during or after a battle
	EventTypeItemBroken = "item.broken"

	// EventTypeBattleCompleted is published after every battle with its verdict
	EventTypeBattleCompleted = "battle.completed"

	// EventTypeLifeLost is published when a lost battle costs the player a life
	EventTypeLifeLost = "life.lost"

	// EventTypeRoundStarted is published when a new shop phase begins
	EventTypeRoundStarted = "round.started"

	// EventTypeGameOver is published once a game ends, won or lost
	EventTypeGameOver = "game.over"
)
