package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Event types published by the game session
const (
	ItemSold        Type = domain.EventTypeItemSold
	ItemBought      Type = domain.EventTypeItemBought
	ItemBroken      Type = domain.EventTypeItemBroken
	BattleCompleted Type = domain.EventTypeBattleCompleted
	LifeLost        Type = domain.EventTypeLifeLost
	RoundStarted    Type = domain.EventTypeRoundStarted
	GameOver        Type = domain.EventTypeGameOver
)

// AllTypes lists every event type the game publishes
var AllTypes = []Type{
	ItemSold, ItemBought, ItemBroken, BattleCompleted, LifeLost, RoundStarted, GameOver,
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// ItemTransactionPayloadV1 is the typed payload for item bought and sold events
type ItemTransactionPayloadV1 struct {
	Player    string        `json:"player"`
	ItemID    string        `json:"item_id"`
	ItemName  string        `json:"item_name"`
	Rarity    domain.Rarity `json:"rarity"`
	Price     int           `json:"price"`
	Round     int           `json:"round"`
	Timestamp int64         `json:"timestamp"`
}

// ItemBrokenPayloadV1 is the typed payload for item broken events
type ItemBrokenPayloadV1 struct {
	Player    string `json:"player"`
	ItemID    string `json:"item_id"`
	ItemName  string `json:"item_name"`
	Round     int    `json:"round"`
	Timestamp int64  `json:"timestamp"`
}

// BattleCompletedPayloadV1 is the typed payload for battle completed events
type BattleCompletedPayloadV1 struct {
	BattleID       string        `json:"battle_id"`
	Round          int           `json:"round"`
	Winner         domain.Winner `json:"winner"`
	Turns          int           `json:"turns"`
	PlayerHP       int           `json:"player_hp"`
	OpponentHP     int           `json:"opponent_hp"`
	DamageDealt    int           `json:"damage_dealt"`
	DamageReceived int           `json:"damage_received"`
	DamageBlocked  int           `json:"damage_blocked"`
	Timestamp      int64         `json:"timestamp"`
}

// LifeLostPayloadV1 is the typed payload for life lost events
type LifeLostPayloadV1 struct {
	Player         string `json:"player"`
	Round          int    `json:"round"`
	LivesRemaining int    `json:"lives_remaining"`
	Timestamp      int64  `json:"timestamp"`
}

// RoundStartedPayloadV1 is the typed payload for round started events
type RoundStartedPayloadV1 struct {
	Round     int   `json:"round"`
	Income    int   `json:"income"`
	Money     int   `json:"money"`
	Timestamp int64 `json:"timestamp"`
}

// GameOverPayloadV1 is the typed payload for game over events
type GameOverPayloadV1 struct {
	Player         string              `json:"player"`
	Victory        bool                `json:"victory"`
	Difficulty     domain.DifficultyID `json:"difficulty"`
	TormentLevel   int                 `json:"torment_level,omitempty"`
	RoundsSurvived int                 `json:"rounds_survived"`
	Wins           int                 `json:"wins"`
	Losses         int                 `json:"losses"`
	Draws          int                 `json:"draws"`
	Timestamp      int64               `json:"timestamp"`
}

func sessionMetadata(sessionID string) Metadata {
	if sessionID == "" {
		return nil
	}
	return map[string]interface{}{MetadataKeySessionID: sessionID}
}

func newItemTransactionEvent(t Type, sessionID string, p *domain.Player, it *domain.Item, round int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: ItemTransactionPayloadV1{
			Player:    p.Name,
			ItemID:    it.ID,
			ItemName:  it.Name,
			Rarity:    it.Rarity,
			Price:     it.Price,
			Round:     round,
			Timestamp: time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewItemBoughtEvent creates an item bought event
func NewItemBoughtEvent(sessionID string, p *domain.Player, it *domain.Item, round int) Event {
	return newItemTransactionEvent(ItemBought, sessionID, p, it, round)
}

// NewItemSoldEvent creates an item sold event
func NewItemSoldEvent(sessionID string, p *domain.Player, it *domain.Item, round int) Event {
	return newItemTransactionEvent(ItemSold, sessionID, p, it, round)
}

// NewItemBrokenEvent creates an item broken event
func NewItemBrokenEvent(sessionID string, p *domain.Player, it *domain.Item, round int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemBroken,
		Payload: ItemBrokenPayloadV1{
			Player:    p.Name,
			ItemID:    it.ID,
			ItemName:  it.Name,
			Round:     round,
			Timestamp: time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewBattleCompletedEvent creates a battle completed event from a finished battle,
// seen from the player's side
func NewBattleCompletedEvent(sessionID string, state *domain.BattleState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BattleCompleted,
		Payload: BattleCompletedPayloadV1{
			BattleID:       state.ID,
			Round:          state.Round,
			Winner:         state.Winner,
			Turns:          state.Turn + 1,
			PlayerHP:       state.Player.Stats.CurrentHP,
			OpponentHP:     state.Opponent.Stats.CurrentHP,
			DamageDealt:    state.PlayerDelta.DamageDealt,
			DamageReceived: state.PlayerDelta.DamageReceived,
			DamageBlocked:  state.PlayerDelta.DamageBlocked,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewLifeLostEvent creates a life lost event
func NewLifeLostEvent(sessionID string, p *domain.Player, round int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LifeLost,
		Payload: LifeLostPayloadV1{
			Player:         p.Name,
			Round:          round,
			LivesRemaining: p.Stats.Lives,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewRoundStartedEvent creates a round started event
func NewRoundStartedEvent(sessionID string, round, income, money int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundStarted,
		Payload: RoundStartedPayloadV1{
			Round:     round,
			Income:    income,
			Money:     money,
			Timestamp: time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewGameOverEvent creates a game over event
func NewGameOverEvent(sessionID string, payload GameOverPayloadV1) Event {
	payload.Timestamp = time.Now().Unix()
	return Event{
		Version:  EventSchemaVersion,
		Type:     GameOver,
		Payload:  payload,
		Metadata: sessionMetadata(sessionID),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously, in
// subscription order. Handler errors are collected, not short-circuited.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every event type the game publishes
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes {
		bus.Subscribe(t, handler)
	}
}
