package metrics

import (
	"context"

	"github.com/osse101/EmojiBattler_Go/internal/event"
	"github.com/osse101/EmojiBattler_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics. A payload that cannot be
// decoded is counted as a handler error and otherwise ignored.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case event.ItemBought:
		p, err := event.DecodePayload[event.ItemTransactionPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ItemsBought.WithLabelValues(string(p.Rarity)).Inc()
		MoneySpent.Add(float64(p.Price))

	case event.ItemSold:
		p, err := event.DecodePayload[event.ItemTransactionPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ItemsSold.WithLabelValues(string(p.Rarity)).Inc()
		MoneyEarned.Add(float64(p.Price))

	case event.ItemBroken:
		p, err := event.DecodePayload[event.ItemBrokenPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ItemsBroken.WithLabelValues(p.ItemID).Inc()

	case event.BattleCompleted:
		p, err := event.DecodePayload[event.BattleCompletedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		BattlesCompleted.WithLabelValues(string(p.Winner)).Inc()
		BattleTurns.Observe(float64(p.Turns))
		DamageDealt.Add(float64(p.DamageDealt))
		DamageReceived.Add(float64(p.DamageReceived))

	case event.LifeLost:
		LivesLost.Inc()

	case event.RoundStarted:
		p, err := event.DecodePayload[event.RoundStartedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		RoundsPlayed.Inc()
		RoundIncome.Add(float64(p.Income))

	case event.GameOver:
		p, err := event.DecodePayload[event.GameOverPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		outcome := OutcomeDefeat
		if p.Victory {
			outcome = OutcomeVictory
		}
		GamesCompleted.WithLabelValues(outcome, string(p.Difficulty)).Inc()
	}
	return nil
}
