package event

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	var order []int

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		order = append(order, 1)
		return nil
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		order = append(order, 2)
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, []int{1, 2}, order)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	called := 0

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		called++
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		called++
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	assert.Error(t, err)
	assert.Equal(t, 2, called)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	assert.NoError(t, NewMemoryBus().Publish(context.Background(), Event{Type: GameOver}))
}

func TestSubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]int{}
	SubscribeAll(bus, func(ctx context.Context, evt Event) error {
		seen[evt.Type]++
		return nil
	})

	for _, typ := range AllTypes {
		require.NoError(t, bus.Publish(context.Background(), Event{Type: typ}))
	}
	assert.Len(t, seen, len(AllTypes))
}

func TestConstructors(t *testing.T) {
	p := &domain.Player{Name: "you", Stats: domain.PlayerStats{Lives: 3}}
	it := &domain.Item{ID: "sword", Name: "Sword", Rarity: domain.RarityRare, Price: 60}

	bought := NewItemBoughtEvent("sess", p, it, 4)
	assert.Equal(t, ItemBought, bought.Type)
	assert.Equal(t, EventSchemaVersion, bought.Version)
	assert.Equal(t, "sess", bought.GetMetadataValue(MetadataKeySessionID))
	payload := bought.Payload.(ItemTransactionPayloadV1)
	assert.Equal(t, "sword", payload.ItemID)
	assert.Equal(t, 60, payload.Price)
	assert.Equal(t, 4, payload.Round)

	sold := NewItemSoldEvent("", p, it, 4)
	assert.Equal(t, ItemSold, sold.Type)
	assert.Nil(t, sold.Metadata)
	assert.Nil(t, sold.GetMetadataValue(MetadataKeySessionID))

	lost := NewLifeLostEvent("sess", p, 2).Payload.(LifeLostPayloadV1)
	assert.Equal(t, 3, lost.LivesRemaining)

	state := &domain.BattleState{
		ID: "b1", Round: 3, Turn: 6, Winner: domain.WinnerPlayer,
		Player:      &domain.Player{Stats: domain.PlayerStats{CurrentHP: 40}},
		Opponent:    &domain.Player{Stats: domain.PlayerStats{CurrentHP: 0}},
		PlayerDelta: domain.BattleDelta{DamageDealt: 100, DamageReceived: 60, DamageBlocked: 12},
	}
	done := NewBattleCompletedEvent("sess", state).Payload.(BattleCompletedPayloadV1)
	assert.Equal(t, BattleCompletedPayloadV1{
		BattleID: "b1", Round: 3, Winner: domain.WinnerPlayer, Turns: 7,
		PlayerHP: 40, OpponentHP: 0, DamageDealt: 100, DamageReceived: 60, DamageBlocked: 12,
		Timestamp: done.Timestamp,
	}, done)

	over := NewGameOverEvent("sess", GameOverPayloadV1{Player: "you", Wins: 15, Victory: true})
	assert.NotZero(t, over.Payload.(GameOverPayloadV1).Timestamp)
}

func TestRecorder_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)
	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rec.now = func() time.Time { return fixed }

	bus := NewMemoryBus()
	rec.Register(bus)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, NewRoundStartedEvent("sess", 2, 120, 180)))
	require.NoError(t, bus.Publish(ctx, NewLifeLostEvent("sess", &domain.Player{Name: "you", Stats: domain.PlayerStats{Lives: 4}}, 2)))

	records, err := ReadRecords(&buf)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, RecordSchemaVersion, records[0].SchemaVersion)
	assert.True(t, fixed.Equal(records[0].Timestamp))
	assert.Equal(t, RoundStarted, records[0].Event.Type)
	assert.Equal(t, "sess", records[1].Event.GetMetadataValue(MetadataKeySessionID))

	round, err := DecodePayload[RoundStartedPayloadV1](records[0].Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, 2, round.Round)
	assert.Equal(t, 120, round.Income)
	assert.Equal(t, 180, round.Money)

	lost, err := DecodePayload[LifeLostPayloadV1](records[1].Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, 4, lost.LivesRemaining)
}

func TestFileRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	rec, err := NewFileRecorder(path)
	require.NoError(t, err)

	require.NoError(t, rec.Handle(context.Background(), NewRoundStartedEvent("", 1, 100, 300)))
	require.NoError(t, rec.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := ReadRecords(f)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestReadRecords_Malformed(t *testing.T) {
	_, err := ReadRecords(bytes.NewBufferString("{not json}\n"))
	assert.Error(t, err)
}

func TestDecodePayload_Direct(t *testing.T) {
	in := LifeLostPayloadV1{Player: "you", LivesRemaining: 1}
	out, err := DecodePayload[LifeLostPayloadV1](in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
