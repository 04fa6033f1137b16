package game

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/economy"
	"github.com/osse101/EmojiBattler_Go/internal/event"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// MockBus records published events
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

// Published returns the events of the given type, in publish order
func (m *MockBus) Published(t event.Type) []event.Event {
	var out []event.Event
	for _, call := range m.Calls {
		if call.Method != "Publish" {
			continue
		}
		if evt := call.Arguments.Get(1).(event.Event); evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

func ofType(t event.Type) interface{} {
	return mock.MatchedBy(func(evt event.Event) bool { return evt.Type == t })
}

// idleStrategy never buys anything
type idleStrategy struct{}

func (idleStrategy) Choose(context.Context, *domain.Player, []*domain.Item, int) []*domain.Item {
	return nil
}

func (idleStrategy) Score(*domain.Item, *domain.Player, int) float64 { return 0 }

func (idleStrategy) ShouldSell(_, _ *domain.Item, _ *domain.Player, _ int) bool { return false }

func idleAI(domain.Difficulty, int, utils.RandomSource) economy.PurchaseStrategy {
	return idleStrategy{}
}
