package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	l := NewLedger(func() time.Time { return fixed })

	it := sword(60)
	l.RecordIncome(1, 100)
	l.RecordPurchase(1, it)
	l.RecordSale(2, it)

	it.Name = "Renamed"

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, TransactionMoneyReceived, entries[0].Type)
	assert.Equal(t, TransactionItemBought, entries[1].Type)
	assert.Equal(t, -60, entries[1].Amount)
	assert.Equal(t, "Sword", entries[1].Item.Name)
	assert.Equal(t, fixed, entries[2].Timestamp)

	assert.Len(t, l.ForRound(1), 2)
	assert.Len(t, l.ForRound(2), 1)
	assert.Empty(t, l.ForRound(3))
	assert.Equal(t, 100, l.Net())
}

func TestNewLedger_DefaultClock(t *testing.T) {
	l := NewLedger(nil)
	l.RecordIncome(1, 5)
	assert.False(t, l.Entries()[0].Timestamp.IsZero())
}
