package economy

import (
	"sync"
	"time"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
)

// Transaction is one entry of a shop ledger. Item is a snapshot taken when
// the entry was recorded.
type Transaction struct {
	Round     int             `json:"round"`
	Type      TransactionType `json:"type"`
	Amount    int             `json:"amount"`
	Item      *domain.Item    `json:"item,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Ledger is an append-only transaction history
type Ledger struct {
	mu      sync.RWMutex
	entries []Transaction
	now     func() time.Time
}

// NewLedger creates an empty ledger. A nil clock uses time.Now.
func NewLedger(now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{now: now}
}

// RecordIncome logs money received at the start of a round
func (l *Ledger) RecordIncome(round, amount int) {
	l.append(Transaction{Round: round, Type: TransactionMoneyReceived, Amount: amount})
}

// RecordPurchase logs a bought item
func (l *Ledger) RecordPurchase(round int, it *domain.Item) {
	l.append(Transaction{Round: round, Type: TransactionItemBought, Amount: -it.Price, Item: it.Clone()})
}

// RecordSale logs a sold item
func (l *Ledger) RecordSale(round int, it *domain.Item) {
	l.append(Transaction{Round: round, Type: TransactionItemSold, Amount: it.Price, Item: it.Clone()})
}

func (l *Ledger) append(tx Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tx.Timestamp = l.now()
	l.entries = append(l.entries, tx)
}

// Entries returns a copy of every entry in insertion order
func (l *Ledger) Entries() []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Transaction(nil), l.entries...)
}

// ForRound returns the entries of one round
func (l *Ledger) ForRound(round int) []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []Transaction
	for _, tx := range l.entries {
		if tx.Round == round {
			out = append(out, tx)
		}
	}
	return out
}

// Net sums every amount: income and sales minus purchases
func (l *Ledger) Net() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	total := 0
	for _, tx := range l.entries {
		total += tx.Amount
	}
	return total
}
