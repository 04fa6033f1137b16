package game

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
)

// archivedBattle wraps a battle with version metadata for invalidation
type archivedBattle struct {
	Version    string              `json:"version"`
	Battle     *domain.BattleState `json:"battle"`
	ArchivedAt time.Time           `json:"archived_at"`
}

// Archive keeps finished battles for replay and summaries, keyed by battle
// id. Old entries fall out by size and by age.
type Archive struct {
	lru *expirable.LRU[string, *archivedBattle]
}

// NewArchive creates an archive holding at most size battles for ttl each.
// A zero ttl keeps entries until they are evicted by size.
func NewArchive(size int, ttl time.Duration) *Archive {
	return &Archive{
		lru: expirable.NewLRU[string, *archivedBattle](size, nil, ttl),
	}
}

// Put stores a finished battle
func (a *Archive) Put(state *domain.BattleState) {
	if state == nil || state.ID == "" {
		return
	}
	a.lru.Add(state.ID, &archivedBattle{
		Version:    ArchiveSchemaVersion,
		Battle:     state,
		ArchivedAt: time.Now(),
	})
}

// Get returns an archived battle. Entries written under another schema
// version are dropped.
func (a *Archive) Get(id string) (*domain.BattleState, bool) {
	entry, found := a.lru.Get(id)
	if !found {
		return nil, false
	}
	if entry.Version != ArchiveSchemaVersion {
		a.lru.Remove(id)
		return nil, false
	}
	return entry.Battle, true
}

// IDs returns the archived battle ids from oldest to newest
func (a *Archive) IDs() []string {
	return a.lru.Keys()
}

// Len returns the number of archived battles
func (a *Archive) Len() int {
	return a.lru.Len()
}

// Clear removes every archived battle
func (a *Archive) Clear() {
	a.lru.Purge()
}
