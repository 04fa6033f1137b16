package item

import (
	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/utils"
)

// Catalog holds the immutable item templates. Lookups hand out deep copies
// so callers can mutate runtime state without touching the templates.
type Catalog struct {
	items []*domain.Item
	byID  map[string]*domain.Item
}

// NewCatalog builds a catalog from a validated config
func NewCatalog(cfg *Config) *Catalog {
	c := &Catalog{
		items: make([]*domain.Item, 0, len(cfg.Items)),
		byID:  make(map[string]*domain.Item, len(cfg.Items)),
	}
	for i := range cfg.Items {
		it := cfg.Items[i].toItem()
		c.items = append(c.items, it)
		c.byID[it.ID] = it
	}
	return c
}

// NewCatalogFromItems wraps already built items, pricing any with a zero price
func NewCatalogFromItems(items []*domain.Item) *Catalog {
	c := &Catalog{
		items: make([]*domain.Item, 0, len(items)),
		byID:  make(map[string]*domain.Item, len(items)),
	}
	for _, src := range items {
		it := src.Clone()
		if it.Price == 0 {
			it.Price = CalculatePrice(it)
		}
		c.items = append(c.items, it)
		c.byID[it.ID] = it
	}
	return c
}

// Len returns the number of templates
func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns copies of every item in catalog order
func (c *Catalog) All() []*domain.Item {
	return domain.CloneItems(c.items)
}

// ByID returns a copy of the item with the given id
func (c *Catalog) ByID(id string) (*domain.Item, bool) {
	it, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return it.Clone(), true
}

// ByRarity returns copies of every item of the given rarity
func (c *Catalog) ByRarity(r domain.Rarity) []*domain.Item {
	return c.filter(func(it *domain.Item) bool { return it.Rarity == r })
}

// ByType returns copies of every item of the given type
func (c *Catalog) ByType(t domain.ItemType) []*domain.Item {
	return c.filter(func(it *domain.Item) bool { return it.Type == t })
}

// Random returns up to count distinct items not in exclude, drawn uniformly
func (c *Catalog) Random(rng utils.RandomSource, count int, exclude map[string]bool) []*domain.Item {
	pool := c.filter(func(it *domain.Item) bool { return !exclude[it.ID] })

	// partial Fisher-Yates
	if count > len(pool) {
		count = len(pool)
	}
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count]
}

func (c *Catalog) filter(keep func(*domain.Item) bool) []*domain.Item {
	out := make([]*domain.Item, 0)
	for _, it := range c.items {
		if keep(it) {
			out = append(out, it.Clone())
		}
	}
	return out
}
