package main

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
	"github.com/osse101/EmojiBattler_Go/internal/item"
)

// CatalogCommand lists the bundled items
type CatalogCommand struct {
	env *env
}

func (c *CatalogCommand) Name() string {
	return "catalog"
}

func (c *CatalogCommand) Description() string {
	return "List catalog items with price, power and effects"
}

func (c *CatalogCommand) Run(_ context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	rarity := fs.String("rarity", "", "only list this rarity")
	itemType := fs.String("type", "", "only list this item type")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items := c.env.catalog.All()
	if *rarity != "" {
		items = c.env.catalog.ByRarity(domain.Rarity(*rarity))
	}
	if *itemType != "" {
		filtered := items[:0]
		for _, it := range items {
			if it.Type == domain.ItemType(*itemType) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Price < items[j].Price
	})

	PrintHeader(fmt.Sprintf("Catalog (%d items)", len(items)))
	for _, it := range items {
		fmt.Printf("%s %-24s %-9s %-7s %4d gold  atk %3d  def %3d  power %5.1f\n",
			it.Emoji, it.Name, it.Rarity, it.Type, it.Price, it.BaseAttack, it.BaseDefense, item.Power(it))
		for _, e := range it.Effects {
			fmt.Printf("      %s: %s %g%s\n", e.Trigger, e.Type, e.Value, effectSuffix(e))
		}
	}
	return nil
}

func effectSuffix(e domain.ItemEffect) string {
	var s string
	if e.Chance != nil {
		s += fmt.Sprintf(" (%.0f%% chance)", *e.Chance*100)
	}
	if e.Breakable {
		s += fmt.Sprintf(" (breaks after %d)", e.MaxDuration)
	}
	return s
}
