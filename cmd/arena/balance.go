package main

import (
	"context"
	"fmt"

	"github.com/osse101/EmojiBattler_Go/internal/item"
)

// BalanceCommand prints the catalog balance report
type BalanceCommand struct {
	env *env
}

func (c *BalanceCommand) Name() string {
	return "balance"
}

func (c *BalanceCommand) Description() string {
	return "Check catalog prices against item power"
}

func (c *BalanceCommand) Run(_ context.Context, _ []string) error {
	report := c.env.catalog.Balance()

	PrintHeader("Catalog Balance")
	PrintInfo("Items: %d, average power %d, average price %d", report.Total, report.AveragePower, report.AveragePrice)
	PrintInfo("Price/power correlation: %.2f", report.Correlation)

	for _, w := range report.Warnings {
		PrintWarning("%s", w)
	}
	for _, s := range report.Suggestions {
		PrintInfo("%s", s)
	}

	mispriced := 0
	for _, it := range c.env.catalog.All() {
		if rec := item.RecommendedPrice(it); rec > 0 && (it.Price > rec*2 || it.Price*2 < rec) {
			mispriced++
			fmt.Printf("  %-24s price %4d, recommended %4d\n", it.Name, it.Price, rec)
		}
	}

	if report.IsBalanced && mispriced == 0 {
		PrintSuccess("Catalog is balanced")
		return nil
	}
	PrintWarning("Catalog needs attention (%d warnings, %d far from the recommended price)", len(report.Warnings), mispriced)
	return nil
}
