package battle

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
)

// A cases.Caser is stateful, so each call builds its own. Engines run in parallel.
func displayName(s domain.Side) string {
	return cases.Title(language.English).String(sideName(s))
}

// FormatBattleLog renders every event, one block per event
func FormatBattleLog(events []domain.BattleEvent) string {
	lines := make([]string, 0, len(events))
	for _, ev := range events {
		lines = append(lines, FormatEvent(ev))
	}
	return strings.Join(lines, "\n")
}

// FormatEvent renders one event with its item attributed details and HP
func FormatEvent(ev domain.BattleEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Turn %d] %s", ev.Turn, ev.Message)

	for _, d := range ev.Details {
		if d.ItemName == "" {
			continue
		}
		fmt.Fprintf(&b, "\n  %s %s", d.ItemEmoji, d.ItemName)
		switch {
		case d.RawDamage != 0:
			fmt.Fprintf(&b, ": %+d dmg", d.RawDamage)
		case d.BlockAmount != 0:
			fmt.Fprintf(&b, ": %+d block", d.BlockAmount)
		case d.HealAmount != 0:
			fmt.Fprintf(&b, ": %+d heal", d.HealAmount)
		}
		if d.Description != "" {
			fmt.Fprintf(&b, " (%s)", d.Description)
		}
	}

	fmt.Fprintf(&b, "\n  %s HP: %d | %s HP: %d",
		displayName(domain.SidePlayer), ev.PlayerHP, displayName(domain.SideOpponent), ev.OpponentHP)
	return b.String()
}
