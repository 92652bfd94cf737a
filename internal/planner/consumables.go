package planner

import (
	"math"

	"github.com/gizmo3030/duneplan/internal/catalog"
	"github.com/gizmo3030/duneplan/internal/models"
)

// ComputeConsumables totals the consumable units needed to keep every
// selected item running for targetDays.
//
// An item listing several consumables (alternative fuels) is charged
// for exactly one of them: the longest-burning entry, with ties going
// to whichever is listed first. That models the player loading the most
// efficient fuel they have access to.
func ComputeConsumables(cat *catalog.Catalog, state *models.SelectionState, targetDays int) map[string]int {
	needed := make(map[string]int)
	if targetDays <= 0 {
		return needed
	}

	hours := float64(targetDays) * models.HoursPerDay

	for id, count := range state.SelectedCounts {
		if count <= 0 {
			continue
		}
		item, ok := cat.Lookup(id)
		if !ok {
			continue
		}
		best, ok := bestConsumable(item.Consumables)
		if !ok {
			continue
		}
		units := int(math.Ceil(hours/best.BurnHours)) * count
		needed[best.Name] += units
	}

	return needed
}

// bestConsumable picks the longest-burning entry, first listed wins
// ties. Entries with a non-positive burn time should have been rejected
// at load; they are skipped here so stale data cannot divide by zero.
func bestConsumable(options []models.ConsumableRate) (models.ConsumableRate, bool) {
	var best models.ConsumableRate
	found := false
	for _, c := range options {
		if c.BurnHours <= 0 {
			continue
		}
		if !found || c.BurnHours > best.BurnHours {
			best = c
			found = true
		}
	}
	return best, found
}
