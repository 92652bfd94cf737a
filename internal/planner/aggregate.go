// Package planner folds a selection state and the item catalog into
// derived totals: material costs, power balance, water capacity and
// consumable requirements.
package planner

import (
	"github.com/gizmo3030/duneplan/internal/catalog"
	"github.com/gizmo3030/duneplan/internal/models"
)

// DeepDesertDiscount is the cost multiplier applied to placeable build
// costs when the discount is active. Apartment quick-adds are full price.
const DeepDesertDiscount = 0.5

// Aggregate computes the derived totals for a selection. It is a pure
// function of its inputs: the same catalog and state always produce the
// same result, and neither input is mutated.
//
// Selected ids that are missing from the catalog contribute nothing.
// An imported plan may predate a catalog refresh, so this is a
// tolerated condition rather than an error.
func Aggregate(cat *catalog.Catalog, state *models.SelectionState) models.AggregatedResult {
	return AggregateWithRecipes(cat, state, models.DefaultApartmentRecipes())
}

// AggregateWithRecipes is Aggregate with an explicit apartment cost
// table, for callers that load an override file.
func AggregateWithRecipes(cat *catalog.Catalog, state *models.SelectionState, apartments map[string][]models.MaterialQuantity) models.AggregatedResult {
	res := models.NewAggregatedResult()

	costFactor := 1.0
	if state.DiscountActive {
		costFactor = DeepDesertDiscount
	}

	for id, count := range state.SelectedCounts {
		if count <= 0 {
			continue
		}
		item, ok := cat.Lookup(id)
		if !ok {
			continue
		}

		for _, mq := range item.MaterialCost {
			res.MaterialTotals[mq.Material] += mq.Quantity * float64(count) * costFactor
		}
		if item.Power > 0 {
			res.PowerAvailable += item.Power * float64(count)
		} else if item.Power < 0 {
			res.PowerUsed += -item.Power * float64(count)
		}
		res.WaterCapacityTotal += item.WaterCapacity * float64(count)
	}

	// Apartment quick-adds are flat totals, never discounted.
	for id, count := range state.ApartmentCounts {
		if count <= 0 {
			continue
		}
		for _, mq := range apartments[id] {
			res.MaterialTotals[mq.Material] += mq.Quantity * float64(count)
		}
	}

	res.ConsumablesNeeded = ComputeConsumables(cat, state, state.TargetDays)

	return res
}
