package models

// HoursPerDay converts the planner's target day count into the hour
// units used by consumable burn times.
const HoursPerDay = 24

// MaterialQuantity is one line of an item's build cost.
// Quantities come from the wiki and may be fractional.
type MaterialQuantity struct {
	Material string
	Quantity float64
}

// ConsumableRate is one fuel/consumable option for an item.
// BurnHours is how long a single unit sustains the item.
type ConsumableRate struct {
	Name      string
	BurnHours float64
}

// ItemRecord is a single placeable from the catalog. Records are
// immutable once loaded; reloading replaces the whole catalog.
type ItemRecord struct {
	ID            string
	Name          string
	Tier          int
	MaterialCost  []MaterialQuantity
	Power         float64 // positive supplies, negative draws
	WaterCapacity float64
	Consumables   []ConsumableRate
}

// SelectionState is the mutable planning session: which placeables are
// selected at what count, whether the Deep Desert discount applies, how
// many days the base must stay supplied, and the apartment quick-adds.
//
// Counts of zero are pruned on write, so absence and zero are the same
// observable state (the serializer depends on this).
type SelectionState struct {
	SelectedCounts  map[string]int
	DiscountActive  bool
	TargetDays      int
	ApartmentCounts map[string]int
}

// NewSelectionState returns an empty state with allocated maps.
func NewSelectionState() *SelectionState {
	return &SelectionState{
		SelectedCounts:  make(map[string]int),
		ApartmentCounts: make(map[string]int),
	}
}

// Clone returns a deep copy.
func (s *SelectionState) Clone() *SelectionState {
	out := NewSelectionState()
	out.DiscountActive = s.DiscountActive
	out.TargetDays = s.TargetDays
	for id, n := range s.SelectedCounts {
		out.SelectedCounts[id] = n
	}
	for id, n := range s.ApartmentCounts {
		out.ApartmentCounts[id] = n
	}
	return out
}

// Equal reports observational equality between two states.
func (s *SelectionState) Equal(other *SelectionState) bool {
	if s.DiscountActive != other.DiscountActive || s.TargetDays != other.TargetDays {
		return false
	}
	if len(s.SelectedCounts) != len(other.SelectedCounts) ||
		len(s.ApartmentCounts) != len(other.ApartmentCounts) {
		return false
	}
	for id, n := range s.SelectedCounts {
		if other.SelectedCounts[id] != n {
			return false
		}
	}
	for id, n := range s.ApartmentCounts {
		if other.ApartmentCounts[id] != n {
			return false
		}
	}
	return true
}

// AggregatedResult is the derived view of a selection against a catalog.
// It is recomputed on demand and never stored.
type AggregatedResult struct {
	MaterialTotals     map[string]float64
	PowerAvailable     float64
	PowerUsed          float64
	WaterCapacityTotal float64
	ConsumablesNeeded  map[string]int
}

// NewAggregatedResult returns a zeroed result with allocated maps.
func NewAggregatedResult() AggregatedResult {
	return AggregatedResult{
		MaterialTotals:    make(map[string]float64),
		ConsumablesNeeded: make(map[string]int),
	}
}

// PowerBalance is supply minus draw; negative means a brownout.
func (r AggregatedResult) PowerBalance() float64 {
	return r.PowerAvailable - r.PowerUsed
}
