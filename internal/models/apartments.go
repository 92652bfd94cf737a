package models

// Apartment quick-adds are flat per-unit material recipes, configured
// here rather than scraped: apartments are not placeables and never
// appear in the wiki catalog. The Deep Desert discount does not apply
// to them.

const (
	ArrakeenSmallApartment = "arrakeen_small_apartment"
	ArrakeenLargeApartment = "arrakeen_large_apartment"
	HarkoVillageSmallSuite = "harko_village_small_suite"
	HarkoVillageLargeSuite = "harko_village_large_suite"
)

// AllApartmentTypes returns the known apartment identifiers in
// deterministic display order.
func AllApartmentTypes() []string {
	return []string{
		ArrakeenSmallApartment,
		ArrakeenLargeApartment,
		HarkoVillageSmallSuite,
		HarkoVillageLargeSuite,
	}
}

// DefaultApartmentRecipes is the static per-unit cost table for
// apartment quick-adds. Callers may replace it wholesale with an
// override file; it is never mutated in place.
func DefaultApartmentRecipes() map[string][]MaterialQuantity {
	return map[string][]MaterialQuantity{
		ArrakeenSmallApartment: {
			{Material: "Silicone Block", Quantity: 20},
			{Material: "Steel Ingot", Quantity: 10},
		},
		ArrakeenLargeApartment: {
			{Material: "Silicone Block", Quantity: 45},
			{Material: "Steel Ingot", Quantity: 25},
			{Material: "Cobalt Paste", Quantity: 10},
		},
		HarkoVillageSmallSuite: {
			{Material: "Silicone Block", Quantity: 20},
			{Material: "Duraluminum Ingot", Quantity: 12},
		},
		HarkoVillageLargeSuite: {
			{Material: "Silicone Block", Quantity: 45},
			{Material: "Duraluminum Ingot", Quantity: 30},
			{Material: "Cobalt Paste", Quantity: 10},
		},
	}
}

// ApartmentDisplayName maps an apartment identifier to its UI label.
func ApartmentDisplayName(id string) string {
	switch id {
	case ArrakeenSmallApartment:
		return "Arrakeen Small Apartment"
	case ArrakeenLargeApartment:
		return "Arrakeen Large Apartment"
	case HarkoVillageSmallSuite:
		return "Harko Village Small Suite"
	case HarkoVillageLargeSuite:
		return "Harko Village Large Suite"
	}
	return id
}
