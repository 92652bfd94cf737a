package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gizmo3030/duneplan/internal/models"
)

// ItemJSON is the wire shape of one catalog record, as written by the
// fetch command. Unknown fields are ignored so the extractor can evolve
// independently.
type ItemJSON struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Tier          int              `json:"tier"`
	MaterialCost  []MaterialJSON   `json:"material_cost"`
	Power         float64          `json:"power"`
	WaterCapacity float64          `json:"water_capacity"`
	Consumables   []ConsumableJSON `json:"consumables"`
}

// MaterialJSON is one build cost line on the wire.
type MaterialJSON struct {
	Material string  `json:"material"`
	Quantity float64 `json:"quantity"`
}

// ConsumableJSON is one consumable option on the wire.
type ConsumableJSON struct {
	Name      string  `json:"name"`
	BurnHours float64 `json:"burn_hours"`
}

// Load reads a catalog document from disk. Warnings describe skipped
// records; rendering them is the caller's business.
func Load(path string) (*Catalog, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from a JSON document. Malformed records are
// skipped, each reported as a warning, rather than failing the whole
// load, so a partially broken extract still yields a usable planner.
// Only an unreadable document is a hard error.
func Parse(data []byte) (*Catalog, []string, error) {
	var raw []ItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog: %w", models.NewDataFormatError("", "%v", err))
	}

	var warnings []string
	seen := make(map[string]bool, len(raw))
	items := make([]models.ItemRecord, 0, len(raw))
	for _, rj := range raw {
		rec, err := rj.toRecord()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping catalog record: %v", err))
			continue
		}
		if seen[rec.ID] {
			warnings = append(warnings, fmt.Sprintf("skipping duplicate catalog id %q", rec.ID))
			continue
		}
		seen[rec.ID] = true
		items = append(items, rec)
	}

	return New(items), warnings, nil
}

func (rj ItemJSON) toRecord() (models.ItemRecord, error) {
	if rj.ID == "" {
		return models.ItemRecord{}, models.NewDataFormatError(rj.Name, "missing id")
	}
	if rj.Name == "" {
		return models.ItemRecord{}, models.NewDataFormatError(rj.ID, "missing name")
	}

	rec := models.ItemRecord{
		ID:            rj.ID,
		Name:          rj.Name,
		Tier:          rj.Tier,
		Power:         rj.Power,
		WaterCapacity: rj.WaterCapacity,
	}
	if rec.WaterCapacity < 0 {
		return models.ItemRecord{}, models.NewDataFormatError(rj.ID, "negative water capacity %g", rj.WaterCapacity)
	}
	for _, m := range rj.MaterialCost {
		if m.Quantity < 0 {
			return models.ItemRecord{}, models.NewDataFormatError(rj.ID, "negative quantity %g for material %q", m.Quantity, m.Material)
		}
		rec.MaterialCost = append(rec.MaterialCost, models.MaterialQuantity{
			Material: m.Material,
			Quantity: m.Quantity,
		})
	}
	for _, c := range rj.Consumables {
		if c.BurnHours <= 0 {
			return models.ItemRecord{}, models.NewDataFormatError(rj.ID, "non-positive burn hours %g for consumable %q", c.BurnHours, c.Name)
		}
		rec.Consumables = append(rec.Consumables, models.ConsumableRate{
			Name:      c.Name,
			BurnHours: c.BurnHours,
		})
	}
	return rec, nil
}

// LoadApartmentRecipes reads an override for the apartment quick-add
// cost table. A missing file is not an error: callers fall back to
// models.DefaultApartmentRecipes.
func LoadApartmentRecipes(path string) (map[string][]models.MaterialQuantity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string][]MaterialJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse apartment recipes: %w", err)
	}

	recipes := make(map[string][]models.MaterialQuantity, len(raw))
	for id, lines := range raw {
		for _, m := range lines {
			if m.Quantity < 0 {
				return nil, models.NewDataFormatError(id, "negative quantity %g for material %q", m.Quantity, m.Material)
			}
			recipes[id] = append(recipes[id], models.MaterialQuantity{
				Material: m.Material,
				Quantity: m.Quantity,
			})
		}
	}
	return recipes, nil
}

// ApartmentRecipes resolves the apartment cost table for a catalog:
// an apartments.json next to the catalog file overrides the built-in
// table, and its absence falls back to models.DefaultApartmentRecipes.
// A present but unreadable override is an error.
func ApartmentRecipes(catalogPath string) (map[string][]models.MaterialQuantity, error) {
	recipes, err := LoadApartmentRecipes(filepath.Join(filepath.Dir(catalogPath), "apartments.json"))
	if errors.Is(err, os.ErrNotExist) {
		return models.DefaultApartmentRecipes(), nil
	}
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
