// Package catalog loads and indexes the placeable item catalog
// produced by the wiki extractor.
package catalog

import (
	"strings"

	"github.com/gizmo3030/duneplan/internal/models"
)

// Catalog is a read-only index of item records. Build one with Load or
// Parse; a reload replaces the whole catalog.
type Catalog struct {
	items []models.ItemRecord
	byID  map[string]int
}

// New builds a catalog from pre-validated records, keeping source order.
// Records with duplicate IDs after the first are ignored.
func New(items []models.ItemRecord) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(items))}
	for _, it := range items {
		if _, dup := c.byID[it.ID]; dup {
			continue
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c
}

// Lookup returns the record for id, if present.
func (c *Catalog) Lookup(id string) (models.ItemRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.ItemRecord{}, false
	}
	return c.items[i], true
}

// Items returns all records in source order. Callers must not mutate
// the returned slice.
func (c *Catalog) Items() []models.ItemRecord {
	return c.items
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Filter returns records matching the tier predicate (nil matches all
// tiers) and a case-insensitive substring of the display name (empty
// matches all), preserving source order.
func (c *Catalog) Filter(tier func(int) bool, query string) []models.ItemRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []models.ItemRecord
	for _, it := range c.items {
		if tier != nil && !tier(it.Tier) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(it.Name), query) {
			continue
		}
		out = append(out, it)
	}
	return out
}
