package fetch

import "github.com/gizmo3030/duneplan/internal/catalog"

// ManualItems returns hand-maintained records for items the wiki does
// not describe well enough to scrape. They win over scraped records
// with the same name.
func ManualItems() []catalog.ItemJSON {
	return []catalog.ItemJSON{
		{
			ID:   "pentashield",
			Name: "Pentashield",
			MaterialCost: []catalog.MaterialJSON{
				{Material: "Calibrated Servoks", Quantity: 6},
				{Material: "Steel", Quantity: 2},
				{Material: "Cobalt Paste", Quantity: 20},
			},
			Power: -6,
		},
	}
}

// MergeManual overlays manual records onto scraped ones, matching by
// display name. A manual record replaces a scraped one wholesale;
// unmatched manual records are appended.
func MergeManual(scraped, manual []catalog.ItemJSON) []catalog.ItemJSON {
	byName := make(map[string]int, len(scraped))
	out := make([]catalog.ItemJSON, len(scraped))
	copy(out, scraped)
	for i, it := range out {
		byName[it.Name] = i
	}
	for _, m := range manual {
		if i, ok := byName[m.Name]; ok {
			out[i] = m
			continue
		}
		byName[m.Name] = len(out)
		out = append(out, m)
	}
	return out
}
