package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/gizmo3030/duneplan/internal/models"
)

// searchMatch pairs a record with its ranking score.
type searchMatch struct {
	item  models.ItemRecord
	score float64
}

// Search ranks records against a free-text query. Substring matches
// rank first (earlier match position wins), then near-misses by edit
// distance, so "spce refinery" still finds the Spice Refinery. Results
// are capped at limit (<=0 means no cap); an empty query returns all
// records in source order.
func (c *Catalog) Search(query string, limit int) []models.ItemRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]models.ItemRecord, len(c.items))
		copy(out, c.items)
		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return out
	}

	var matches []searchMatch
	for _, it := range c.items {
		name := strings.ToLower(it.Name)
		if idx := strings.Index(name, query); idx >= 0 {
			// Exact substring: earlier and tighter matches score higher.
			matches = append(matches, searchMatch{item: it, score: 2 - float64(idx)/float64(len(name))})
			continue
		}
		if s := fuzzyScore(name, query); s > 0 {
			matches = append(matches, searchMatch{item: it, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]models.ItemRecord, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.item)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// fuzzyScore rates query against name (and each word of name) by edit
// distance, normalized to (0,1]. Scores at or below 0.55 are treated
// as no match to keep noise out of short queries.
func fuzzyScore(name, query string) float64 {
	best := similarity(name, query)
	for _, word := range strings.Fields(name) {
		if s := similarity(word, query); s > best {
			best = s
		}
	}
	if best <= 0.55 {
		return 0
	}
	return best
}

// similarity normalizes the edit distance by the longer input. Both the
// distance and the length are counted in runes so non-ASCII names score
// the same as ASCII ones.
func similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(longest)
}
