package fetch

import (
	"regexp"
	"strconv"
	"strings"
)

// Free-text parsing helpers for wiki page content. The wiki has no
// consistent markup for quantities or durations, so these accept every
// form observed in the wild.

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	firstIntRE   = regexp.MustCompile(`\d+`)

	// "10x Plank", "Plank x10", "Plank (10)", "10 Plank"
	qtyPrefixRE = regexp.MustCompile(`^(\d+)\s*[xX]\s*(.+)$`)
	qtySuffixRE = regexp.MustCompile(`^(.+?)\s*[xX]\s*(\d+)$`)
	qtyParenRE  = regexp.MustCompile(`^(.+?)\s*\((\d+)\)$`)
	qtyLeadRE   = regexp.MustCompile(`^(\d+)\s+(.+)$`)

	minutesRE = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:m|min|mins|minute|minutes)\b`)
	hoursRE   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:h|hr|hrs|hour|hours)\b`)
	compactRE = regexp.MustCompile(`(\d+(?:\.\d+)?)h\b`)

	litersRE = regexp.MustCompile(`(\d[\d,.]*)\s*(?:l\b|litre\b|liter\b|liters\b|litres\b)?`)

	slugRE = regexp.MustCompile(`[^a-z0-9]+`)
)

// parseQuantityAndName extracts a build cost line like "10x Plank" into
// its count and material name.
func parseQuantityAndName(text string) (int, string, bool) {
	t := strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
	for _, re := range []*regexp.Regexp{qtyPrefixRE, qtySuffixRE, qtyParenRE, qtyLeadRE} {
		m := re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		// Group order differs between qty-first and name-first patterns.
		qtyStr, name := m[1], m[2]
		if _, err := strconv.Atoi(qtyStr); err != nil {
			qtyStr, name = m[2], m[1]
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty <= 0 {
			continue
		}
		return qty, strings.TrimSpace(name), true
	}
	return 0, "", false
}

// parseHours reads a burn duration like "1h", "2 hours" or "30m" as
// fractional hours.
func parseHours(text string) (float64, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return 0, false
	}
	if m := minutesRE.FindStringSubmatch(t); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v / 60, true
	}
	if m := hoursRE.FindStringSubmatch(t); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v, true
	}
	if m := compactRE.FindStringSubmatch(t); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v, true
	}
	return 0, false
}

// parseLiters reads a water capacity like "45,000 L" or "500 liters".
func parseLiters(text string) (float64, bool) {
	m := litersRE.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// extractInt pulls the first integer out of a cell's text.
func extractInt(text string) (int, bool) {
	m := firstIntRE.FindString(text)
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}

// slugify derives a stable catalog id from a display name:
// "Medium Fuel Generator" -> "medium_fuel_generator".
func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugRE.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
