package fetch

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gizmo3030/duneplan/internal/catalog"
)

// Wiki pages are hand-edited and inconsistent: build costs show up as
// lists or tables, power as half a dozen differently labeled infobox
// rows. Each parser below tries the structured forms first and falls
// back to text scanning, mirroring how the data actually appears.

var (
	consumeLabels = []string{
		"power draw", "power consumption", "consumption", "consumes",
		"power required", "required power", "power requirement", "use", "usage",
	}
	provideLabels = []string{
		"power provided", "power output", "power generation", "generates",
		"generated", "provided power", "generator output", "produces", "produced",
	}

	powerConsumeTextRE = regexp.MustCompile(`(?i)power\s*(?:draw|consumption|required|requirement|use|usage)\s*[:=]?\s*(\d+)`)
	powerProvideTextRE = regexp.MustCompile(`(?i)power\s*(?:provided|output|generation|generated|produced|produces)\s*[:=]?\s*(\d+)`)
	waterTextRE        = regexp.MustCompile(`(?i)(?:water|liquid)[^\n]{0,40}?(?:capacity|storage|volume)[^\n]{0,15}?(\d[\d,.]*)\s*(?:l|liter|litre|liters|litres)`)
	literUnitRE        = regexp.MustCompile(`(?i)\b(l|liter|litre|liters|litres)\b`)
)

// parseItemPage extracts one catalog record from an item page.
func parseItemPage(doc *goquery.Document, name string) catalog.ItemJSON {
	provides, consumes := parsePower(doc, name)
	return catalog.ItemJSON{
		ID:            slugify(name),
		Name:          name,
		Tier:          parseTier(doc),
		MaterialCost:  parseBuildCost(doc),
		Power:         float64(provides) - float64(consumes),
		WaterCapacity: parseWaterCapacity(doc),
		Consumables:   parseConsumables(doc),
	}
}

// parseBuildCost reads the Build Cost section: the first list or table
// between the heading and the next heading.
func parseBuildCost(doc *goquery.Document) []catalog.MaterialJSON {
	heading := findHeading(doc, "build cost", "Build_Cost")
	if heading == nil {
		return nil
	}

	var cost []catalog.MaterialJSON
	heading.NextUntil("h2, h3").EachWithBreak(func(_ int, sib *goquery.Selection) bool {
		if sib.Is("ul, ol") {
			sib.Find("li").Each(func(_ int, li *goquery.Selection) {
				if m, ok := parseCostLine(li); ok {
					cost = append(cost, m)
				}
			})
			return false
		}
		if sib.Is("table") {
			cost = parseBuildCostTable(sib)
			return false
		}
		return true
	})
	return cost
}

func parseBuildCostTable(tbl *goquery.Selection) []catalog.MaterialJSON {
	var cost []catalog.MaterialJSON
	tbl.Find("tr").Each(func(_ int, row *goquery.Selection) {
		tds := row.Find("td")
		// "Components" header with the whole list in a single cell.
		if row.Find("th").Length() > 0 && tds.Length() == 1 {
			cell := tds.First()
			if cell.Find("li").Length() > 0 {
				cell.Find("li").Each(func(_ int, li *goquery.Selection) {
					if m, ok := parseCostLine(li); ok {
						cost = append(cost, m)
					}
				})
				return
			}
			if m, ok := parseCostLine(cell); ok {
				cost = append(cost, m)
			}
			return
		}
		// Plain two-column rows: material, quantity.
		if tds.Length() >= 2 {
			name := anchorText(tds.First())
			if name == "" {
				name = cellText(tds.First())
			}
			qty, ok := extractInt(cellText(tds.Eq(1)))
			if name != "" && ok && qty > 0 {
				cost = append(cost, catalog.MaterialJSON{Material: name, Quantity: float64(qty)})
			}
		}
	})
	return cost
}

func parseCostLine(sel *goquery.Selection) (catalog.MaterialJSON, bool) {
	text := cellText(sel)
	qty, name, ok := parseQuantityAndName(text)
	if !ok {
		// Anchor text plus any integer in the line still makes a cost.
		name = anchorText(sel)
		q, found := extractInt(text)
		if name == "" || !found {
			return catalog.MaterialJSON{}, false
		}
		qty = q
	}
	if qty <= 0 {
		return catalog.MaterialJSON{}, false
	}
	return catalog.MaterialJSON{Material: name, Quantity: float64(qty)}, true
}

// parsePower reads provided/consumed power from infobox rows, falling
// back to text patterns. Items that appear to both provide and consume
// are treated as generators with the consumption discarded, since that
// combination is a misparse in practice.
func parsePower(doc *goquery.Document, pageTitle string) (provides, consumes int) {
	isGenerator := strings.Contains(strings.ToLower(pageTitle), "generator")
	var ambiguous []int

	eachLabeledRow(doc, func(label string, value *goquery.Selection) {
		text := cellText(value)
		if matchesAny(label, provideLabels) {
			if n, ok := extractInt(text); ok && n > provides {
				provides = n
			}
			return
		}
		if matchesAny(label, consumeLabels) {
			if n, ok := extractInt(text); ok && n > consumes {
				consumes = n
			}
			return
		}
		if strings.Contains(label, "power") {
			if n, ok := extractInt(text); ok {
				ambiguous = append(ambiguous, n)
			}
		}
	})

	pageText := doc.Text()
	if provides == 0 {
		if m := powerProvideTextRE.FindStringSubmatch(pageText); m != nil {
			provides, _ = extractInt(m[1])
		}
	}
	if consumes == 0 && provides == 0 {
		if m := powerConsumeTextRE.FindStringSubmatch(pageText); m != nil {
			consumes, _ = extractInt(m[1])
		}
	}

	if len(ambiguous) > 0 && provides == 0 && consumes == 0 {
		top := 0
		for _, n := range ambiguous {
			if n > top {
				top = n
			}
		}
		if isGenerator {
			provides = top
		} else {
			consumes = top
		}
	}

	if provides > 0 && consumes > 0 {
		consumes = 0
	}
	return provides, consumes
}

// parseWaterCapacity reads a liter capacity from infobox rows or text.
func parseWaterCapacity(doc *goquery.Document) float64 {
	var capacity float64

	eachLabeledRow(doc, func(label string, value *goquery.Selection) {
		text := cellText(value)
		labelWater := strings.Contains(label, "water") || strings.Contains(label, "liquid")
		labelCapacity := strings.Contains(label, "capacity") || strings.Contains(label, "storage") ||
			strings.Contains(label, "volume") || strings.Contains(label, "tank")
		valueLiters := literUnitRE.MatchString(text)

		var liters float64
		var ok bool
		switch {
		case labelWater && labelCapacity:
			liters, ok = parseLiters(text)
		case labelCapacity && valueLiters:
			liters, ok = parseLiters(text)
		}
		if ok && liters > capacity {
			capacity = liters
		}
	})

	if capacity == 0 {
		if m := waterTextRE.FindStringSubmatch(doc.Text()); m != nil {
			if v, ok := parseLiters(m[1]); ok {
				capacity = v
			}
		}
	}
	return capacity
}

// parseConsumables reads the fuel/consumable options: explicit
// consumable tables with a burn time column first, then infobox rows
// labeled consumable/fuel/lubricant. Duplicate names keep the longest
// burn time.
func parseConsumables(doc *goquery.Document) []catalog.ConsumableJSON {
	var results []catalog.ConsumableJSON

	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		var headers []string
		tbl.Find("th").Each(func(_ int, th *goquery.Selection) {
			headers = append(headers, strings.ToLower(cellText(th)))
		})
		nameCol := anyContains(headers, "consumable", "fuel", "lubricant")
		timeCol := anyContains(headers, "burn", "time", "duration")
		if !nameCol || !timeCol {
			return
		}
		tbl.Find("tr").Each(func(_ int, row *goquery.Selection) {
			tds := row.Find("td")
			if tds.Length() < 2 {
				return
			}
			name := anchorText(tds.First())
			if name == "" {
				name = cellText(tds.First())
			}
			hours, ok := parseHours(cellText(tds.Eq(1)))
			if !ok {
				hours = 1
			}
			if name != "" {
				results = append(results, catalog.ConsumableJSON{Name: name, BurnHours: hours})
			}
		})
	})

	if len(results) == 0 {
		eachLabeledRow(doc, func(label string, value *goquery.Selection) {
			if !matchesAny(label, []string{"consumable", "fuel", "lubricant", "upkeep", "maintenance"}) {
				return
			}
			ctx := cellText(value)
			hours, ok := parseHours(ctx)
			if !ok {
				hours = 1
			}
			anchors := value.Find("a")
			if anchors.Length() > 0 {
				anchors.Each(func(_ int, a *goquery.Selection) {
					name := strings.TrimSpace(a.Text())
					if name == "" {
						name, _ = a.Attr("title")
					}
					if name != "" && !strings.HasPrefix(name, "File:") {
						results = append(results, catalog.ConsumableJSON{Name: name, BurnHours: hours})
					}
				})
				return
			}
			if ctx != "" {
				results = append(results, catalog.ConsumableJSON{Name: ctx, BurnHours: hours})
			}
		})
	}

	return dedupeConsumables(results)
}

// parseTier reads an ordinal tier from an infobox row when present.
func parseTier(doc *goquery.Document) int {
	tier := 0
	eachLabeledRow(doc, func(label string, value *goquery.Selection) {
		if tier == 0 && strings.Contains(label, "tier") {
			if n, ok := extractInt(cellText(value)); ok {
				tier = n
			}
		}
	})
	return tier
}

func dedupeConsumables(in []catalog.ConsumableJSON) []catalog.ConsumableJSON {
	index := make(map[string]int, len(in))
	var out []catalog.ConsumableJSON
	for _, c := range in {
		if i, ok := index[c.Name]; ok {
			if c.BurnHours > out[i].BurnHours {
				out[i].BurnHours = c.BurnHours
			}
			continue
		}
		index[c.Name] = len(out)
		out = append(out, c)
	}
	return out
}

// eachLabeledRow visits every infobox-style table row that has a label
// cell (th, or first td of a pair) and a value cell.
func eachLabeledRow(doc *goquery.Document, fn func(label string, value *goquery.Selection)) {
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		tds := row.Find("td")
		th := row.Find("th").First()

		var label, value *goquery.Selection
		switch {
		case tds.Length() >= 2:
			if th.Length() > 0 {
				label = th
			} else {
				label = tds.First()
			}
			value = tds.Eq(1)
		case tds.Length() == 1 && th.Length() > 0:
			label = th
			value = tds.First()
		default:
			return
		}
		fn(strings.ToLower(cellText(label)), value)
	})
}

// findHeading locates an h2/h3 section heading by span id or text.
func findHeading(doc *goquery.Document, text string, ids ...string) *goquery.Selection {
	for _, id := range ids {
		if span := doc.Find("span#" + id); span.Length() > 0 {
			if h := span.Closest("h2, h3"); h.Length() > 0 {
				return h
			}
		}
	}
	var found *goquery.Selection
	doc.Find("h2, h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(cellText(h)), text) {
			found = h
			return false
		}
		return true
	})
	return found
}

func anchorText(sel *goquery.Selection) string {
	best := ""
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		title, _ := a.Attr("title")
		if strings.HasPrefix(href, "/File:") || strings.HasPrefix(title, "File:") {
			return
		}
		name := strings.TrimSpace(a.Text())
		if name == "" {
			name = strings.TrimSpace(title)
		}
		// The text anchor after an icon is usually the longest candidate.
		if len(name) > len(best) {
			best = name
		}
	})
	return best
}

func cellText(sel *goquery.Selection) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(sel.Text(), " "))
}

func matchesAny(label string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(label, n) {
			return true
		}
	}
	return false
}

func anyContains(haystacks []string, needles ...string) bool {
	for _, h := range haystacks {
		for _, n := range needles {
			if strings.Contains(h, n) {
				return true
			}
		}
	}
	return false
}
