package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gizmo3030/duneplan/internal/catalog"
	"github.com/gizmo3030/duneplan/internal/models"
	"github.com/gizmo3030/duneplan/internal/planner"
	"github.com/gizmo3030/duneplan/internal/state"
)

const visibleRows = 14

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

type model struct {
	cat     *catalog.Catalog
	sess    *state.Session
	recipes map[string][]models.MaterialQuantity

	statePath string

	items      []models.ItemRecord
	cursor     int
	offset     int
	query      string
	searching  bool
	tierFilter int // 0 = all tiers

	result models.AggregatedResult
	status string
}

func newModel(cat *catalog.Catalog, sess *state.Session, recipes map[string][]models.MaterialQuantity, statePath string) *model {
	m := &model{
		cat:       cat,
		sess:      sess,
		recipes:   recipes,
		statePath: statePath,
	}
	m.refilter()
	m.recompute()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		return m.updateSearch(key)
	}

	switch key.String() {
	case "q", "ctrl+c":
		m.save()
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "+", "=", "right", "l":
		m.adjust(1)
	case "-", "_", "left", "h":
		m.adjust(-1)
	case "0":
		m.clearCurrent()
	case "/":
		m.searching = true
		m.status = ""
	case "t":
		m.cycleTier()
	case "D":
		m.sess.SetDiscount(!m.sess.State().DiscountActive)
		m.recompute()
	case "]":
		_ = m.sess.SetTargetDays(m.sess.State().TargetDays + 1)
		m.recompute()
	case "[":
		if days := m.sess.State().TargetDays; days > 0 {
			_ = m.sess.SetTargetDays(days - 1)
			m.recompute()
		}
	case "e":
		m.export()
	case "w":
		m.save()
		m.status = "saved " + m.statePath
	}
	return m, nil
}

func (m *model) updateSearch(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter", "esc":
		m.searching = false
	case "backspace":
		if len(m.query) > 0 {
			m.query = m.query[:len(m.query)-1]
			m.refilter()
		}
	case "ctrl+c":
		m.save()
		return m, tea.Quit
	default:
		if key.Type == tea.KeyRunes {
			m.query += string(key.Runes)
			m.refilter()
		}
	}
	return m, nil
}

func (m *model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.items)-1 {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}
}

func (m *model) adjust(delta int) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return
	}
	m.sess.Adjust(m.items[m.cursor].ID, delta)
	m.recompute()
}

func (m *model) clearCurrent() {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return
	}
	_ = m.sess.SetCount(m.items[m.cursor].ID, 0)
	m.recompute()
}

func (m *model) cycleTier() {
	maxTier := 0
	for _, it := range m.cat.Items() {
		if it.Tier > maxTier {
			maxTier = it.Tier
		}
	}
	m.tierFilter++
	if m.tierFilter > maxTier {
		m.tierFilter = 0
	}
	m.refilter()
}

func (m *model) refilter() {
	if m.query != "" {
		m.items = m.cat.Search(m.query, 0)
	} else {
		m.items = m.cat.Items()
	}
	if m.tierFilter > 0 {
		var filtered []models.ItemRecord
		for _, it := range m.items {
			if it.Tier == m.tierFilter {
				filtered = append(filtered, it)
			}
		}
		m.items = filtered
	}
	m.cursor = 0
	m.offset = 0
}

func (m *model) recompute() {
	m.result = planner.AggregateWithRecipes(m.cat, m.sess.State(), m.recipes)
}

func (m *model) save() {
	data, err := state.Encode(m.sess.State())
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	if err := os.WriteFile(m.statePath, append(data, '\n'), 0o644); err != nil {
		m.status = "save failed: " + err.Error()
	}
}

func (m *model) export() {
	data, err := state.Encode(m.sess.State())
	if err != nil {
		m.status = "export failed: " + err.Error()
		return
	}
	path := state.ExportFilename(time.Now())
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		m.status = "export failed: " + err.Error()
		return
	}
	m.status = "exported " + path
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dune: Awakening Base Planner"))
	b.WriteString("\n\n")

	left := panelStyle.Render(m.viewList())
	right := panelStyle.Render(m.viewTotals())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(cursorStyle.Render("search: " + m.query + "▌"))
	} else if m.status != "" {
		b.WriteString(dimStyle.Render(m.status))
	} else {
		b.WriteString(dimStyle.Render("↑/↓ move · +/- count · 0 clear · / search · t tier · D discount · [/] days · e export · w save · q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m *model) viewList() string {
	var b strings.Builder

	header := fmt.Sprintf("Placeables (%d)", len(m.items))
	if m.tierFilter > 0 {
		header += fmt.Sprintf(" · tier %d", m.tierFilter)
	}
	if m.query != "" {
		header += fmt.Sprintf(" · %q", m.query)
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(dimStyle.Render("no matches"))
		return b.String()
	}

	end := m.offset + visibleRows
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.offset; i < end; i++ {
		it := m.items[i]
		count := m.sess.Count(it.ID)

		line := fmt.Sprintf("%-34s", truncate(it.Name, 34))
		if count > 0 {
			line += selectedStyle.Render(fmt.Sprintf(" ×%-3d", count))
		} else {
			line += dimStyle.Render("    ·")
		}

		if i == m.cursor {
			b.WriteString(cursorStyle.Render("▸ ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if end < len(m.items) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(m.items)-end)))
	}
	return b.String()
}

func (m *model) viewTotals() string {
	var b strings.Builder
	st := m.sess.State()
	res := m.result

	b.WriteString(titleStyle.Render("Totals"))
	b.WriteString("\n")

	discount := "off"
	if st.DiscountActive {
		discount = "on"
	}
	b.WriteString(fmt.Sprintf("discount: %s · days: %d\n\n", discount, st.TargetDays))

	b.WriteString(fmt.Sprintf("power  %g / %g", res.PowerUsed, res.PowerAvailable))
	if res.PowerBalance() < 0 {
		b.WriteString(warnStyle.Render("  ⚠ short"))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("water  %g L\n\n", res.WaterCapacityTotal))

	b.WriteString(titleStyle.Render("Materials"))
	b.WriteString("\n")
	if len(res.MaterialTotals) == 0 {
		b.WriteString(dimStyle.Render("nothing selected") + "\n")
	}
	for _, mat := range sortedKeys(res.MaterialTotals) {
		b.WriteString(fmt.Sprintf("%-24s %8.6g\n", truncate(mat, 24), res.MaterialTotals[mat]))
	}

	if len(res.ConsumablesNeeded) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Consumables"))
		b.WriteString("\n")
		for _, name := range sortedKeys(res.ConsumablesNeeded) {
			b.WriteString(fmt.Sprintf("%-24s %5d\n", truncate(name, 24), res.ConsumablesNeeded[name]))
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
