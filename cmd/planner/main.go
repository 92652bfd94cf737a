package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gizmo3030/duneplan/internal/catalog"
	"github.com/gizmo3030/duneplan/internal/models"
	"github.com/gizmo3030/duneplan/internal/planner"
	"github.com/gizmo3030/duneplan/internal/state"
)

var (
	catalogPath string
	statePath   string
	quiet       bool

	overrideDays     int
	overrideDiscount bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "duneplan",
		Short: "Dune: Awakening Base Planner",
		Long: `Plans a Dune: Awakening base: totals build materials (with the
Deep Desert discount), balances power and water, and computes the
consumables needed to keep equipment running for a target number of days.`,
	}

	rootCmd.PersistentFlags().StringVarP(&catalogPath, "data", "d", "items_data.json", "Path to catalog JSON file")
	rootCmd.PersistentFlags().StringVarP(&statePath, "state", "s", "", "Path to saved plan file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Aggregate the saved plan and print the totals",
		Run:   runPlan,
	}
	planCmd.Flags().IntVar(&overrideDays, "days", -1, "Override the plan's target day count")
	planCmd.Flags().BoolVar(&overrideDiscount, "discount", false, "Force the Deep Desert discount on")

	rootCmd.AddCommand(planCmd, exportCmd(), importCmd(), fetchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPlan(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  Dune: Awakening          │")
		titleColor.Println("│  Base Planner             │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	cat, warnings, err := catalog.Load(catalogPath)
	if err != nil {
		color.Red("Error loading catalog: %v", err)
		os.Exit(1)
	}
	if !quiet {
		for _, w := range warnings {
			color.Yellow("Warning: %s", w)
		}
		infoColor.Printf("📦 Loaded %d placeables from %s\n\n", cat.Len(), catalogPath)
	}

	recipes, err := catalog.ApartmentRecipes(catalogPath)
	if err != nil {
		color.Red("Error loading apartment recipes: %v", err)
		os.Exit(1)
	}

	sess := loadSession(statePath)
	if overrideDays >= 0 {
		if err := sess.SetTargetDays(overrideDays); err != nil {
			color.Red("Invalid --days: %v", err)
			os.Exit(1)
		}
	}
	if overrideDiscount {
		sess.SetDiscount(true)
	}

	result := planner.AggregateWithRecipes(cat, sess.State(), recipes)
	printResult(cat, sess.State(), result)
}

// loadSession reads the saved plan, or starts empty when no state file
// is given or it does not exist yet.
func loadSession(path string) *state.Session {
	if path == "" {
		return state.NewSession()
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return state.NewSession()
	}
	if err != nil {
		color.Red("Error reading plan: %v", err)
		os.Exit(1)
	}
	st, err := state.Decode(data)
	if err != nil {
		color.Red("Error loading plan: %v", err)
		os.Exit(1)
	}
	return state.NewSessionFrom(st)
}

func printResult(cat *catalog.Catalog, st *models.SelectionState, res models.AggregatedResult) {
	successColor := color.New(color.FgGreen, color.Bold)
	errorColor := color.New(color.FgRed, color.Bold)
	infoColor := color.New(color.FgYellow)

	printSelection(cat, st)

	if len(res.MaterialTotals) > 0 {
		infoColor.Println("🧱 Materials:")
		table := tablewriter.NewTable(os.Stdout,
			tablewriter.WithHeader([]string{"Material", "Quantity"}),
		)
		for _, mat := range sortedKeys(res.MaterialTotals) {
			_ = table.Append([]string{mat, formatQuantity(res.MaterialTotals[mat])})
		}
		_ = table.Render()
		if st.DiscountActive {
			infoColor.Println("   (Deep Desert discount applied to placeable costs)")
		}
		fmt.Println()
	}

	infoColor.Println("⚡ Power:")
	fmt.Printf("   Available: %g\n", res.PowerAvailable)
	fmt.Printf("   Used:      %g\n", res.PowerUsed)
	if balance := res.PowerBalance(); balance >= 0 {
		successColor.Printf("   Balance:   %+g\n", balance)
	} else {
		errorColor.Printf("   Balance:   %+g (not enough power!)\n", balance)
	}
	fmt.Println()

	infoColor.Println("💧 Water:")
	fmt.Printf("   Capacity: %g L\n", res.WaterCapacityTotal)
	fmt.Println()

	infoColor.Printf("⛽ Consumables for %d day(s):\n", st.TargetDays)
	if len(res.ConsumablesNeeded) == 0 {
		fmt.Println("   none needed")
		return
	}
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Consumable", "Units"}),
	)
	for _, name := range sortedKeys(res.ConsumablesNeeded) {
		_ = table.Append([]string{name, fmt.Sprintf("%d", res.ConsumablesNeeded[name])})
	}
	_ = table.Render()
}

func printSelection(cat *catalog.Catalog, st *models.SelectionState) {
	infoColor := color.New(color.FgYellow)

	infoColor.Println("📋 Selection:")
	if len(st.SelectedCounts) == 0 && len(st.ApartmentCounts) == 0 {
		fmt.Println("   (empty)")
		fmt.Println()
		return
	}
	for _, id := range sortedKeys(st.SelectedCounts) {
		name := id
		if item, ok := cat.Lookup(id); ok {
			name = item.Name
		} else {
			name = fmt.Sprintf("%s (not in catalog, ignored)", id)
		}
		fmt.Printf("   • %s ×%d\n", name, st.SelectedCounts[id])
	}
	for _, id := range sortedKeys(st.ApartmentCounts) {
		fmt.Printf("   • %s ×%d (apartment)\n", models.ApartmentDisplayName(id), st.ApartmentCounts[id])
	}
	fmt.Println()
}

func formatQuantity(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%.1f", q)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
