// Interactive terminal front end for the base planner: browse and
// search the catalog, adjust selections, and watch the totals update.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gizmo3030/duneplan/internal/catalog"
	"github.com/gizmo3030/duneplan/internal/state"
)

var (
	catalogPath string
	statePath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "duneplan-tui",
		Short: "Interactive Dune: Awakening base planner",
		Run:   runTUI,
	}

	rootCmd.Flags().StringVarP(&catalogPath, "data", "d", "items_data.json", "Path to catalog JSON file")
	rootCmd.Flags().StringVarP(&statePath, "state", "s", "dune-base-plan.json", "Path to saved plan file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) {
	cat, warnings, err := catalog.Load(catalogPath)
	if err != nil {
		color.Red("Error loading catalog: %v", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		color.Yellow("Warning: %s", w)
	}

	recipes, err := catalog.ApartmentRecipes(catalogPath)
	if err != nil {
		color.Red("Error loading apartment recipes: %v", err)
		os.Exit(1)
	}

	sess := state.NewSession()
	if data, err := os.ReadFile(statePath); err == nil {
		st, err := state.Decode(data)
		if err != nil {
			color.Red("Error loading plan: %v", err)
			os.Exit(1)
		}
		sess = state.NewSessionFrom(st)
	}

	m := newModel(cat, sess, recipes, statePath)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
