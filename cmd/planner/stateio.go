package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gizmo3030/duneplan/internal/state"
)

func exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the saved plan to a dated export file",
		Run: func(cmd *cobra.Command, args []string) {
			sess := loadSession(statePath)

			data, err := state.Encode(sess.State())
			if err != nil {
				color.Red("Error encoding plan: %v", err)
				os.Exit(1)
			}

			path := outPath
			if path == "" {
				path = state.ExportFilename(time.Now())
			}
			if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
				color.Red("Error writing export: %v", err)
				os.Exit(1)
			}
			color.Green("✓ Exported plan to %s", path)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Export file path (default dune-base-plan-<date>.json)")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a plan export and save it as the current plan",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if statePath == "" {
				color.Red("Error: --state is required for import")
				os.Exit(1)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				color.Red("Error reading import file: %v", err)
				os.Exit(1)
			}
			st, err := state.Decode(data)
			if err != nil {
				// The existing plan file is untouched on a failed import.
				color.Red("Error: %v", err)
				os.Exit(1)
			}

			out, err := state.Encode(st)
			if err != nil {
				color.Red("Error encoding plan: %v", err)
				os.Exit(1)
			}
			if err := os.WriteFile(statePath, append(out, '\n'), 0o644); err != nil {
				color.Red("Error writing plan: %v", err)
				os.Exit(1)
			}
			color.Green("✓ Imported %d selections into %s", len(st.SelectedCounts), statePath)
			fmt.Printf("   discount=%v, target days=%d\n", st.DiscountActive, st.TargetDays)
		},
	}
}
