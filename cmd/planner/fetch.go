package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gizmo3030/duneplan/internal/fetch"
)

func fetchCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Scrape the wiki Placeables category into the catalog file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			cfg := fetch.ConfigFromEnv()
			color.Cyan("Fetching placeables from %s", cfg.CategoryURL)

			items, err := fetch.New(cfg).FetchCatalog(ctx)
			if err != nil {
				color.Red("Error fetching catalog: %v", err)
				os.Exit(1)
			}

			if err := fetch.WriteCatalog(outPath, items); err != nil {
				color.Red("Error: %v", err)
				os.Exit(1)
			}
			color.Green("✓ Wrote %d items to %s", len(items), outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "items_data.json", "Catalog output path")
	return cmd
}
