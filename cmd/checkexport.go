package main

import (
	"context"

	"sttools/internal/config"
	"sttools/pkg/logger"

	"github.com/spf13/cobra"
)

// checkExportCommand constructs the 'check-export' subcommand that validates
// an export file without touching the API.
func checkExportCommand(cfg *config.Config) *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "check-export",
		Short: "Validates an ST JSON export file",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			path := cfg.Export.Path
			if exportPath != "" {
				path = exportPath
			}
			loadExport(ctx, path)
			logger.Info(ctx, "export file is usable")
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "Export file path (overrides config)")

	return cmd
}
