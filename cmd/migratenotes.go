package main

import (
	"context"
	"os/signal"
	"syscall"

	"sttools/internal/config"
	"sttools/internal/match"
	"sttools/internal/migrate"
	"sttools/pkg/logger"
	"sttools/pkg/stapi"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateNotesCommand constructs the 'migrate-notes' subcommand that copies
// agent notes from the export onto the matched live users.
func migrateNotesCommand(cfg *config.Config) *cobra.Command {
	var exportPath string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate-notes",
		Short: "Copies notes from the export onto matched live users",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			path := cfg.Export.Path
			if exportPath != "" {
				path = exportPath
			}
			exp := loadExport(ctx, path)

			client := newAPIClient(ctx, cfg)
			matcher := match.New(exp, stapi.NewUserSource(client, cfg.API.PageSize), match.NewConfig(cfg))

			migration := migrate.NewNotes(matcher, exp, client, migrate.NotesOptions{DryRun: dryRun})
			summary, err := migration.Run(ctx)
			if err != nil {
				logger.Fatal(ctx, "notes migration failed", zap.Error(err))
			}

			logger.Info(ctx, "notes migration finished",
				zap.Bool("dry_run", dryRun),
				zap.Int("persons_matched", summary.PersonsMatched),
				zap.Int("persons_skipped", summary.PersonsSkipped),
				zap.Int("notes_created", summary.NotesCreated),
				zap.Int("notes_failed", summary.NotesFailed))
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "Export file path (overrides config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log intended writes without calling the API")

	return cmd
}
