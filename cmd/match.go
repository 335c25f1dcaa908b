package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sttools/internal/config"
	"sttools/internal/match"
	"sttools/pkg/domain"
	"sttools/pkg/export"
	"sttools/pkg/logger"
	"sttools/pkg/stapi"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// matchReport is the JSON document the match command produces. Results hold
// an entry for every exported person; null means no match was found.
type matchReport struct {
	GeneratedAt time.Time                               `json:"generated_at"`
	Persons     int                                     `json:"persons"`
	Matched     int                                     `json:"matched"`
	Skipped     []export.SkippedRecord                  `json:"skipped_records,omitempty"`
	Results     map[domain.PersonID]*domain.MatchResult `json:"results"`
}

// loadExport reads the export file, logging every record that had to be
// excluded.
func loadExport(ctx context.Context, path string) *export.Export {
	exp, err := export.Load(path)
	if err != nil {
		logger.Fatal(ctx, "could not load export", zap.String("path", path), zap.Error(err))
	}
	for _, rec := range exp.Skipped {
		logger.Warn(ctx, "skipped invalid export record",
			zap.Int("index", rec.Index),
			zap.String("reason", rec.Reason))
	}
	logger.Info(ctx, "export loaded",
		zap.String("path", path),
		zap.Int("people", len(exp.People)),
		zap.Int("skipped", len(exp.Skipped)))

	return exp
}

// matchCommand constructs the 'match' subcommand that matches exported
// persons against live ST users and writes a JSON report.
func matchCommand(cfg *config.Config) *cobra.Command {
	var exportPath, outPath string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Matches exported persons against live ST users",
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

			results, err := matcher.FindBestMatches(ctx)
			if err != nil {
				logger.Fatal(ctx, "matching failed", zap.Error(err))
			}

			report := matchReport{
				GeneratedAt: time.Now().UTC(),
				Persons:     len(results),
				Skipped:     exp.Skipped,
				Results:     results,
			}
			for _, r := range results {
				if r != nil {
					report.Matched++
				}
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not encode report", zap.Error(err))
			}

			if outPath == "" {
				os.Stdout.Write(out)
				os.Stdout.WriteString("\n")

				return
			}
			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				logger.Fatal(ctx, "could not write report", zap.String("path", outPath), zap.Error(err))
			}
			logger.Info(ctx, "report written", zap.String("path", outPath))
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "Export file path (overrides config)")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the JSON report to this file instead of stdout")

	return cmd
}
