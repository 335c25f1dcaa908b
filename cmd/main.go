// Package main provides the CLI entrypoint for the ST automation tooling.
// It wires subcommands (match, migrate-notes, check-export), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"sttools/internal/config"
	"sttools/pkg/logger"
	"sttools/pkg/stapi/solidarity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newAPIClient creates an ST API client from configuration values.
func newAPIClient(ctx context.Context, cfg *config.Config) *solidarity.Client {
	if cfg.API.Key == "" {
		logger.Fatal(ctx, "no API key configured, set ST_API_KEY")
	}

	return solidarity.New(
		&http.Client{Timeout: cfg.API.Timeout},
		cfg.API.BaseURL,
		cfg.API.Key,
		solidarity.Options{
			RetryAttempts: cfg.API.RetryAttempts,
			RetryBackoff:  cfg.API.RetryBackoff,
		},
	)
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "sttools",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		matchCommand(cfg),
		migrateNotesCommand(cfg),
		checkExportCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
