package cli

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/mstanic/telemetry-hub/internal/api"
	"github.com/mstanic/telemetry-hub/internal/config"
	"github.com/mstanic/telemetry-hub/internal/database"
	"github.com/mstanic/telemetry-hub/internal/seed"
	"github.com/mstanic/telemetry-hub/internal/store"
	"github.com/mstanic/telemetry-hub/internal/telemetry"
	"github.com/mstanic/telemetry-hub/internal/version"
)

var (
	verbose bool
	listen  string
	logger  *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "telemetry-hub",
	Short: "Multi-tenant telemetry ingestion and query service",
	Long: `A service that ingests time-stamped sensor readings from devices belonging
to multiple tenants, deduplicates them idempotently by event ID, and serves
windowed queries and aggregate insights over the stored data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		settings, eventStore, err := initialize()
		if err != nil {
			return err
		}

		if settings.SeedDemoData {
			if err := seed.Run(cmd.Context(), eventStore, logger); err != nil {
				return err
			}
		}

		service := telemetry.NewService(eventStore, settings.DefaultUnit)
		handler := api.NewHandler(eventStore, service, logger)
		router := api.NewRouter(handler)

		addr := settings.ListenAddress
		if listen != "" {
			addr = listen
		}

		logger.Info("Starting HTTP server", "address", addr)
		return http.ListenAndServe(addr, router)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version.GetVersion()

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
	rootCmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address (overrides settings)")
}

// setupLogger configures the logger based on the verbose flag
func setupLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger)
}

// initialize loads settings and opens the database. Every command builds its
// own handles; there is no shared global state.
func initialize() (*config.Settings, *store.Store, error) {
	newSettings, settings := config.LoadOrInitializeSettingsFromDefaultLocation()
	if newSettings {
		if err := settings.Save(); err != nil {
			logger.Error("Failed to save new settings", "error", err)
		}
	}

	db, err := database.Setup()
	if err != nil {
		return nil, nil, err
	}

	return settings, store.New(db), nil
}
