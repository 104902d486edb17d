package cmd

import (
	"fmt"
	"strings"

	"github.com/flowiq/ingest-api/internal/database"
	"github.com/flowiq/ingest-api/internal/models"
	"github.com/flowiq/ingest-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the FlowIQ Recording Ingestion API.

The schema is managed with GORM auto-migration: "up" brings the tables
(tenants, plaud_configs, voice_recordings) in line with the model
definitions, and "status" reports which tables exist.

Available subcommands:
  up      - Apply the current schema
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the current schema",
	Long: `Create or update the ingestion tables to match the model definitions.

Auto-migration only adds tables, columns, and indexes; it never drops
existing columns, so it is safe to run against a populated database.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

// migrationModels is the full set of tables the service owns
func migrationModels() []any {
	return []any{&models.Tenant{}, &models.PlaudConfig{}, &models.VoiceRecording{}}
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	fmt.Fprintf(cmd.OutOrStdout(), "Applying schema to %s\n", cfg.Database.Path)
	if err := db.AutoMigrate(migrationModels()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Schema Status")
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintf(out, "Database: %s\n\n", cfg.Database.Path)

	tables := []string{"tenants", "plaud_configs", "voice_recordings"}
	for _, table := range tables {
		state := "missing"
		if db.DB.Migrator().HasTable(table) {
			state = "present"
		}
		fmt.Fprintf(out, "  %-20s %s\n", table, state)
	}

	return nil
}
