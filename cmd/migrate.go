package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/gw-user-identity/internal/logger"
	"github.com/sbilibin2017/gw-user-identity/internal/migrations"
)

// newMigrateCmd creates the migrate command and its up, down and version subcommands.
func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *migrations.Migrator) error {
				return m.Up()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *migrations.Migrator) error {
				return m.Down()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *migrations.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				cmd.Printf("version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	})

	return cmd
}

// withMigrator loads the configuration, opens a Migrator and runs fn with it.
func withMigrator(fn func(m *migrations.Migrator) error) error {
	cfg, err := parseConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()

	m, err := migrations.NewMigrator(cfg.postgresDSN())
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			logger.Log.Errorw("failed to close migrator", "err", err)
		}
	}()

	return fn(m)
}
