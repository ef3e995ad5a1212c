// Package migrate implements the `migrate` CLI command group.
package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"entregas/internal/infrastructure/config"
	"entregas/internal/infrastructure/database"
	"entregas/internal/infrastructure/migration"
	"entregas/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending scripts, roll back, check status and create new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*gorm.DB, string, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, "", nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to get scripts path: %w", err)
	}

	return db, scriptsPath, log, nil
}

func gooseStrategy(scriptsPath string) (*migration.GooseStrategy, error) {
	strategy, ok := migration.NewGooseStrategy(scriptsPath).(*migration.GooseStrategy)
	if !ok {
		return nil, fmt.Errorf("goose strategy unavailable")
	}
	return strategy, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	db, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(db)

	log.Infow("running up migrations", "environment", env)

	strategy, err := gooseStrategy(scriptsPath)
	if err != nil {
		return err
	}
	if err := strategy.Migrate(db); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	db, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(db)

	log.Infow("running down migrations", "environment", env, "steps", steps)

	strategy, err := gooseStrategy(scriptsPath)
	if err != nil {
		return err
	}
	if err := strategy.MigrateDown(db, steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	db, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(db)

	strategy, err := gooseStrategy(scriptsPath)
	if err != nil {
		return err
	}

	version, err := strategy.GetVersion(db)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Current Version: %d\n", version)

	if err := strategy.Status(db); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	db, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close(db)

	log.Infow("creating new migration", "name", name)

	strategy, err := gooseStrategy(scriptsPath)
	if err != nil {
		return err
	}
	if err := strategy.Create(name); err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Printf("Migration '%s' created\n", name)
	return nil
}
