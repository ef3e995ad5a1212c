// Package migration manages database schema migrations with environment
// specific strategies.
package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"entregas/internal/shared/constants"
	"entregas/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager creates a migration manager for the environment: development
// uses GORM AutoMigrate, test and production run the goose SQL scripts.
func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvTest, constants.EnvProduction:
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGooseStrategy(scriptsPath)
	default:
		strategy = NewAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().Named("migration.manager"),
	}
}

// Migrate runs the configured strategy.
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("running migrations", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed (%s): %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("migrations completed", "strategy", m.strategy.GetName())
	return nil
}
