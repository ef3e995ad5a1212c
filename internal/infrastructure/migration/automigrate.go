package migration

import (
	"entregas/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.BenefitModel{},
		&models.PeriodModel{},
		&models.WorkerModel{},
		&models.DeliveryModel{},
		&models.AuditEntryModel{},
	}
}
