package models

import (
	"entregas/internal/shared/constants"
)

// WorkerModel represents the database persistence model for workers.
type WorkerModel struct {
	Rut            string  `gorm:"column:rut;primaryKey;size:12"`
	PrimerNombre   string  `gorm:"column:primer_nombre;not null;size:100"`
	PrimerApellido string  `gorm:"column:primer_apellido;not null;size:100"`
	Email          *string `gorm:"column:email;size:200"`
}

// TableName specifies the table name for GORM
func (WorkerModel) TableName() string {
	return constants.TableWorkers
}
