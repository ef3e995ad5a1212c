package models

import (
	"gorm.io/datatypes"

	"entregas/internal/shared/constants"
)

// PeriodModel represents the database persistence model for periods.
type PeriodModel struct {
	Codigo        string         `gorm:"column:codigo;primaryKey;size:50"`
	NombrePeriodo string         `gorm:"column:nombre_periodo;not null;size:200"`
	FechaInicio   datatypes.Date `gorm:"column:fecha_inicio;not null"`
	FechaFinal    datatypes.Date `gorm:"column:fecha_final;not null"`
}

// TableName specifies the table name for GORM
func (PeriodModel) TableName() string {
	return constants.TablePeriods
}
