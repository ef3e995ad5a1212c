package models

import (
	"time"

	"entregas/internal/shared/constants"
)

// BenefitModel represents the database persistence model for benefits.
// This is the anti-corruption layer between domain and database; column
// names keep the Spanish vocabulary of the original schema.
type BenefitModel struct {
	Codigo          string    `gorm:"column:codigo;primaryKey;size:50"`
	NombreBeneficio string    `gorm:"column:nombre_beneficio;not null;size:200"`
	Descripcion     string    `gorm:"column:descripcion;size:500"`
	Activo          bool      `gorm:"column:activo;not null;default:true"`
	CreadoEn        time.Time `gorm:"column:creado_en"`
}

// TableName specifies the table name for GORM
func (BenefitModel) TableName() string {
	return constants.TableBenefits
}
