package models

import (
	"time"

	"entregas/internal/shared/constants"
)

// DeliveryModel represents the database persistence model for deliveries.
// The composite unique index is the authoritative guard against a worker
// receiving the same benefit twice in one period.
type DeliveryModel struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Rut          string    `gorm:"column:rut;not null;size:12;uniqueIndex:uq_entregas_rut_beneficio_periodo,priority:1"`
	BeneficioCod string    `gorm:"column:beneficio_cod;not null;size:50;uniqueIndex:uq_entregas_rut_beneficio_periodo,priority:2"`
	PeriodoCod   string    `gorm:"column:periodo_cod;not null;size:50;uniqueIndex:uq_entregas_rut_beneficio_periodo,priority:3"`
	FechaEntrega time.Time `gorm:"column:fecha_entrega;not null;index"`
	Estado       string    `gorm:"column:estado;not null;size:20;default:PENDIENTE"`
}

// TableName specifies the table name for GORM
func (DeliveryModel) TableName() string {
	return constants.TableDeliveries
}
