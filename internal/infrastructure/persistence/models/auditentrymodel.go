package models

import (
	"time"

	"entregas/internal/shared/constants"
)

// AuditEntryModel represents the database persistence model for audit
// entries. Rows are append-only and never mutated.
type AuditEntryModel struct {
	ID            uint      `gorm:"column:id;primaryKey"`
	TablaNombre   string    `gorm:"column:tabla_nombre;not null;size:100;index:idx_auditoria_tabla_llave,priority:1"`
	LlaveRegistro string    `gorm:"column:llave_registro;not null;size:100;index:idx_auditoria_tabla_llave,priority:2"`
	Accion        string    `gorm:"column:accion;not null;size:50"`
	UsuarioNombre *string   `gorm:"column:usuario_nombre;size:100"`
	Detalle       *string   `gorm:"column:detalle;size:2000"`
	CreadoEn      time.Time `gorm:"column:creado_en"`
}

// TableName specifies the table name for GORM
func (AuditEntryModel) TableName() string {
	return constants.TableAuditLog
}
