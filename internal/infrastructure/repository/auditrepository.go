package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"entregas/internal/domain/audit"
	"entregas/internal/infrastructure/persistence/models"
	"entregas/internal/shared/db"
	"entregas/internal/shared/logger"
)

type AuditRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAuditRepository(db *gorm.DB, logger logger.Interface) audit.Repository {
	return &AuditRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *AuditRepositoryImpl) Append(ctx context.Context, entry *audit.Entry) error {
	model := &models.AuditEntryModel{
		TablaNombre:   entry.TableName(),
		LlaveRegistro: entry.RowKey(),
		Accion:        entry.Action(),
		UsuarioNombre: entry.ActorName(),
		Detalle:       entry.Detail(),
		CreadoEn:      entry.CreatedAt(),
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append audit entry",
			"error", err,
			"tabla", entry.TableName(),
			"llave", entry.RowKey(),
			"accion", entry.Action())
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	entry.SetID(model.ID)

	r.logger.Infow("audit entry appended",
		"id", model.ID,
		"tabla", entry.TableName(),
		"llave", entry.RowKey(),
		"accion", entry.Action())
	return nil
}
