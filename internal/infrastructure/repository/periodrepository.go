package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"entregas/internal/domain/catalog"
	"entregas/internal/infrastructure/persistence/models"
	"entregas/internal/shared/db"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
)

type PeriodRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPeriodRepository(db *gorm.DB, logger logger.Interface) catalog.PeriodRepository {
	return &PeriodRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *PeriodRepositoryImpl) Create(ctx context.Context, period *catalog.Period) error {
	model := periodToModel(period)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("Ya existe un periodo con ese codigo")
		}
		r.logger.Errorw("failed to create period", "error", err, "codigo", period.Code())
		return fmt.Errorf("failed to create period: %w", err)
	}

	r.logger.Infow("period created", "codigo", period.Code())
	return nil
}

func (r *PeriodRepositoryImpl) GetByCode(ctx context.Context, code string) (*catalog.Period, error) {
	var model models.PeriodModel
	if err := db.GetTxFromContext(ctx, r.db).Where("codigo = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get period by code", "error", err, "codigo", code)
		return nil, fmt.Errorf("failed to get period: %w", err)
	}

	return periodToEntity(&model), nil
}

func (r *PeriodRepositoryImpl) List(ctx context.Context) ([]*catalog.Period, error) {
	var periodModels []*models.PeriodModel
	err := db.GetTxFromContext(ctx, r.db).
		Order("fecha_inicio DESC").
		Find(&periodModels).Error
	if err != nil {
		r.logger.Errorw("failed to list periods", "error", err)
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}

	periods := make([]*catalog.Period, 0, len(periodModels))
	for _, model := range periodModels {
		periods = append(periods, periodToEntity(model))
	}
	return periods, nil
}

func (r *PeriodRepositoryImpl) Update(ctx context.Context, period *catalog.Period) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PeriodModel{}).
		Where("codigo = ?", period.Code()).
		Updates(map[string]interface{}{
			"nombre_periodo": period.Name(),
			"fecha_inicio":   datatypes.Date(period.StartDate()),
			"fecha_final":    datatypes.Date(period.EndDate()),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update period", "error", result.Error, "codigo", period.Code())
		return fmt.Errorf("failed to update period: %w", result.Error)
	}

	r.logger.Infow("period updated", "codigo", period.Code())
	return nil
}

func (r *PeriodRepositoryImpl) Delete(ctx context.Context, code string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("codigo = ?", code).
		Delete(&models.PeriodModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete period", "error", result.Error, "codigo", code)
		return fmt.Errorf("failed to delete period: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Periodo no encontrado")
	}

	r.logger.Infow("period deleted", "codigo", code)
	return nil
}

func periodToModel(period *catalog.Period) *models.PeriodModel {
	return &models.PeriodModel{
		Codigo:        period.Code(),
		NombrePeriodo: period.Name(),
		FechaInicio:   datatypes.Date(period.StartDate()),
		FechaFinal:    datatypes.Date(period.EndDate()),
	}
}

func periodToEntity(model *models.PeriodModel) *catalog.Period {
	return catalog.ReconstructPeriod(
		model.Codigo,
		model.NombrePeriodo,
		time.Time(model.FechaInicio),
		time.Time(model.FechaFinal),
	)
}
