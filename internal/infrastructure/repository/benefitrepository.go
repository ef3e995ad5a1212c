package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"entregas/internal/domain/catalog"
	"entregas/internal/infrastructure/persistence/models"
	"entregas/internal/shared/db"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
)

type BenefitRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewBenefitRepository(db *gorm.DB, logger logger.Interface) catalog.BenefitRepository {
	return &BenefitRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *BenefitRepositoryImpl) Create(ctx context.Context, benefit *catalog.Benefit) error {
	model := benefitToModel(benefit)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("Ya existe un beneficio con ese codigo")
		}
		r.logger.Errorw("failed to create benefit", "error", err, "codigo", benefit.Code())
		return fmt.Errorf("failed to create benefit: %w", err)
	}

	r.logger.Infow("benefit created", "codigo", benefit.Code())
	return nil
}

func (r *BenefitRepositoryImpl) GetByCode(ctx context.Context, code string) (*catalog.Benefit, error) {
	var model models.BenefitModel
	if err := db.GetTxFromContext(ctx, r.db).Where("codigo = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get benefit by code", "error", err, "codigo", code)
		return nil, fmt.Errorf("failed to get benefit: %w", err)
	}

	return benefitToEntity(&model), nil
}

func (r *BenefitRepositoryImpl) List(ctx context.Context) ([]*catalog.Benefit, error) {
	var benefitModels []*models.BenefitModel
	err := db.GetTxFromContext(ctx, r.db).
		Order("nombre_beneficio ASC").
		Find(&benefitModels).Error
	if err != nil {
		r.logger.Errorw("failed to list benefits", "error", err)
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}

	benefits := make([]*catalog.Benefit, 0, len(benefitModels))
	for _, model := range benefitModels {
		benefits = append(benefits, benefitToEntity(model))
	}
	return benefits, nil
}

func (r *BenefitRepositoryImpl) Update(ctx context.Context, benefit *catalog.Benefit) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BenefitModel{}).
		Where("codigo = ?", benefit.Code()).
		Updates(map[string]interface{}{
			"nombre_beneficio": benefit.Name(),
			"descripcion":      benefit.Description(),
			"activo":           benefit.Active(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update benefit", "error", result.Error, "codigo", benefit.Code())
		return fmt.Errorf("failed to update benefit: %w", result.Error)
	}

	// RowsAffected may be 0 when the updated values match the existing row.

	r.logger.Infow("benefit updated", "codigo", benefit.Code())
	return nil
}

func (r *BenefitRepositoryImpl) Delete(ctx context.Context, code string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("codigo = ?", code).
		Delete(&models.BenefitModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete benefit", "error", result.Error, "codigo", code)
		return fmt.Errorf("failed to delete benefit: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Beneficio no encontrado")
	}

	r.logger.Infow("benefit deleted", "codigo", code)
	return nil
}

func benefitToModel(benefit *catalog.Benefit) *models.BenefitModel {
	return &models.BenefitModel{
		Codigo:          benefit.Code(),
		NombreBeneficio: benefit.Name(),
		Descripcion:     benefit.Description(),
		Activo:          benefit.Active(),
		CreadoEn:        benefit.CreatedAt(),
	}
}

func benefitToEntity(model *models.BenefitModel) *catalog.Benefit {
	return catalog.ReconstructBenefit(
		model.Codigo,
		model.NombreBeneficio,
		model.Descripcion,
		model.Activo,
		model.CreadoEn,
	)
}
