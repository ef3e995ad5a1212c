package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"entregas/internal/domain/delivery"
	"entregas/internal/infrastructure/persistence/models"
	"entregas/internal/shared/db"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
	"entregas/internal/shared/utils"
)

type DeliveryRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewDeliveryRepository(db *gorm.DB, logger logger.Interface) delivery.Repository {
	return &DeliveryRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *DeliveryRepositoryImpl) Create(ctx context.Context, d *delivery.Delivery) error {
	model := deliveryToModel(d)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("La persona ya tiene registrada una entrega de ese beneficio en el periodo indicado")
		}
		r.logger.Errorw("failed to create delivery",
			"error", err,
			"rut", d.RUT(),
			"beneficio", d.BenefitCode(),
			"periodo", d.PeriodCode())
		return fmt.Errorf("failed to create delivery: %w", err)
	}

	if err := d.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("delivery created",
		"id", model.ID,
		"rut", d.RUT(),
		"beneficio", d.BenefitCode(),
		"periodo", d.PeriodCode())
	return nil
}

func (r *DeliveryRepositoryImpl) GetByID(ctx context.Context, id uint) (*delivery.Delivery, error) {
	var model models.DeliveryModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get delivery by id", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	return deliveryToEntity(&model), nil
}

func (r *DeliveryRepositoryImpl) List(ctx context.Context, filter delivery.Filter) ([]*delivery.Delivery, int64, error) {
	query := r.applyFilter(db.GetTxFromContext(ctx, r.db).Model(&models.DeliveryModel{}), filter)

	// Total is counted over the full filtered set, independent of the page window.
	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count deliveries", "error", err)
		return nil, 0, fmt.Errorf("failed to count deliveries: %w", err)
	}

	pagination := utils.ValidatePagination(filter.Page, filter.Size)

	var deliveryModels []*models.DeliveryModel
	err := query.
		Order("fecha_entrega DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Size).
		Find(&deliveryModels).Error
	if err != nil {
		r.logger.Errorw("failed to list deliveries", "error", err)
		return nil, 0, fmt.Errorf("failed to list deliveries: %w", err)
	}

	deliveries := make([]*delivery.Delivery, 0, len(deliveryModels))
	for _, model := range deliveryModels {
		deliveries = append(deliveries, deliveryToEntity(model))
	}
	return deliveries, total, nil
}

func (r *DeliveryRepositoryImpl) applyFilter(query *gorm.DB, filter delivery.Filter) *gorm.DB {
	if filter.RUT != "" {
		query = query.Where("rut = ?", filter.RUT)
	}
	if filter.BenefitCode != "" {
		query = query.Where("beneficio_cod = ?", filter.BenefitCode)
	}
	if filter.PeriodCode != "" {
		query = query.Where("periodo_cod = ?", filter.PeriodCode)
	}
	if filter.Status != nil {
		query = query.Where("estado = ?", filter.Status.String())
	}
	// Date bounds compare against the date portion of the timestamp, inclusive.
	if filter.From != nil {
		query = query.Where("DATE(fecha_entrega) >= ?", utils.FormatDate(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("DATE(fecha_entrega) <= ?", utils.FormatDate(*filter.To))
	}
	return query
}

func (r *DeliveryRepositoryImpl) Update(ctx context.Context, d *delivery.Delivery) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.DeliveryModel{}).
		Where("id = ?", d.ID()).
		Updates(map[string]interface{}{
			"estado": d.Status().String(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update delivery", "error", result.Error, "id", d.ID())
		return fmt.Errorf("failed to update delivery: %w", result.Error)
	}

	r.logger.Infow("delivery updated", "id", d.ID(), "estado", d.Status().String())
	return nil
}

func (r *DeliveryRepositoryImpl) ExistsForWorker(ctx context.Context, rut, benefitCode, periodCode string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.DeliveryModel{}).
		Where("rut = ? AND beneficio_cod = ? AND periodo_cod = ?", rut, benefitCode, periodCode).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check delivery existence",
			"error", err,
			"rut", rut,
			"beneficio", benefitCode,
			"periodo", periodCode)
		return false, fmt.Errorf("failed to check delivery existence: %w", err)
	}

	return count > 0, nil
}

// benefitReportRow is the scan target for the aggregation query.
type benefitReportRow struct {
	PeriodoCod   string `gorm:"column:periodo_cod"`
	BeneficioCod string `gorm:"column:beneficio_cod"`
	Total        int64  `gorm:"column:total"`
	Entregados   int64  `gorm:"column:entregados"`
	Pendientes   int64  `gorm:"column:pendientes"`
	Rechazados   int64  `gorm:"column:rechazados"`
}

func (r *DeliveryRepositoryImpl) CountByBenefit(ctx context.Context, periodCode string) ([]delivery.BenefitReportRow, error) {
	var rows []benefitReportRow
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.DeliveryModel{}).
		Select(`periodo_cod,
			beneficio_cod,
			COUNT(*) AS total,
			SUM(CASE WHEN estado = ? THEN 1 ELSE 0 END) AS entregados,
			SUM(CASE WHEN estado = ? THEN 1 ELSE 0 END) AS pendientes,
			SUM(CASE WHEN estado = ? THEN 1 ELSE 0 END) AS rechazados`,
			delivery.StatusEntregado.String(),
			delivery.StatusPendiente.String(),
			delivery.StatusCancelado.String()).
		Where("periodo_cod = ?", periodCode).
		Group("periodo_cod, beneficio_cod").
		Order("beneficio_cod ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to aggregate deliveries by benefit", "error", err, "periodo", periodCode)
		return nil, fmt.Errorf("failed to aggregate deliveries by benefit: %w", err)
	}

	report := make([]delivery.BenefitReportRow, 0, len(rows))
	for _, row := range rows {
		report = append(report, delivery.BenefitReportRow{
			PeriodCode:  row.PeriodoCod,
			BenefitCode: row.BeneficioCod,
			Total:       row.Total,
			Delivered:   row.Entregados,
			Pending:     row.Pendientes,
			Rejected:    row.Rechazados,
		})
	}
	return report, nil
}

func deliveryToModel(d *delivery.Delivery) *models.DeliveryModel {
	return &models.DeliveryModel{
		ID:           d.ID(),
		Rut:          d.RUT(),
		BeneficioCod: d.BenefitCode(),
		PeriodoCod:   d.PeriodCode(),
		FechaEntrega: d.DeliveredAt(),
		Estado:       d.Status().String(),
	}
}

func deliveryToEntity(model *models.DeliveryModel) *delivery.Delivery {
	return delivery.ReconstructDelivery(
		model.ID,
		model.Rut,
		model.BeneficioCod,
		model.PeriodoCod,
		model.FechaEntrega,
		delivery.Status(model.Estado),
	)
}
