package usecases

import (
	"context"
	"fmt"

	"entregas/internal/application/delivery/dto"
	"entregas/internal/domain/delivery"
	"entregas/internal/domain/worker"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
)

type GetDeliveryQuery struct {
	ID uint
}

type GetDeliveryUseCase struct {
	deliveryRepo delivery.Repository
	workerRepo   worker.Repository
	logger       logger.Interface
}

func NewGetDeliveryUseCase(deliveryRepo delivery.Repository, workerRepo worker.Repository, logger logger.Interface) *GetDeliveryUseCase {
	return &GetDeliveryUseCase{
		deliveryRepo: deliveryRepo,
		workerRepo:   workerRepo,
		logger:       logger,
	}
}

func (uc *GetDeliveryUseCase) Execute(ctx context.Context, query GetDeliveryQuery) (*dto.DeliveryDetailDTO, error) {
	d, err := uc.deliveryRepo.GetByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to load delivery", "error", err, "id", query.ID)
		return nil, fmt.Errorf("failed to load delivery: %w", err)
	}
	if d == nil {
		return nil, errors.NewNotFoundError("Entrega no encontrada")
	}

	w, err := uc.workerRepo.GetByRUT(ctx, d.RUT())
	if err != nil {
		uc.logger.Errorw("failed to load worker", "error", err, "rut", d.RUT())
		return nil, fmt.Errorf("failed to load worker: %w", err)
	}

	detail := dto.DetailFromDelivery(d, w)
	return &detail, nil
}
