package usecases

import (
	"context"
	"fmt"
	"strings"

	"entregas/internal/application/delivery/dto"
	"entregas/internal/domain/delivery"
	"entregas/internal/domain/worker"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
	"entregas/internal/shared/utils"
)

type ListDeliveriesQuery struct {
	RUT         string
	BenefitCode string
	PeriodCode  string
	Status      string
	From        string // YYYY-MM-DD, inclusive
	To          string // YYYY-MM-DD, inclusive
	Page        int
	Size        int
}

type ListDeliveriesResult struct {
	Items []dto.DeliveryDTO
	Total int64
	Page  int
	Size  int
}

type ListDeliveriesUseCase struct {
	deliveryRepo delivery.Repository
	workerRepo   worker.Repository
	logger       logger.Interface
}

func NewListDeliveriesUseCase(deliveryRepo delivery.Repository, workerRepo worker.Repository, logger logger.Interface) *ListDeliveriesUseCase {
	return &ListDeliveriesUseCase{
		deliveryRepo: deliveryRepo,
		workerRepo:   workerRepo,
		logger:       logger,
	}
}

func (uc *ListDeliveriesUseCase) Execute(ctx context.Context, query ListDeliveriesQuery) (*ListDeliveriesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.Size)

	filter := delivery.Filter{
		RUT:         strings.TrimSpace(query.RUT),
		BenefitCode: strings.TrimSpace(query.BenefitCode),
		PeriodCode:  strings.TrimSpace(query.PeriodCode),
		Page:        pagination.Page,
		Size:        pagination.Size,
	}

	// The status filter is uppercased but not validated; an unknown value
	// simply matches nothing.
	if s := strings.ToUpper(strings.TrimSpace(query.Status)); s != "" {
		status := delivery.Status(s)
		filter.Status = &status
	}

	if from := strings.TrimSpace(query.From); from != "" {
		t, err := utils.ParseDate(from)
		if err != nil {
			return nil, errors.NewValidationError("Formato de fecha inválido. Use YYYY-MM-DD")
		}
		filter.From = &t
	}
	if to := strings.TrimSpace(query.To); to != "" {
		t, err := utils.ParseDate(to)
		if err != nil {
			return nil, errors.NewValidationError("Formato de fecha inválido. Use YYYY-MM-DD")
		}
		filter.To = &t
	}

	deliveries, total, err := uc.deliveryRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list deliveries", "error", err)
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}

	workers, err := uc.resolveWorkers(ctx, deliveries)
	if err != nil {
		return nil, err
	}

	return &ListDeliveriesResult{
		Items: dto.FromDeliveries(deliveries, workers),
		Total: total,
		Page:  pagination.Page,
		Size:  pagination.Size,
	}, nil
}

// resolveWorkers batch-loads the workers referenced by the page, keyed by RUT.
func (uc *ListDeliveriesUseCase) resolveWorkers(ctx context.Context, deliveries []*delivery.Delivery) (map[string]*worker.Worker, error) {
	if len(deliveries) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(deliveries))
	ruts := make([]string, 0, len(deliveries))
	for _, d := range deliveries {
		if _, ok := seen[d.RUT()]; ok {
			continue
		}
		seen[d.RUT()] = struct{}{}
		ruts = append(ruts, d.RUT())
	}

	workers, err := uc.workerRepo.ListByRUTs(ctx, ruts)
	if err != nil {
		uc.logger.Errorw("failed to load workers for listing", "error", err)
		return nil, fmt.Errorf("failed to load workers: %w", err)
	}

	byRUT := make(map[string]*worker.Worker, len(workers))
	for _, w := range workers {
		byRUT[w.RUT()] = w
	}
	return byRUT, nil
}
