package catalog

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"entregas/internal/domain/catalog"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
	"entregas/internal/shared/utils"
)

type PeriodService struct {
	repo   catalog.PeriodRepository
	logger logger.Interface
}

func NewPeriodService(repo catalog.PeriodRepository, logger logger.Interface) *PeriodService {
	return &PeriodService{
		repo:   repo,
		logger: logger,
	}
}

// CreatePeriodInput carries the wire fields of a period creation. Dates
// arrive as YYYY-MM-DD strings.
type CreatePeriodInput struct {
	Code      string
	Name      string
	StartDate string
	EndDate   string
}

// UpdatePeriodInput carries the optional patch fields; nil means unchanged.
type UpdatePeriodInput struct {
	Name      *string
	StartDate *string
	EndDate   *string
}

func (s *PeriodService) Create(ctx context.Context, input CreatePeriodInput) (*catalog.Period, error) {
	if strings.TrimSpace(input.Code) == "" || strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.StartDate) == "" || strings.TrimSpace(input.EndDate) == "" {
		return nil, errors.NewValidationError("codigo, nombre_periodo, fecha_inicio y fecha_final son obligatorios")
	}

	startDate, err := utils.ParseDate(input.StartDate)
	if err != nil {
		return nil, errors.NewValidationError("Formato de fecha inválido. Use YYYY-MM-DD")
	}
	endDate, err := utils.ParseDate(input.EndDate)
	if err != nil {
		return nil, errors.NewValidationError("Formato de fecha inválido. Use YYYY-MM-DD")
	}

	period, err := catalog.NewPeriod(input.Code, input.Name, startDate, endDate)
	if err != nil {
		return nil, mapPeriodDomainError(err)
	}

	if err := s.repo.Create(ctx, period); err != nil {
		return nil, err
	}
	return period, nil
}

func (s *PeriodService) Get(ctx context.Context, code string) (*catalog.Period, error) {
	period, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load period: %w", err)
	}
	if period == nil {
		return nil, errors.NewNotFoundError("Periodo no encontrado")
	}
	return period, nil
}

func (s *PeriodService) List(ctx context.Context) ([]*catalog.Period, error) {
	return s.repo.List(ctx)
}

func (s *PeriodService) Update(ctx context.Context, code string, input UpdatePeriodInput) error {
	period, err := s.Get(ctx, code)
	if err != nil {
		return err
	}

	if input.Name != nil {
		if err := period.Rename(*input.Name); err != nil {
			if stderrors.Is(err, catalog.ErrNameRequired) {
				return errors.NewValidationError("nombre_periodo no puede estar vacío")
			}
			return err
		}
	}

	// The date invariant is checked against the final pair, so a partial
	// update may move either end of the window.
	startDate := period.StartDate()
	endDate := period.EndDate()
	if input.StartDate != nil {
		if startDate, err = utils.ParseDate(*input.StartDate); err != nil {
			return errors.NewValidationError("Formato fecha_inicio inválido")
		}
	}
	if input.EndDate != nil {
		if endDate, err = utils.ParseDate(*input.EndDate); err != nil {
			return errors.NewValidationError("Formato fecha_final inválido")
		}
	}
	if input.StartDate != nil || input.EndDate != nil {
		if err := period.Reschedule(startDate, endDate); err != nil {
			return mapPeriodDomainError(err)
		}
	}

	return s.repo.Update(ctx, period)
}

func (s *PeriodService) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}

func mapPeriodDomainError(err error) error {
	switch {
	case stderrors.Is(err, catalog.ErrEndBeforeStart):
		return errors.NewValidationError("fecha_final no puede ser anterior a fecha_inicio")
	case stderrors.Is(err, catalog.ErrDatesRequired):
		return errors.NewValidationError("fecha_inicio y fecha_final son obligatorios")
	case stderrors.Is(err, catalog.ErrCodeRequired), stderrors.Is(err, catalog.ErrNameRequired):
		return errors.NewValidationError(err.Error())
	default:
		return err
	}
}
