// Package catalog provides application services for the benefit and period
// catalogs. Both are thin CRUD layers over the repositories; the delivery
// lifecycle is where the real rules live.
package catalog

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"entregas/internal/domain/catalog"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
)

type BenefitService struct {
	repo   catalog.BenefitRepository
	logger logger.Interface
}

func NewBenefitService(repo catalog.BenefitRepository, logger logger.Interface) *BenefitService {
	return &BenefitService{
		repo:   repo,
		logger: logger,
	}
}

// UpdateBenefitInput carries the optional patch fields; nil means unchanged.
type UpdateBenefitInput struct {
	Name        *string
	Description *string
	Active      *bool
}

func (s *BenefitService) Create(ctx context.Context, code, name string) (*catalog.Benefit, error) {
	if strings.TrimSpace(code) == "" || strings.TrimSpace(name) == "" {
		return nil, errors.NewValidationError("codigo y nombre_beneficio son obligatorios")
	}

	benefit, err := catalog.NewBenefit(code, name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, benefit); err != nil {
		return nil, err
	}
	return benefit, nil
}

func (s *BenefitService) Get(ctx context.Context, code string) (*catalog.Benefit, error) {
	benefit, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load benefit: %w", err)
	}
	if benefit == nil {
		return nil, errors.NewNotFoundError("Beneficio no encontrado")
	}
	return benefit, nil
}

func (s *BenefitService) List(ctx context.Context) ([]*catalog.Benefit, error) {
	return s.repo.List(ctx)
}

func (s *BenefitService) Update(ctx context.Context, code string, input UpdateBenefitInput) error {
	benefit, err := s.Get(ctx, code)
	if err != nil {
		return err
	}

	if input.Name != nil {
		if err := benefit.Rename(*input.Name); err != nil {
			if stderrors.Is(err, catalog.ErrNameRequired) {
				return errors.NewValidationError("nombre_beneficio no puede estar vacío")
			}
			return err
		}
	}
	if input.Description != nil {
		benefit.SetDescription(*input.Description)
	}
	if input.Active != nil {
		benefit.SetActive(*input.Active)
	}

	return s.repo.Update(ctx, benefit)
}

func (s *BenefitService) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}
