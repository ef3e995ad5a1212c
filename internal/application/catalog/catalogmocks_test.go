package catalog

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"entregas/internal/domain/catalog"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type memBenefitRepo struct {
	benefits map[string]*catalog.Benefit
}

func newMemBenefitRepo() *memBenefitRepo {
	return &memBenefitRepo{benefits: make(map[string]*catalog.Benefit)}
}

func (m *memBenefitRepo) Create(ctx context.Context, b *catalog.Benefit) error {
	if _, ok := m.benefits[b.Code()]; ok {
		return errors.NewConflictError("Ya existe un beneficio con ese codigo")
	}
	m.benefits[b.Code()] = b
	return nil
}

func (m *memBenefitRepo) GetByCode(ctx context.Context, code string) (*catalog.Benefit, error) {
	return m.benefits[code], nil
}

func (m *memBenefitRepo) List(ctx context.Context) ([]*catalog.Benefit, error) {
	out := make([]*catalog.Benefit, 0, len(m.benefits))
	for _, b := range m.benefits {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (m *memBenefitRepo) Update(ctx context.Context, b *catalog.Benefit) error {
	if _, ok := m.benefits[b.Code()]; !ok {
		return errors.NewNotFoundError("Beneficio no encontrado")
	}
	m.benefits[b.Code()] = b
	return nil
}

func (m *memBenefitRepo) Delete(ctx context.Context, code string) error {
	if _, ok := m.benefits[code]; !ok {
		return errors.NewNotFoundError("Beneficio no encontrado")
	}
	delete(m.benefits, code)
	return nil
}

type memPeriodRepo struct {
	periods map[string]*catalog.Period
}

func newMemPeriodRepo() *memPeriodRepo {
	return &memPeriodRepo{periods: make(map[string]*catalog.Period)}
}

func (m *memPeriodRepo) Create(ctx context.Context, p *catalog.Period) error {
	if _, ok := m.periods[p.Code()]; ok {
		return errors.NewConflictError("Ya existe un periodo con ese codigo")
	}
	m.periods[p.Code()] = p
	return nil
}

func (m *memPeriodRepo) GetByCode(ctx context.Context, code string) (*catalog.Period, error) {
	return m.periods[code], nil
}

func (m *memPeriodRepo) List(ctx context.Context) ([]*catalog.Period, error) {
	out := make([]*catalog.Period, 0, len(m.periods))
	for _, p := range m.periods {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate().After(out[j].StartDate()) })
	return out, nil
}

func (m *memPeriodRepo) Update(ctx context.Context, p *catalog.Period) error {
	if _, ok := m.periods[p.Code()]; !ok {
		return errors.NewNotFoundError("Periodo no encontrado")
	}
	m.periods[p.Code()] = p
	return nil
}

func (m *memPeriodRepo) Delete(ctx context.Context, code string) error {
	if _, ok := m.periods[code]; !ok {
		return errors.NewNotFoundError("Periodo no encontrado")
	}
	delete(m.periods, code)
	return nil
}
