package usecases

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"entregas/internal/domain/audit"
	"entregas/internal/domain/catalog"
	"entregas/internal/domain/delivery"
	"entregas/internal/domain/worker"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// mockDeliveryRepository is an in-memory delivery.Repository that enforces
// the unique triple the same way the store's index does.
type mockDeliveryRepository struct {
	mu         sync.Mutex
	nextID     uint
	deliveries map[uint]*delivery.Delivery
	createErr  error
}

func newMockDeliveryRepository() *mockDeliveryRepository {
	return &mockDeliveryRepository{
		nextID:     1,
		deliveries: make(map[uint]*delivery.Delivery),
	}
}

func (m *mockDeliveryRepository) Create(ctx context.Context, d *delivery.Delivery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.deliveries {
		if existing.RUT() == d.RUT() && existing.BenefitCode() == d.BenefitCode() && existing.PeriodCode() == d.PeriodCode() {
			return errors.NewConflictError("La persona ya tiene registrada una entrega de ese beneficio en el periodo indicado")
		}
	}
	if err := d.SetID(m.nextID); err != nil {
		return err
	}
	m.nextID++
	m.deliveries[d.ID()] = delivery.ReconstructDelivery(d.ID(), d.RUT(), d.BenefitCode(), d.PeriodCode(), d.DeliveredAt(), d.Status())
	return nil
}

func (m *mockDeliveryRepository) GetByID(ctx context.Context, id uint) (*delivery.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deliveries[id]
	if !ok {
		return nil, nil
	}
	return delivery.ReconstructDelivery(d.ID(), d.RUT(), d.BenefitCode(), d.PeriodCode(), d.DeliveredAt(), d.Status()), nil
}

func (m *mockDeliveryRepository) List(ctx context.Context, filter delivery.Filter) ([]*delivery.Delivery, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*delivery.Delivery
	for _, d := range m.deliveries {
		if filter.RUT != "" && d.RUT() != filter.RUT {
			continue
		}
		if filter.BenefitCode != "" && d.BenefitCode() != filter.BenefitCode {
			continue
		}
		if filter.PeriodCode != "" && d.PeriodCode() != filter.PeriodCode {
			continue
		}
		if filter.Status != nil && d.Status() != *filter.Status {
			continue
		}
		day := d.DeliveredAt().Truncate(24 * time.Hour)
		if filter.From != nil && day.Before(*filter.From) {
			continue
		}
		if filter.To != nil && day.After(*filter.To) {
			continue
		}
		matched = append(matched, d)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].DeliveredAt().After(matched[j].DeliveredAt())
	})

	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.Size
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + filter.Size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.deliveries[d.ID()]; !ok {
		return errors.NewNotFoundError("Entrega no encontrada")
	}
	m.deliveries[d.ID()] = delivery.ReconstructDelivery(d.ID(), d.RUT(), d.BenefitCode(), d.PeriodCode(), d.DeliveredAt(), d.Status())
	return nil
}

func (m *mockDeliveryRepository) ExistsForWorker(ctx context.Context, rut, benefitCode, periodCode string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.deliveries {
		if d.RUT() == rut && d.BenefitCode() == benefitCode && d.PeriodCode() == periodCode {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDeliveryRepository) CountByBenefit(ctx context.Context, periodCode string) ([]delivery.BenefitReportRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	groups := make(map[string]*delivery.BenefitReportRow)
	for _, d := range m.deliveries {
		if d.PeriodCode() != periodCode {
			continue
		}
		row, ok := groups[d.BenefitCode()]
		if !ok {
			row = &delivery.BenefitReportRow{PeriodCode: periodCode, BenefitCode: d.BenefitCode()}
			groups[d.BenefitCode()] = row
		}
		row.Total++
		switch d.Status() {
		case delivery.StatusEntregado:
			row.Delivered++
		case delivery.StatusPendiente:
			row.Pending++
		case delivery.StatusCancelado:
			row.Rejected++
		}
	}

	rows := make([]delivery.BenefitReportRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return strings.Compare(rows[i].BenefitCode, rows[j].BenefitCode) < 0
	})
	return rows, nil
}

type mockBenefitRepository struct {
	benefits map[string]*catalog.Benefit
}

func newMockBenefitRepository() *mockBenefitRepository {
	return &mockBenefitRepository{benefits: make(map[string]*catalog.Benefit)}
}

func (m *mockBenefitRepository) Create(ctx context.Context, b *catalog.Benefit) error {
	if _, ok := m.benefits[b.Code()]; ok {
		return errors.NewConflictError("Ya existe un beneficio con ese codigo")
	}
	m.benefits[b.Code()] = b
	return nil
}

func (m *mockBenefitRepository) GetByCode(ctx context.Context, code string) (*catalog.Benefit, error) {
	return m.benefits[code], nil
}

func (m *mockBenefitRepository) List(ctx context.Context) ([]*catalog.Benefit, error) {
	out := make([]*catalog.Benefit, 0, len(m.benefits))
	for _, b := range m.benefits {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (m *mockBenefitRepository) Update(ctx context.Context, b *catalog.Benefit) error {
	if _, ok := m.benefits[b.Code()]; !ok {
		return errors.NewNotFoundError("Beneficio no encontrado")
	}
	m.benefits[b.Code()] = b
	return nil
}

func (m *mockBenefitRepository) Delete(ctx context.Context, code string) error {
	if _, ok := m.benefits[code]; !ok {
		return errors.NewNotFoundError("Beneficio no encontrado")
	}
	delete(m.benefits, code)
	return nil
}

type mockPeriodRepository struct {
	periods map[string]*catalog.Period
}

func newMockPeriodRepository() *mockPeriodRepository {
	return &mockPeriodRepository{periods: make(map[string]*catalog.Period)}
}

func (m *mockPeriodRepository) Create(ctx context.Context, p *catalog.Period) error {
	if _, ok := m.periods[p.Code()]; ok {
		return errors.NewConflictError("Ya existe un periodo con ese codigo")
	}
	m.periods[p.Code()] = p
	return nil
}

func (m *mockPeriodRepository) GetByCode(ctx context.Context, code string) (*catalog.Period, error) {
	return m.periods[code], nil
}

func (m *mockPeriodRepository) List(ctx context.Context) ([]*catalog.Period, error) {
	out := make([]*catalog.Period, 0, len(m.periods))
	for _, p := range m.periods {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate().After(out[j].StartDate()) })
	return out, nil
}

func (m *mockPeriodRepository) Update(ctx context.Context, p *catalog.Period) error {
	if _, ok := m.periods[p.Code()]; !ok {
		return errors.NewNotFoundError("Periodo no encontrado")
	}
	m.periods[p.Code()] = p
	return nil
}

func (m *mockPeriodRepository) Delete(ctx context.Context, code string) error {
	if _, ok := m.periods[code]; !ok {
		return errors.NewNotFoundError("Periodo no encontrado")
	}
	delete(m.periods, code)
	return nil
}

type mockWorkerRepository struct {
	mu      sync.Mutex
	workers map[string]*worker.Worker
	creates int
}

func newMockWorkerRepository() *mockWorkerRepository {
	return &mockWorkerRepository{workers: make(map[string]*worker.Worker)}
}

func (m *mockWorkerRepository) GetByRUT(ctx context.Context, rut string) (*worker.Worker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.workers[rut], nil
}

func (m *mockWorkerRepository) ListByRUTs(ctx context.Context, ruts []string) ([]*worker.Worker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*worker.Worker
	for _, rut := range ruts {
		if w, ok := m.workers[rut]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *mockWorkerRepository) Create(ctx context.Context, w *worker.Worker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workers[w.RUT()] = w
	m.creates++
	return nil
}

type mockAuditRepository struct {
	mu      sync.Mutex
	entries []*audit.Entry
}

func newMockAuditRepository() *mockAuditRepository {
	return &mockAuditRepository{}
}

func (m *mockAuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.SetID(uint(len(m.entries) + 1))
	m.entries = append(m.entries, entry)
	return nil
}

// passthroughTxRunner runs the unit of work directly; mocks already apply
// their writes immediately.
type passthroughTxRunner struct{}

func (passthroughTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
