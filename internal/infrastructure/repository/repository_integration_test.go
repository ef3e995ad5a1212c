package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"entregas/internal/domain/audit"
	"entregas/internal/domain/catalog"
	"entregas/internal/domain/delivery"
	"entregas/internal/domain/worker"
	"entregas/internal/infrastructure/persistence/models"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.BenefitModel{},
		&models.PeriodModel{},
		&models.WorkerModel{},
		&models.DeliveryModel{},
		&models.AuditEntryModel{},
	)
	require.NoError(t, err)

	return db
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mustCreateDelivery(t *testing.T, repo delivery.Repository, rut, benefitCode, periodCode string, deliveredAt time.Time, status delivery.Status) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(rut, benefitCode, periodCode, deliveredAt)
	require.NoError(t, err)
	require.NoError(t, d.ChangeStatus(status))
	require.NoError(t, repo.Create(context.Background(), d))
	return d
}

func TestBenefitRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBenefitRepository(db, testLogger())
	ctx := context.Background()

	benefit, err := catalog.NewBenefit("BECA1", "Beca Alimentación")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, benefit))

	t.Run("duplicate code maps to conflict", func(t *testing.T) {
		dup, err := catalog.NewBenefit("BECA1", "Otra")
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("get returns stored fields", func(t *testing.T) {
		found, err := repo.GetByCode(ctx, "BECA1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Beca Alimentación", found.Name())
		assert.True(t, found.Active())
	})

	t.Run("get miss returns nil without error", func(t *testing.T) {
		found, err := repo.GetByCode(ctx, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("list ordered by name", func(t *testing.T) {
		second, err := catalog.NewBenefit("ZETA", "Aporte Escolar")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, second))

		benefits, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, benefits, 2)
		assert.Equal(t, "Aporte Escolar", benefits[0].Name())
		assert.Equal(t, "Beca Alimentación", benefits[1].Name())
	})

	t.Run("update persists changes", func(t *testing.T) {
		found, err := repo.GetByCode(ctx, "BECA1")
		require.NoError(t, err)
		require.NoError(t, found.Rename("Beca Renovada"))
		found.SetActive(false)
		require.NoError(t, repo.Update(ctx, found))

		reloaded, err := repo.GetByCode(ctx, "BECA1")
		require.NoError(t, err)
		assert.Equal(t, "Beca Renovada", reloaded.Name())
		assert.False(t, reloaded.Active())
	})

	t.Run("delete missing row maps to not found", func(t *testing.T) {
		err := repo.Delete(ctx, "NOPE")
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestPeriodRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPeriodRepository(db, testLogger())
	ctx := context.Background()

	mkPeriod := func(code string, start, end time.Time) *catalog.Period {
		p, err := catalog.NewPeriod(code, "Periodo "+code, start, end)
		require.NoError(t, err)
		return p
	}

	p1 := mkPeriod("2023-A",
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC))
	p2 := mkPeriod("2024-A",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, p1))
	require.NoError(t, repo.Create(ctx, p2))

	t.Run("duplicate code maps to conflict", func(t *testing.T) {
		err := repo.Create(ctx, mkPeriod("2024-A",
			time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("list ordered by start date descending", func(t *testing.T) {
		periods, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, periods, 2)
		assert.Equal(t, "2024-A", periods[0].Code())
		assert.Equal(t, "2023-A", periods[1].Code())
	})

	t.Run("get round-trips dates", func(t *testing.T) {
		found, err := repo.GetByCode(ctx, "2024-A")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "2024-01-01", found.StartDate().Format("2006-01-02"))
		assert.Equal(t, "2024-06-30", found.EndDate().Format("2006-01-02"))
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "2023-A"))
		found, err := repo.GetByCode(ctx, "2023-A")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestWorkerRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkerRepository(db, testLogger())
	ctx := context.Background()

	email := "ana@example.com"
	w, err := worker.NewWorker("12345678-5", "Ana", "Pérez", &email)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, w))

	found, err := repo.GetByRUT(ctx, "12345678-5")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ana", found.FirstName())
	require.NotNil(t, found.Email())
	assert.Equal(t, "ana@example.com", *found.Email())

	missing, err := repo.GetByRUT(ctx, "11111111-1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	other, err := worker.NewWorker("87654321-4", "Luis", "Soto", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, other))

	// Batch lookup skips unknown RUTs.
	batch, err := repo.ListByRUTs(ctx, []string{"12345678-5", "87654321-4", "11111111-1"})
	require.NoError(t, err)
	require.Len(t, batch, 2)

	empty, err := repo.ListByRUTs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeliveryRepository_UniqueTriple(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDeliveryRepository(db, testLogger())

	mustCreateDelivery(t, repo, "12345678-5", "BECA1", "2024-A", time.Now().UTC(), delivery.StatusPendiente)

	dup, err := delivery.NewDelivery("12345678-5", "BECA1", "2024-A", time.Now().UTC())
	require.NoError(t, err)
	err = repo.Create(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	// Same worker, different benefit is fine.
	other, err := delivery.NewDelivery("12345678-5", "BECA2", "2024-A", time.Now().UTC())
	require.NoError(t, err)
	assert.NoError(t, repo.Create(context.Background(), other))
}

func TestDeliveryRepository_ListFiltersAndPaging(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDeliveryRepository(db, testLogger())
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mustCreateDelivery(t, repo, "rut-1", "BECA1", "2024-A", base, delivery.StatusPendiente)
	mustCreateDelivery(t, repo, "rut-2", "BECA1", "2024-A", base.AddDate(0, 0, 1), delivery.StatusEntregado)
	mustCreateDelivery(t, repo, "rut-3", "BECA2", "2024-A", base.AddDate(0, 0, 2), delivery.StatusEntregado)
	mustCreateDelivery(t, repo, "rut-1", "BECA1", "2024-B", base.AddDate(0, 0, 3), delivery.StatusCancelado)

	t.Run("no filter returns all newest first", func(t *testing.T) {
		deliveries, total, err := repo.List(ctx, delivery.Filter{Page: 1, Size: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, deliveries, 4)
		assert.Equal(t, "2024-B", deliveries[0].PeriodCode())
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		status := delivery.StatusEntregado
		deliveries, total, err := repo.List(ctx, delivery.Filter{
			BenefitCode: "BECA1",
			Status:      &status,
			Page:        1,
			Size:        20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, deliveries, 1)
		assert.Equal(t, "rut-2", deliveries[0].RUT())
	})

	t.Run("date range is inclusive on the date portion", func(t *testing.T) {
		from := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
		_, total, err := repo.List(ctx, delivery.Filter{From: &from, To: &to, Page: 1, Size: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("paging windows the result but not the total", func(t *testing.T) {
		deliveries, total, err := repo.List(ctx, delivery.Filter{Page: 2, Size: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, deliveries, 1)
	})

	t.Run("rut filter", func(t *testing.T) {
		_, total, err := repo.List(ctx, delivery.Filter{RUT: "rut-1", Page: 1, Size: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})
}

func TestDeliveryRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDeliveryRepository(db, testLogger())
	ctx := context.Background()

	d := mustCreateDelivery(t, repo, "rut-1", "BECA1", "2024-A", time.Now().UTC(), delivery.StatusPendiente)

	require.NoError(t, d.ChangeStatus(delivery.StatusEntregado))
	require.NoError(t, repo.Update(ctx, d))

	reloaded, err := repo.GetByID(ctx, d.ID())
	require.NoError(t, err)
	assert.Equal(t, delivery.StatusEntregado, reloaded.Status())
}

func TestDeliveryRepository_CountByBenefit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDeliveryRepository(db, testLogger())
	ctx := context.Background()

	now := time.Now().UTC()
	mustCreateDelivery(t, repo, "rut-1", "BECA1", "2024-A", now, delivery.StatusEntregado)
	mustCreateDelivery(t, repo, "rut-2", "BECA1", "2024-A", now, delivery.StatusPendiente)
	mustCreateDelivery(t, repo, "rut-3", "BECA1", "2024-A", now, delivery.StatusCancelado)
	mustCreateDelivery(t, repo, "rut-4", "BECA1", "2024-A", now, delivery.StatusAnulado)
	mustCreateDelivery(t, repo, "rut-1", "BECA2", "2024-A", now, delivery.StatusEntregado)
	mustCreateDelivery(t, repo, "rut-1", "BECA1", "2024-B", now, delivery.StatusEntregado)

	rows, err := repo.CountByBenefit(ctx, "2024-A")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "BECA1", rows[0].BenefitCode)
	assert.Equal(t, int64(4), rows[0].Total)
	assert.Equal(t, int64(1), rows[0].Delivered)
	assert.Equal(t, int64(1), rows[0].Pending)
	assert.Equal(t, int64(1), rows[0].Rejected)

	assert.Equal(t, "BECA2", rows[1].BenefitCode)
	assert.Equal(t, int64(1), rows[1].Total)
}

func TestAuditRepository_Append(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db, testLogger())
	ctx := context.Background()

	detail := "ZmlybWE="
	entry, err := audit.NewEntry("entregas", "1", "FIRMA", nil, &detail)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, entry))
	assert.NotZero(t, entry.ID())

	// Entries accumulate; nothing is overwritten.
	second, err := audit.NewEntry("entregas", "1", "FIRMA", nil, &detail)
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, second))

	var count int64
	require.NoError(t, db.Model(&models.AuditEntryModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
