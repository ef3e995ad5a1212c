package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"entregas/internal/domain/worker"
	"entregas/internal/infrastructure/persistence/models"
	"entregas/internal/shared/db"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
)

type WorkerRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewWorkerRepository(db *gorm.DB, logger logger.Interface) worker.Repository {
	return &WorkerRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *WorkerRepositoryImpl) GetByRUT(ctx context.Context, rut string) (*worker.Worker, error) {
	var model models.WorkerModel
	if err := db.GetTxFromContext(ctx, r.db).Where("rut = ?", rut).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get worker by rut", "error", err, "rut", rut)
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	return workerToEntity(&model), nil
}

func (r *WorkerRepositoryImpl) ListByRUTs(ctx context.Context, ruts []string) ([]*worker.Worker, error) {
	if len(ruts) == 0 {
		return nil, nil
	}

	var workerModels []*models.WorkerModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("rut IN ?", ruts).
		Find(&workerModels).Error
	if err != nil {
		r.logger.Errorw("failed to list workers by rut", "error", err)
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	workers := make([]*worker.Worker, 0, len(workerModels))
	for _, model := range workerModels {
		workers = append(workers, workerToEntity(model))
	}
	return workers, nil
}

func (r *WorkerRepositoryImpl) Create(ctx context.Context, w *worker.Worker) error {
	model := workerToModel(w)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("Ya existe un trabajador con ese rut")
		}
		r.logger.Errorw("failed to create worker", "error", err, "rut", w.RUT())
		return fmt.Errorf("failed to create worker: %w", err)
	}

	r.logger.Infow("worker created", "rut", w.RUT())
	return nil
}

func workerToModel(w *worker.Worker) *models.WorkerModel {
	return &models.WorkerModel{
		Rut:            w.RUT(),
		PrimerNombre:   w.FirstName(),
		PrimerApellido: w.Surname(),
		Email:          w.Email(),
	}
}

func workerToEntity(model *models.WorkerModel) *worker.Worker {
	return worker.ReconstructWorker(
		model.Rut,
		model.PrimerNombre,
		model.PrimerApellido,
		model.Email,
	)
}
