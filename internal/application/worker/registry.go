// Package worker provides the application-level worker registry.
package worker

import (
	"context"
	"fmt"

	"entregas/internal/domain/worker"
	"entregas/internal/shared/logger"
)

// Registry provisions worker identities on demand. A worker is created the
// first time a delivery references an unknown RUT; existing workers are
// returned untouched, even if the submitted names differ.
type Registry struct {
	repo   worker.Repository
	logger logger.Interface
}

func NewRegistry(repo worker.Repository, logger logger.Interface) *Registry {
	return &Registry{
		repo:   repo,
		logger: logger,
	}
}

// EnsureWorker returns the worker for rut, creating it when missing.
// Callers that need the ensure+create sequence to be atomic run it inside
// a transaction context.
func (r *Registry) EnsureWorker(ctx context.Context, rut, firstName, surname string, email *string) (*worker.Worker, error) {
	existing, err := r.repo.GetByRUT(ctx, rut)
	if err != nil {
		return nil, fmt.Errorf("failed to look up worker: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	created, err := worker.NewWorker(rut, firstName, surname, email)
	if err != nil {
		return nil, err
	}
	if err := r.repo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	r.logger.Infow("worker provisioned", "rut", rut)
	return created, nil
}
