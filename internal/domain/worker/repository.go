package worker

import "context"

// Repository defines persistence for worker identities.
type Repository interface {
	// GetByRUT returns the worker or (nil, nil) when no row matches.
	GetByRUT(ctx context.Context, rut string) (*Worker, error)
	// ListByRUTs returns the workers matching the given RUTs; unknown RUTs
	// are simply absent from the result.
	ListByRUTs(ctx context.Context, ruts []string) ([]*Worker, error)
	Create(ctx context.Context, worker *Worker) error
}
