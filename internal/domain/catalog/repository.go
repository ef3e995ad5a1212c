package catalog

import "context"

// BenefitRepository defines persistence for the benefit catalog.
// Get methods return (nil, nil) when no row matches.
type BenefitRepository interface {
	Create(ctx context.Context, benefit *Benefit) error
	GetByCode(ctx context.Context, code string) (*Benefit, error)
	// List returns all benefits ordered by display name ascending.
	List(ctx context.Context) ([]*Benefit, error)
	Update(ctx context.Context, benefit *Benefit) error
	Delete(ctx context.Context, code string) error
}

// PeriodRepository defines persistence for the period catalog.
type PeriodRepository interface {
	Create(ctx context.Context, period *Period) error
	GetByCode(ctx context.Context, code string) (*Period, error)
	// List returns all periods ordered by start date descending.
	List(ctx context.Context) ([]*Period, error)
	Update(ctx context.Context, period *Period) error
	Delete(ctx context.Context, code string) error
}
