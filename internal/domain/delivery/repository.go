package delivery

import (
	"context"
	"time"
)

// Filter narrows a delivery listing. Zero values mean "no filter";
// all set filters combine with logical AND. From and To are inclusive and
// compared against the date portion of the delivery timestamp.
type Filter struct {
	RUT         string
	BenefitCode string
	PeriodCode  string
	Status      *Status
	From        *time.Time
	To          *time.Time
	Page        int
	Size        int
}

// BenefitReportRow is one aggregation group of the deliveries-by-benefit
// report: counts of deliveries for a benefit within the requested period.
// ANULADO rows are counted only in Total.
type BenefitReportRow struct {
	PeriodCode  string
	BenefitCode string
	Total       int64
	Delivered   int64
	Pending     int64
	Rejected    int64
}

// Repository defines persistence for deliveries.
type Repository interface {
	// Create inserts the delivery and assigns its id. The store's unique
	// index on (rut, benefit code, period code) is the authoritative
	// duplicate guard; a violation surfaces as a conflict error.
	Create(ctx context.Context, d *Delivery) error

	// GetByID returns the delivery or (nil, nil) when no row matches.
	GetByID(ctx context.Context, id uint) (*Delivery, error)

	// List returns the matching page ordered by delivery timestamp
	// descending, plus the total count of matching rows.
	List(ctx context.Context, filter Filter) ([]*Delivery, int64, error)

	Update(ctx context.Context, d *Delivery) error

	// ExistsForWorker reports whether a delivery already exists for the
	// (rut, benefit code, period code) triple. This is a fast-path check;
	// the unique index remains the final word under concurrency.
	ExistsForWorker(ctx context.Context, rut, benefitCode, periodCode string) (bool, error)

	// CountByBenefit aggregates deliveries of a period grouped by benefit
	// code, ordered by benefit code ascending.
	CountByBenefit(ctx context.Context, periodCode string) ([]BenefitReportRow, error)
}
