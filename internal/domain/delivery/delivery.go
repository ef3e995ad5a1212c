// Package delivery holds the central entity of the system: a single instance
// of a worker receiving (or being queued for) a benefit within a period.
// A worker may receive a given benefit at most once per period; the
// (rut, benefit code, period code) triple is unique.
package delivery

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrFieldsRequired is returned when a required reference is empty
	ErrFieldsRequired = errors.New("rut, benefit code and period code are required")

	// ErrIDAlreadySet is returned when the store-assigned id would be overwritten
	ErrIDAlreadySet = errors.New("delivery id already set")
)

// Delivery links a worker, a benefit and a period with a lifecycle status.
type Delivery struct {
	id          uint
	rut         string
	benefitCode string
	periodCode  string
	deliveredAt time.Time
	status      Status
}

// NewDelivery creates a delivery in the initial PENDIENTE status.
// The surrogate id is assigned by the store on insert.
func NewDelivery(rut, benefitCode, periodCode string, deliveredAt time.Time) (*Delivery, error) {
	rut = strings.TrimSpace(rut)
	benefitCode = strings.TrimSpace(benefitCode)
	periodCode = strings.TrimSpace(periodCode)
	if rut == "" || benefitCode == "" || periodCode == "" {
		return nil, ErrFieldsRequired
	}
	if deliveredAt.IsZero() {
		deliveredAt = time.Now().UTC()
	}

	return &Delivery{
		rut:         rut,
		benefitCode: benefitCode,
		periodCode:  periodCode,
		deliveredAt: deliveredAt,
		status:      StatusPendiente,
	}, nil
}

// ReconstructDelivery rebuilds a delivery from persisted state.
func ReconstructDelivery(id uint, rut, benefitCode, periodCode string, deliveredAt time.Time, status Status) *Delivery {
	return &Delivery{
		id:          id,
		rut:         rut,
		benefitCode: benefitCode,
		periodCode:  periodCode,
		deliveredAt: deliveredAt,
		status:      status,
	}
}

func (d *Delivery) ID() uint               { return d.id }
func (d *Delivery) RUT() string            { return d.rut }
func (d *Delivery) BenefitCode() string    { return d.benefitCode }
func (d *Delivery) PeriodCode() string     { return d.periodCode }
func (d *Delivery) DeliveredAt() time.Time { return d.deliveredAt }
func (d *Delivery) Status() Status         { return d.status }

// SetID records the store-assigned id after insert.
func (d *Delivery) SetID(id uint) error {
	if d.id != 0 {
		return ErrIDAlreadySet
	}
	d.id = id
	return nil
}

// ChangeStatus replaces the lifecycle status. Any value may follow any other.
func (d *Delivery) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	d.status = status
	return nil
}
