package catalog

import (
	"strings"
	"time"
)

// Period represents a dated window during which deliveries are tracked.
// The end date may never precede the start date.
type Period struct {
	code      string
	name      string
	startDate time.Time
	endDate   time.Time
}

// NewPeriod creates a period, enforcing the date invariant.
func NewPeriod(code, name string, startDate, endDate time.Time) (*Period, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, ErrCodeRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, ErrDatesRequired
	}
	if endDate.Before(startDate) {
		return nil, ErrEndBeforeStart
	}

	return &Period{
		code:      code,
		name:      name,
		startDate: startDate,
		endDate:   endDate,
	}, nil
}

// ReconstructPeriod rebuilds a period from persisted state.
func ReconstructPeriod(code, name string, startDate, endDate time.Time) *Period {
	return &Period{
		code:      code,
		name:      name,
		startDate: startDate,
		endDate:   endDate,
	}
}

func (p *Period) Code() string         { return p.code }
func (p *Period) Name() string         { return p.name }
func (p *Period) StartDate() time.Time { return p.startDate }
func (p *Period) EndDate() time.Time   { return p.endDate }

// Rename changes the display name.
func (p *Period) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	p.name = name
	return nil
}

// Reschedule replaces the period window. The invariant is checked against
// the final pair, so either date may be moved as long as the window stays valid.
func (p *Period) Reschedule(startDate, endDate time.Time) error {
	if startDate.IsZero() || endDate.IsZero() {
		return ErrDatesRequired
	}
	if endDate.Before(startDate) {
		return ErrEndBeforeStart
	}
	p.startDate = startDate
	p.endDate = endDate
	return nil
}
