// Package catalog holds the benefit and period reference entities.
// Both are small administrator-managed catalogs keyed by a short code.
package catalog

import (
	"strings"
	"time"
)

// Benefit represents a welfare program that can be delivered to workers.
type Benefit struct {
	code        string
	name        string
	description string
	active      bool
	createdAt   time.Time
}

// NewBenefit creates a benefit. New benefits start active.
func NewBenefit(code, name string) (*Benefit, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, ErrCodeRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}

	return &Benefit{
		code:      code,
		name:      name,
		active:    true,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructBenefit rebuilds a benefit from persisted state.
func ReconstructBenefit(code, name, description string, active bool, createdAt time.Time) *Benefit {
	return &Benefit{
		code:        code,
		name:        name,
		description: description,
		active:      active,
		createdAt:   createdAt,
	}
}

func (b *Benefit) Code() string         { return b.code }
func (b *Benefit) Name() string         { return b.name }
func (b *Benefit) Description() string  { return b.description }
func (b *Benefit) Active() bool         { return b.active }
func (b *Benefit) CreatedAt() time.Time { return b.createdAt }

// Rename changes the display name.
func (b *Benefit) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	b.name = name
	return nil
}

// SetDescription replaces the optional description.
func (b *Benefit) SetDescription(description string) {
	b.description = description
}

// SetActive flips the active flag.
func (b *Benefit) SetActive(active bool) {
	b.active = active
}
