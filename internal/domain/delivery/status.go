package delivery

import (
	"errors"
	"strings"
)

// ErrInvalidStatus is returned when a status is outside the enumerated set
var ErrInvalidStatus = errors.New("invalid delivery status")

// Status is the lifecycle state of a delivery. Any status may replace any
// other; there is no enforced transition graph.
type Status string

const (
	StatusPendiente Status = "PENDIENTE"
	StatusEntregado Status = "ENTREGADO"
	StatusCancelado Status = "CANCELADO"
	StatusAnulado   Status = "ANULADO"
)

// ParseStatus normalizes a wire status (trimmed, upper-cased) and rejects
// values outside the enumerated set.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// IsValid reports whether the status is one of the enumerated values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPendiente, StatusEntregado, StatusCancelado, StatusAnulado:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
