package catalog

import "errors"

var (
	// ErrCodeRequired is returned when the entity code is empty
	ErrCodeRequired = errors.New("code is required")

	// ErrNameRequired is returned when the display name is empty
	ErrNameRequired = errors.New("name is required")

	// ErrDatesRequired is returned when a period is missing one of its dates
	ErrDatesRequired = errors.New("start and end dates are required")

	// ErrEndBeforeStart is returned when a period ends before it starts
	ErrEndBeforeStart = errors.New("end date cannot be before start date")
)
