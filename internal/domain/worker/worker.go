// Package worker holds the worker identity entity. Workers are provisioned
// implicitly the first time a delivery references an unknown RUT and are
// never deleted or updated by the delivery flow.
package worker

import (
	"errors"
	"strings"
)

var (
	// ErrRUTRequired is returned when the national identifier is empty
	ErrRUTRequired = errors.New("rut is required")

	// ErrNameRequired is returned when the first name or surname is empty
	ErrNameRequired = errors.New("first name and surname are required")
)

// Worker represents a person eligible to receive benefits, identified by RUT.
type Worker struct {
	rut       string
	firstName string
	surname   string
	email     *string
}

// NewWorker creates a worker record.
func NewWorker(rut, firstName, surname string, email *string) (*Worker, error) {
	rut = strings.TrimSpace(rut)
	firstName = strings.TrimSpace(firstName)
	surname = strings.TrimSpace(surname)
	if rut == "" {
		return nil, ErrRUTRequired
	}
	if firstName == "" || surname == "" {
		return nil, ErrNameRequired
	}

	return &Worker{
		rut:       rut,
		firstName: firstName,
		surname:   surname,
		email:     email,
	}, nil
}

// ReconstructWorker rebuilds a worker from persisted state.
func ReconstructWorker(rut, firstName, surname string, email *string) *Worker {
	return &Worker{
		rut:       rut,
		firstName: firstName,
		surname:   surname,
		email:     email,
	}
}

func (w *Worker) RUT() string       { return w.rut }
func (w *Worker) FirstName() string { return w.firstName }
func (w *Worker) Surname() string   { return w.surname }
func (w *Worker) Email() *string    { return w.email }
