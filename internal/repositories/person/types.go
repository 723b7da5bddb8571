package person

import (
	"errors"

	"github.com/KirkDiggler/cirrosis/internal/models"
)

var (
	// ErrPersonNotFound is returned when a person is not found
	ErrPersonNotFound = errors.New("person not found")

	// ErrNameTaken is returned when another person already uses the name
	ErrNameTaken = errors.New("person name already taken")
)

// SavePersonInput contains parameters for saving a person
type SavePersonInput struct {
	Person *models.Person
}

// GetPersonInput contains parameters for retrieving a person
type GetPersonInput struct {
	PersonID string
}

// GetPersonByNameInput contains parameters for retrieving a person by name
type GetPersonByNameInput struct {
	Name string
}

// ListPersonsInput contains parameters for listing the roster
type ListPersonsInput struct {
	// EligibleOnly restricts the list to active, non-deleted persons
	EligibleOnly bool
}

// ListPersonsOutput contains the roster ordered by name
type ListPersonsOutput struct {
	Persons []*models.Person
}

func validatePerson(p *models.Person) error {
	if p == nil {
		return errors.New("input and person cannot be nil")
	}
	if p.ID == "" {
		return errors.New("person ID cannot be empty")
	}
	if p.Name == "" {
		return errors.New("person name cannot be empty")
	}
	if !p.Status.IsValid() {
		return errors.New("person status is invalid")
	}
	return nil
}
