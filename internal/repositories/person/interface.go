package person

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/cirrosis/internal/repositories/person Repository

import (
	"context"

	"github.com/KirkDiggler/cirrosis/internal/models"
)

// Repository defines the interface for the person roster
type Repository interface {
	// SavePerson persists a person
	SavePerson(ctx context.Context, input *SavePersonInput) error

	// GetPerson retrieves a person by ID
	GetPerson(ctx context.Context, input *GetPersonInput) (*models.Person, error)

	// GetPersonByName retrieves a person by their unique name
	GetPersonByName(ctx context.Context, input *GetPersonByNameInput) (*models.Person, error)

	// ListPersons retrieves the roster ordered by name
	ListPersons(ctx context.Context, input *ListPersonsInput) (*ListPersonsOutput, error)
}
