package drink_type

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/cirrosis/internal/repositories/drink_type Repository

import (
	"context"

	"github.com/KirkDiggler/cirrosis/internal/models"
)

// Repository defines the interface for the drink catalog
type Repository interface {
	// SaveDrinkType persists a drink type
	SaveDrinkType(ctx context.Context, input *SaveDrinkTypeInput) error

	// GetDrinkType retrieves a drink type by ID
	GetDrinkType(ctx context.Context, input *GetDrinkTypeInput) (*models.DrinkType, error)

	// ListDrinkTypes retrieves catalog entries ordered by label
	ListDrinkTypes(ctx context.Context, input *ListDrinkTypesInput) (*ListDrinkTypesOutput, error)
}
