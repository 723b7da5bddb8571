package drink_type

import (
	"errors"

	"github.com/KirkDiggler/cirrosis/internal/models"
)

// ErrDrinkTypeNotFound is returned when a drink type is not found
var ErrDrinkTypeNotFound = errors.New("drink type not found")

// SaveDrinkTypeInput contains parameters for saving a drink type
type SaveDrinkTypeInput struct {
	DrinkType *models.DrinkType
}

// GetDrinkTypeInput contains parameters for retrieving a drink type
type GetDrinkTypeInput struct {
	DrinkTypeID string
}

// ListDrinkTypesInput contains parameters for listing the catalog
type ListDrinkTypesInput struct {
	// Category restricts the list to one category when set
	Category models.DrinkCategory

	// ActiveOnly skips retired drink types
	ActiveOnly bool
}

// ListDrinkTypesOutput contains catalog entries ordered by label
type ListDrinkTypesOutput struct {
	DrinkTypes []*models.DrinkType
}

func validateDrinkType(d *models.DrinkType) error {
	if d == nil {
		return errors.New("input and drink type cannot be nil")
	}
	if d.ID == "" {
		return errors.New("drink type ID cannot be empty")
	}
	if d.Label == "" {
		return errors.New("drink type label cannot be empty")
	}
	if !d.Category.IsValid() {
		return errors.New("drink type category is invalid")
	}
	if d.UnitPrice.IsNegative() {
		return errors.New("drink type price cannot be negative")
	}
	if d.UnitVolumeLiters.Valid && !d.UnitVolumeLiters.Decimal.IsPositive() {
		return errors.New("drink type volume must be positive")
	}
	return nil
}

func matches(d *models.DrinkType, input *ListDrinkTypesInput) bool {
	if input.ActiveOnly && !d.Active {
		return false
	}
	if input.Category != "" && d.Category != input.Category {
		return false
	}
	return true
}
