package models

import (
	"github.com/shopspring/decimal"
)

// DrinkCategory groups drink types
type DrinkCategory string

const (
	// DrinkCategoryBeer covers every beer serving
	DrinkCategoryBeer DrinkCategory = "BEER"

	// DrinkCategoryOther covers mixed drinks and shots
	DrinkCategoryOther DrinkCategory = "OTHER"
)

// IsValid reports whether the category is one of the known values
func (c DrinkCategory) IsValid() bool {
	return c == DrinkCategoryBeer || c == DrinkCategoryOther
}

// DrinkType is an entry of the drink catalog
type DrinkType struct {
	// ID is the unique identifier for the drink type
	ID string

	// Code is the stable catalog code, e.g. "CANA"
	Code string

	// Label is the display name
	Label string

	// Category is the drink category
	Category DrinkCategory

	// UnitVolumeLiters is the volume of one unit; null for drinks measured only in units
	UnitVolumeLiters decimal.NullDecimal

	// UnitPrice is the price of one unit in euros
	UnitPrice decimal.Decimal

	// Active indicates the drink can still be logged
	Active bool
}

// HasLiters reports whether the drink is ranked by liters rather than units
func (d *DrinkType) HasLiters() bool {
	return d.UnitVolumeLiters.Valid
}
