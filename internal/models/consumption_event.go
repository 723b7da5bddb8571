package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsumptionEvent records that a person drank some units of a drink type on a date
type ConsumptionEvent struct {
	// ID is the unique identifier for the event
	ID string

	// PersonID is the ID of the person who drank
	PersonID string

	// DrinkTypeID is the ID of the drink type
	DrinkTypeID string

	// Quantity is the number of units, always positive
	Quantity int

	// ConsumedAt is the calendar date the drinks were had (midnight UTC)
	ConsumedAt time.Time

	// CreatedAt is when the event was written
	CreatedAt time.Time

	// BeerYear is the beer year the consumption date belongs to
	BeerYear int

	// VolumeLitersTotal is unit volume times quantity; null when the drink has no unit volume
	VolumeLitersTotal decimal.NullDecimal

	// PriceTotal is unit price times quantity
	PriceTotal decimal.Decimal

	// IsVoid marks an event cancelled after the fact; it never flips back
	IsVoid bool

	// VoidedAt is when the event was voided
	VoidedAt *time.Time
}

// Liters returns the event volume, counting null volumes as zero
func (e *ConsumptionEvent) Liters() decimal.Decimal {
	if !e.VolumeLitersTotal.Valid {
		return decimal.Zero
	}
	return e.VolumeLitersTotal.Decimal
}

// ConsumptionRecord is the read model the stats engine consumes: a non-void
// event joined with the drink type it refers to
type ConsumptionRecord struct {
	EventID           string
	PersonID          string
	ConsumedAt        time.Time
	CreatedAt         time.Time
	Quantity          int
	VolumeLitersTotal decimal.NullDecimal
	PriceTotal        decimal.Decimal
	DrinkTypeID       string
	DrinkCategory     DrinkCategory
	DrinkLabel        string
	UnitVolumeLiters  decimal.NullDecimal
}

// Liters returns the record volume, counting null volumes as zero
func (r *ConsumptionRecord) Liters() decimal.Decimal {
	if !r.VolumeLitersTotal.Valid {
		return decimal.Zero
	}
	return r.VolumeLitersTotal.Decimal
}

// HasLiters reports whether the drink of the record has a unit volume
func (r *ConsumptionRecord) HasLiters() bool {
	return r.UnitVolumeLiters.Valid
}

// BeerYearFor returns the beer year a date falls in. A beer year starts on
// 7 January and runs until 6 January of the following calendar year.
func BeerYearFor(d time.Time) int {
	if d.Month() == time.January && d.Day() < 7 {
		return d.Year() - 1
	}
	return d.Year()
}

// BeerYearRange returns the first and last date of a beer year
func BeerYearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 7, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 6, 0, 0, 0, 0, time.UTC)
	return start, end
}
