package consumption

import (
	"time"

	"github.com/KirkDiggler/cirrosis/internal/common/clock"
	"github.com/KirkDiggler/cirrosis/internal/common/uuid"
	"github.com/KirkDiggler/cirrosis/internal/models"
	consumptionRepo "github.com/KirkDiggler/cirrosis/internal/repositories/consumption"
	drinkTypeRepo "github.com/KirkDiggler/cirrosis/internal/repositories/drink_type"
	personRepo "github.com/KirkDiggler/cirrosis/internal/repositories/person"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultRecentLimit = 3

// Config holds configuration for the consumption service
type Config struct {
	PersonRepo      personRepo.Repository
	DrinkTypeRepo   drinkTypeRepo.Repository
	ConsumptionRepo consumptionRepo.Repository
	Clock           clock.Clock
	UUIDGenerator   uuid.UUID

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// RecordConsumptionInput contains parameters for logging drinks
type RecordConsumptionInput struct {
	PersonID    string
	DrinkTypeID string
	Quantity    int

	// ConsumedAt defaults to today
	ConsumedAt time.Time
}

// RecordConsumptionOutput contains the stored event
type RecordConsumptionOutput struct {
	Event     *models.ConsumptionEvent
	DrinkType *models.DrinkType
}

// JoinRosterInput contains parameters for joining the roster
type JoinRosterInput struct {
	PersonID string
	Name     string
}

// JoinRosterOutput contains the roster entry of the caller
type JoinRosterOutput struct {
	Person *models.Person

	// Joined is false when the caller was already an active member
	Joined bool
}

// VoidConsumptionInput contains parameters for voiding one of a person's events
type VoidConsumptionInput struct {
	PersonID string
	EventID  string
}

// VoidConsumptionOutput contains the result of a void
type VoidConsumptionOutput struct {
	// Voided is false when the event was missing, belonged to someone else or was already void
	Voided bool
}

// ListRecentConsumptionsInput contains parameters for a person's latest events
type ListRecentConsumptionsInput struct {
	PersonID string

	// Limit defaults to 3
	Limit int
}

// ListRecentConsumptionsOutput contains events newest first
type ListRecentConsumptionsOutput struct {
	Records []*models.ConsumptionRecord
}

// GetPersonYearTotalsInput contains parameters for a person's beer year totals
type GetPersonYearTotalsInput struct {
	PersonID string

	// BeerYear defaults to the beer year of today
	BeerYear int
}

// GetPersonYearTotalsOutput contains a person's beer year totals
type GetPersonYearTotalsOutput struct {
	BeerYear int
	Units    int
	Liters   decimal.Decimal
	Price    decimal.Decimal
	Events   int

	// IsFirstOfYear is true when exactly one event is on record for the beer year
	IsFirstOfYear bool
}
