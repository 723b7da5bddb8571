package consumption

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/cirrosis/internal/repositories/consumption Repository

import (
	"context"

	"github.com/KirkDiggler/cirrosis/internal/models"
)

// Repository defines the interface for the consumption event store
type Repository interface {
	// AddEvent stores a new consumption event
	AddEvent(ctx context.Context, input *AddEventInput) error

	// GetEvent retrieves an event by ID, void or not
	GetEvent(ctx context.Context, input *GetEventInput) (*models.ConsumptionEvent, error)

	// VoidEvent marks a person's own event as void
	VoidEvent(ctx context.Context, input *VoidEventInput) (*VoidEventOutput, error)

	// ListRecords retrieves the non-void events of a date range joined with their drink type
	ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error)

	// ListRecentEvents retrieves the latest non-void events of a person
	ListRecentEvents(ctx context.Context, input *ListRecentEventsInput) (*ListRecentEventsOutput, error)

	// ListBeerYears retrieves the beer years that hold non-void events, newest first
	ListBeerYears(ctx context.Context, input *ListBeerYearsInput) (*ListBeerYearsOutput, error)
}
