package consumption

import (
	"errors"
	"sort"
	"time"

	"github.com/KirkDiggler/cirrosis/internal/models"
)

var (
	// ErrEventNotFound is returned when a consumption event is not found
	ErrEventNotFound = errors.New("consumption event not found")

	// ErrEventExists is returned when adding an event whose ID is already stored
	ErrEventExists = errors.New("consumption event already exists")
)

// AddEventInput contains parameters for adding an event
type AddEventInput struct {
	Event *models.ConsumptionEvent

	// DrinkType is the drink the event refers to
	DrinkType *models.DrinkType
}

// GetEventInput contains parameters for retrieving an event
type GetEventInput struct {
	EventID string
}

// VoidEventInput contains parameters for voiding an event
type VoidEventInput struct {
	EventID  string
	PersonID string
	VoidedAt time.Time
}

// VoidEventOutput contains the result of voiding an event
type VoidEventOutput struct {
	// Voided is false when the event was missing, foreign or already void
	Voided bool
}

// ListRecordsInput contains parameters for reading a date range
type ListRecordsInput struct {
	// Start and End bound consumed_at inclusively
	Start time.Time
	End   time.Time

	// PersonIDs restricts the result when not empty
	PersonIDs []string
}

// ListRecordsOutput contains records ordered by consumed_at, created_at, id
type ListRecordsOutput struct {
	Records []*models.ConsumptionRecord
}

// ListRecentEventsInput contains parameters for reading a person's latest events
type ListRecentEventsInput struct {
	PersonID string
	Limit    int
}

// ListRecentEventsOutput contains records ordered by created_at, newest first
type ListRecentEventsOutput struct {
	Records []*models.ConsumptionRecord
}

// ListBeerYearsInput contains parameters for listing beer years
type ListBeerYearsInput struct{}

// ListBeerYearsOutput contains beer years, newest first
type ListBeerYearsOutput struct {
	Years []int
}

func validateAddEvent(input *AddEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}
	event := input.Event
	if event.ID == "" {
		return errors.New("event ID cannot be empty")
	}
	if event.PersonID == "" {
		return errors.New("event person ID cannot be empty")
	}
	if event.DrinkTypeID == "" {
		return errors.New("event drink type ID cannot be empty")
	}
	if event.Quantity <= 0 {
		return errors.New("event quantity must be positive")
	}
	if event.ConsumedAt.IsZero() {
		return errors.New("event consumption date cannot be empty")
	}
	if event.IsVoid {
		return errors.New("event cannot be stored already void")
	}
	if input.DrinkType == nil || input.DrinkType.ID != event.DrinkTypeID {
		return errors.New("event drink type does not match")
	}
	return nil
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errors.New("range start and end cannot be empty")
	}
	if end.Before(start) {
		return errors.New("range end is before range start")
	}
	return nil
}

func personFilter(personIDs []string) map[string]struct{} {
	if len(personIDs) == 0 {
		return nil
	}
	filter := make(map[string]struct{}, len(personIDs))
	for _, id := range personIDs {
		filter[id] = struct{}{}
	}
	return filter
}

func sortRecords(records []*models.ConsumptionRecord) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.ConsumedAt.Equal(b.ConsumedAt) {
			return a.ConsumedAt.Before(b.ConsumedAt)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.EventID < b.EventID
	})
}
