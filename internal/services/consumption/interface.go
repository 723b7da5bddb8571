package consumption

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/cirrosis/internal/services/consumption Service

import "context"

// Service defines the interface for logging and undoing drinks
type Service interface {
	// JoinRoster adds the caller to the roster as an active person, or activates their pending entry
	JoinRoster(ctx context.Context, input *JoinRosterInput) (*JoinRosterOutput, error)

	// RecordConsumption logs drinks for a person
	RecordConsumption(ctx context.Context, input *RecordConsumptionInput) (*RecordConsumptionOutput, error)

	// VoidConsumption cancels one of the person's own events
	VoidConsumption(ctx context.Context, input *VoidConsumptionInput) (*VoidConsumptionOutput, error)

	// ListRecentConsumptions returns a person's latest events
	ListRecentConsumptions(ctx context.Context, input *ListRecentConsumptionsInput) (*ListRecentConsumptionsOutput, error)

	// GetPersonYearTotals returns a person's totals over a beer year
	GetPersonYearTotals(ctx context.Context, input *GetPersonYearTotalsInput) (*GetPersonYearTotalsOutput, error)
}
