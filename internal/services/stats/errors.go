package stats

// StatsError is a custom error type for stats-related errors
type StatsError string

// Error implements the error interface
func (e StatsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidRange       StatsError = "range end is before range start"
	ErrEmptyRoster        StatsError = "no eligible persons"
	ErrInvalidMonth       StatsError = "month must be between 1 and 12"
	ErrNilConfig          StatsError = "config cannot be nil"
	ErrNilPersonRepo      StatsError = "person repository cannot be nil"
	ErrNilConsumptionRepo StatsError = "consumption repository cannot be nil"
	ErrNilClock           StatsError = "clock cannot be nil"
	ErrInvalidThreshold   StatsError = "strong day threshold must be positive and close margin cannot be negative"
)
