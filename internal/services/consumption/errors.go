package consumption

// ConsumptionError is a custom error type for consumption-related errors
type ConsumptionError string

// Error implements the error interface
func (e ConsumptionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidQuantity    ConsumptionError = "quantity must be positive"
	ErrFutureDate         ConsumptionError = "consumption date is in the future"
	ErrPersonNotFound     ConsumptionError = "person not found"
	ErrPersonNotEligible  ConsumptionError = "person is not active"
	ErrDrinkTypeNotFound  ConsumptionError = "drink type not found"
	ErrDrinkTypeInactive  ConsumptionError = "drink type is no longer served"
	ErrMissingPersonID    ConsumptionError = "person ID cannot be empty"
	ErrMissingEventID     ConsumptionError = "event ID cannot be empty"
	ErrMissingName        ConsumptionError = "name cannot be empty"
	ErrNameTaken          ConsumptionError = "name is already taken"
	ErrNilConfig          ConsumptionError = "config cannot be nil"
	ErrNilPersonRepo      ConsumptionError = "person repository cannot be nil"
	ErrNilDrinkTypeRepo   ConsumptionError = "drink type repository cannot be nil"
	ErrNilConsumptionRepo ConsumptionError = "consumption repository cannot be nil"
	ErrNilClock           ConsumptionError = "clock cannot be nil"
	ErrNilUUIDGenerator   ConsumptionError = "UUID generator cannot be nil"
)
