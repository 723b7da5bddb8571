package messaging

import "math/rand"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ShameFinding names one section of the shame report
type ShameFinding string

const (
	FindingFalseLeader    ShameFinding = "false_leader"
	FindingBiggestDrop    ShameFinding = "biggest_drop"
	FindingAlmostChampion ShameFinding = "almost_champion"
	FindingGhost          ShameFinding = "ghost"
	FindingSaddestWeek    ShameFinding = "saddest_week"

	// FindingNotApplicable is used when too few people drank for a report
	FindingNotApplicable ShameFinding = "not_applicable"
)

// ErrorType classifies the errors users can cause
type ErrorType string

const (
	ErrorTypeFutureDate    ErrorType = "future_date"
	ErrorTypeNotJoined     ErrorType = "not_joined"
	ErrorTypeNotEligible   ErrorType = "not_eligible"
	ErrorTypeNameTaken     ErrorType = "name_taken"
	ErrorTypeDrinkInactive ErrorType = "drink_inactive"
	ErrorTypeUnknown       ErrorType = "unknown"
)

// ServiceConfig holds the configuration for the messaging service
type ServiceConfig struct {
	// Rand picks among the candidate lines; seeded from the clock when nil
	Rand *rand.Rand
}

// GetRecordedMessageInput contains parameters for a logged entry line
type GetRecordedMessageInput struct {
	Quantity int

	// FirstOfYear is true for the first entry of the person in the beer year
	FirstOfYear bool

	// HasLiters is false for drinks counted in units only
	HasLiters bool

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetRecordedMessageOutput contains the selected line
type GetRecordedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetShameMessageInput contains parameters for a shame report line
type GetShameMessageInput struct {
	Finding ShameFinding

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetShameMessageOutput contains the selected line
type GetShameMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the selected message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
