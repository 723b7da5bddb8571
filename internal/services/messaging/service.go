package messaging

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

// service implements the Service interface
type service struct {
	// mu guards rand, which is not safe for concurrent use
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	r := config.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	n := s.rand.Intn(len(messages))
	s.mu.Unlock()
	return messages[n]
}

func toneOr(preferred, fallback MessageTone) MessageTone {
	if preferred == "" {
		return fallback
	}
	return preferred
}

// GetRecordedMessage returns a line for a freshly logged entry
func (s *service) GetRecordedMessage(ctx context.Context, input *GetRecordedMessageInput) (*GetRecordedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	var tone MessageTone

	switch {
	case input.FirstOfYear:
		tone = ToneCelebration
		messages = []string{
			"The beer year is open! Someone had to go first.",
			"First one of the year. The liver sends its regards.",
			"And so it begins again.",
		}
	case input.Quantity >= 5:
		tone = ToneSarcastic
		messages = []string{
			"Five or more in one go? Bold. Very bold.",
			"Logging in bulk now, are we?",
			"That's not a round, that's a season.",
		}
	case !input.HasLiters:
		tone = ToneFunny
		messages = []string{
			"Shots don't count in liters. They count in regrets.",
			"Small glass, big decisions.",
			"Noted. Hydrate, maybe?",
		}
	default:
		tone = ToneEncouraging
		messages = []string{
			"Logged. The ranking thanks you.",
			"Every liter counts.",
			"Your liver has been notified.",
			"One step closer to the top of the board.",
		}
	}

	return &GetRecordedMessageOutput{
		Message: s.pick(messages),
		Tone:    toneOr(input.PreferredTone, tone),
	}, nil
}

// GetShameMessage returns a line for one finding of the shame report
func (s *service) GetShameMessage(ctx context.Context, input *GetShameMessageInput) (*GetShameMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	tone := ToneSarcastic

	switch input.Finding {
	case FindingFalseLeader:
		messages = []string{
			"Led early, faded fast.",
			"Peaked too soon.",
			"First to the top, first to the couch.",
		}
	case FindingBiggestDrop:
		messages = []string{
			"Gravity always wins.",
			"What goes up must come down.",
			"From the podium to the parking lot.",
		}
	case FindingAlmostChampion:
		messages = []string{
			"So close, so many times.",
			"Always the bridesmaid.",
			"Half a liter away from glory. Repeatedly.",
		}
	case FindingGhost:
		messages = []string{
			"Did anyone actually see them this month?",
			"Boo. Nothing logged.",
			"Present in spirit, absent in spirits.",
		}
	case FindingSaddestWeek:
		messages = []string{
			"A week to forget. Or rather, a week nobody remembers anyway.",
			"The group took a break. Nobody approved it.",
			"Dry week. Suspiciously dry.",
		}
	case FindingNotApplicable:
		tone = ToneNeutral
		messages = []string{
			"Not enough drinkers for proper shaming.",
			"Shame needs an audience. Come back when more people drink.",
		}
	default:
		return nil, errors.New("unknown shame finding")
	}

	return &GetShameMessageOutput{
		Message: s.pick(messages),
		Tone:    toneOr(input.PreferredTone, tone),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string

	switch input.ErrorType {
	case ErrorTypeFutureDate:
		messages = []string{
			"Drinks from the future don't count yet.",
			"Planning ahead? Log it when it happens.",
		}
	case ErrorTypeNotJoined:
		messages = []string{
			"You're not on the roster yet. Use /cirrosis join first.",
			"Who are you again? Join with /cirrosis join.",
		}
	case ErrorTypeNotEligible:
		messages = []string{
			"You're off the roster for now. Talk to the group.",
			"Only active roster members can log drinks.",
		}
	case ErrorTypeNameTaken:
		messages = []string{
			"Someone already drinks under that name. Pick another.",
			"That name is taken. Be original.",
		}
	case ErrorTypeDrinkInactive:
		messages = []string{
			"That drink is off the menu.",
			"That one has been retired. Pick another.",
		}
	default:
		messages = []string{
			"Something went wrong. Try again in a bit.",
			"The bartender dropped something. Try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    toneOr(input.PreferredTone, ToneFunny),
	}, nil
}
