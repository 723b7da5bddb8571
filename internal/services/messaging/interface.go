package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/cirrosis/internal/services/messaging Service

// Service picks the flavor lines the bot adds to its replies
type Service interface {
	// GetRecordedMessage returns a line for a freshly logged entry
	GetRecordedMessage(ctx context.Context, input *GetRecordedMessageInput) (*GetRecordedMessageOutput, error)

	// GetShameMessage returns a line for one finding of the shame report
	GetShameMessage(ctx context.Context, input *GetShameMessageInput) (*GetShameMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
