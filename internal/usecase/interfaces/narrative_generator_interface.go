package interfaces

import (
	"context"
	"granite_estimator/internal/domain/entities"
)

// INarrativeGenerator writes customer-facing text for a priced estimate.
type INarrativeGenerator interface {
	GenerateNarrative(ctx context.Context, e entities.Estimate) (string, error)
}

// IChatAssistant answers a single free-form customer message.
type IChatAssistant interface {
	Reply(ctx context.Context, systemPrompt, message string) (string, error)
}
