package advisory

import (
	"context"

	"krishisaathi/internal/model"
)

// UseCase defines the business logic interface for the advisory domain.
type UseCase interface {
	// Reply runs one dialogue turn: profile slot extraction, the generative
	// attempt, and the rule-based fallback, in that order.
	Reply(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// History returns the stored turns for a conversation id.
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)
}
