package usecase

import (
	"context"

	"krishisaathi/internal/advisory"
	"krishisaathi/internal/model"
)

// History returns the stored turns for a conversation. Unknown ids yield
// an empty history, not an error.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input advisory.HistoryInput) (advisory.HistoryOutput, error) {
	if input.ConversationID == "" {
		return advisory.HistoryOutput{}, advisory.ErrEmptyHistoryID
	}
	return advisory.HistoryOutput{Turns: uc.store.Get(input.ConversationID)}, nil
}
