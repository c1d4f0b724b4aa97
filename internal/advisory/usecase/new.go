package usecase

import (
	"context"

	"krishisaathi/internal/advisory"
	"krishisaathi/internal/conversation"
	"krishisaathi/internal/farmer"
	"krishisaathi/internal/i18n"
	"krishisaathi/internal/knowledge"
	pkgLog "krishisaathi/pkg/log"
	"krishisaathi/pkg/llmprovider"
)

// generator is the slice of the provider manager the engine needs.
type generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l       pkgLog.Logger
	llm     generator
	kb      *knowledge.Base
	store   *conversation.Store
	farmers farmer.Repository
	i18n    i18n.Translator
}

// New creates a new advisory UseCase instance. llm may be nil when no
// provider is configured; the engine then runs rule-based only.
func New(
	l pkgLog.Logger,
	llm generator,
	kb *knowledge.Base,
	store *conversation.Store,
	farmers farmer.Repository,
	translator i18n.Translator,
) advisory.UseCase {
	return &implUseCase{
		l:       l,
		llm:     llm,
		kb:      kb,
		store:   store,
		farmers: farmers,
		i18n:    translator,
	}
}
