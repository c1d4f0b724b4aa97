package usecase

import (
	"context"

	"krishisaathi/internal/advisory"
	"krishisaathi/internal/conversation"
	"krishisaathi/internal/farmer"
	"krishisaathi/internal/farmer/memory"
	"krishisaathi/internal/i18n"
	"krishisaathi/internal/knowledge"
	"krishisaathi/internal/model"
	"krishisaathi/pkg/llmprovider"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Info(ctx context.Context, arg ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Error(ctx context.Context, arg ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// mockGenerator is a scripted provider manager for tests.
type mockGenerator struct {
	resp    *llmprovider.Response
	err     error
	calls   int
	lastReq *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

type testEnv struct {
	uc      advisory.UseCase
	gen     *mockGenerator
	store   *conversation.Store
	farmers farmer.Repository
}

// newTestEnv wires a use case against the real knowledge base and store,
// a seeded in-memory farmer repository, and a scripted generator. gen may
// be nil for a rule-engine-only use case.
func newTestEnv(gen *mockGenerator, farmers ...model.Farmer) testEnv {
	store := conversation.New()
	repo := memory.NewWith(farmers...)

	var g generator
	if gen != nil {
		g = gen
	}

	return testEnv{
		uc:      New(nopLogger{}, g, knowledge.Load(), store, repo, i18n.NewStatic()),
		gen:     gen,
		store:   store,
		farmers: repo,
	}
}
