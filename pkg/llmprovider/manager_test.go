package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"krishisaathi/pkg/log"
)

type mockProvider struct {
	name      string
	responses []mockResult
	calls     int
}

type mockResult struct {
	resp *Response
	err  error
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx := m.calls
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	m.calls++
	r := m.responses[idx]
	return r.resp, r.err
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any) {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Info(ctx context.Context, arg ...any) {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Warn(ctx context.Context, arg ...any) {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Error(ctx context.Context, arg ...any) {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Fatal(ctx context.Context, arg ...any) {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

var _ log.Logger = nopLogger{}

func okResponse(text string) *Response {
	return &Response{Text: text, ProviderName: "mock", ModelName: "mock-model"}
}

func testRequest() *Request {
	return &Request{Messages: []Message{{Role: "user", Text: "hello"}}}
}

func TestGenerateContent(t *testing.T) {
	cfg := &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}

	t.Run("no providers", func(t *testing.T) {
		m := NewManager(nil, cfg, nopLogger{})
		if _, err := m.GenerateContent(context.Background(), testRequest()); !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("empty request", func(t *testing.T) {
		p := &mockProvider{name: "a", responses: []mockResult{{resp: okResponse("hi")}}}
		m := NewManager([]Provider{p}, cfg, nopLogger{})
		if _, err := m.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("first provider succeeds", func(t *testing.T) {
		p1 := &mockProvider{name: "a", responses: []mockResult{{resp: okResponse("from a")}}}
		p2 := &mockProvider{name: "b", responses: []mockResult{{resp: okResponse("from b")}}}
		m := NewManager([]Provider{p1, p2}, cfg, nopLogger{})

		resp, err := m.GenerateContent(context.Background(), testRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "from a" {
			t.Errorf("expected response from first provider, got %q", resp.Text)
		}
		if p2.calls != 0 {
			t.Errorf("second provider should not be called, got %d calls", p2.calls)
		}
	})

	t.Run("fallback to second provider", func(t *testing.T) {
		p1 := &mockProvider{name: "a", responses: []mockResult{{err: errors.New("boom")}}}
		p2 := &mockProvider{name: "b", responses: []mockResult{{resp: okResponse("from b")}}}
		m := NewManager([]Provider{p1, p2}, cfg, nopLogger{})

		resp, err := m.GenerateContent(context.Background(), testRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "from b" {
			t.Errorf("expected fallback response, got %q", resp.Text)
		}
		if p1.calls != cfg.RetryAttempts {
			t.Errorf("expected %d retries on first provider, got %d", cfg.RetryAttempts, p1.calls)
		}
	})

	t.Run("retry then succeed", func(t *testing.T) {
		p := &mockProvider{name: "a", responses: []mockResult{
			{err: errors.New("transient")},
			{resp: okResponse("second try")},
		}}
		m := NewManager([]Provider{p}, cfg, nopLogger{})

		resp, err := m.GenerateContent(context.Background(), testRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "second try" {
			t.Errorf("unexpected text: %q", resp.Text)
		}
		if p.calls != 2 {
			t.Errorf("expected 2 calls, got %d", p.calls)
		}
	})

	t.Run("blank text treated as failure", func(t *testing.T) {
		p1 := &mockProvider{name: "a", responses: []mockResult{{resp: okResponse("   ")}}}
		p2 := &mockProvider{name: "b", responses: []mockResult{{resp: okResponse("real answer")}}}
		m := NewManager([]Provider{p1, p2}, cfg, nopLogger{})

		resp, err := m.GenerateContent(context.Background(), testRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "real answer" {
			t.Errorf("expected fallback past blank response, got %q", resp.Text)
		}
	})

	t.Run("all providers fail", func(t *testing.T) {
		p1 := &mockProvider{name: "a", responses: []mockResult{{err: errors.New("down")}}}
		p2 := &mockProvider{name: "b", responses: []mockResult{{err: errors.New("also down")}}}
		m := NewManager([]Provider{p1, p2}, cfg, nopLogger{})

		_, err := m.GenerateContent(context.Background(), testRequest())
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
	})

	t.Run("fallback disabled stops at first provider", func(t *testing.T) {
		noFallback := &Config{FallbackEnabled: false, RetryAttempts: 1, RetryDelay: time.Millisecond}
		p1 := &mockProvider{name: "a", responses: []mockResult{{err: errors.New("down")}}}
		p2 := &mockProvider{name: "b", responses: []mockResult{{resp: okResponse("from b")}}}
		m := NewManager([]Provider{p1, p2}, noFallback, nopLogger{})

		if _, err := m.GenerateContent(context.Background(), testRequest()); err == nil {
			t.Fatal("expected error when fallback is disabled")
		}
		if p2.calls != 0 {
			t.Errorf("second provider should not be called, got %d calls", p2.calls)
		}
	})

	t.Run("global timeout", func(t *testing.T) {
		timeoutCfg := &Config{
			FallbackEnabled: true,
			RetryAttempts:   5,
			RetryDelay:      50 * time.Millisecond,
			MaxTotalTimeout: 10 * time.Millisecond,
		}
		p := &mockProvider{name: "slow", responses: []mockResult{{err: errors.New("down")}}}
		m := NewManager([]Provider{p}, timeoutCfg, nopLogger{})

		if _, err := m.GenerateContent(context.Background(), testRequest()); err == nil {
			t.Fatal("expected error when timeout exceeded")
		}
	})
}

func TestParseDataURI(t *testing.T) {
	t.Run("valid jpeg", func(t *testing.T) {
		mime, data, ok := parseDataURI("data:image/jpeg;base64,aGVsbG8=")
		if !ok {
			t.Fatal("expected valid parse")
		}
		if mime != "image/jpeg" {
			t.Errorf("unexpected mime: %q", mime)
		}
		if data != "aGVsbG8=" {
			t.Errorf("unexpected data: %q", data)
		}
	})

	t.Run("not a data URI", func(t *testing.T) {
		if _, _, ok := parseDataURI("https://example.com/image.jpg"); ok {
			t.Error("expected parse failure")
		}
	})

	t.Run("missing payload", func(t *testing.T) {
		if _, _, ok := parseDataURI("data:image/png;base64"); ok {
			t.Error("expected parse failure")
		}
	})
}
