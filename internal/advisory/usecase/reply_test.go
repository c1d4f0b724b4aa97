package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"krishisaathi/internal/advisory"
	"krishisaathi/internal/model"
	"krishisaathi/pkg/llmprovider"
)

func TestReplyProfileUpdate(t *testing.T) {
	env := newTestEnv(
		&mockGenerator{resp: &llmprovider.Response{Text: "should not be used"}},
		model.Farmer{ID: "f1", Name: "Ram", Language: model.LanguageHindi},
	)

	out, err := env.uc.Reply(context.Background(), model.Scope{}, advisory.ChatInput{
		Message:  "मेरा राज्य Punjab",
		Language: model.LanguageHindi,
		FarmerID: "f1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Reply, "Punjab") {
		t.Errorf("confirmation should list the updated value: %q", out.Reply)
	}
	if !strings.Contains(out.Reply, "अपडेट") {
		t.Errorf("confirmation should use Hindi wording: %q", out.Reply)
	}
	if env.gen.calls != 0 {
		t.Errorf("profile update must pre-empt the generative path, got %d calls", env.gen.calls)
	}

	rec, err := env.farmers.GetByID(context.Background(), "f1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.State != "Punjab" {
		t.Errorf("state not persisted, got %q", rec.State)
	}
}

func TestReplyProfileUpdateEnglishWording(t *testing.T) {
	env := newTestEnv(nil, model.Farmer{ID: "f1", Name: "Ram"})

	out, err := env.uc.Reply(context.Background(), model.Scope{}, advisory.ChatInput{
		Message:  "i am from Gujarat",
		Language: model.LanguageEnglish,
		FarmerID: "f1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Reply, "State=Gujarat") {
		t.Errorf("expected English confirmation, got %q", out.Reply)
	}
}

func TestReplyEmptyMessage(t *testing.T) {
	env := newTestEnv(nil)

	out, err := env.uc.Reply(context.Background(), model.Scope{}, advisory.ChatInput{
		Language: model.LanguageEnglish,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != renderGreeting(model.LanguageEnglish) {
		t.Errorf("empty turn should greet, got %q", out.Reply)
	}
	if out.ConversationID == "" {
		t.Error("conversation id should be minted for fresh turns")
	}
}

func TestReplyGenerativeSuccess(t *testing.T) {
	env := newTestEnv(&mockGenerator{resp: &llmprovider.Response{Text: "AI advice"}})

	out, err := env.uc.Reply(context.Background(), model.Scope{}, advisory.ChatInput{
		Message:        "how much urea for wheat?",
		Language:       model.LanguageEnglish,
		ConversationID: "c1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != "AI advice" {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
	if out.ConversationID != "c1" {
		t.Errorf("conversation id should be preserved, got %q", out.ConversationID)
	}

	turns := env.store.Get("c1")
	if len(turns) != 2 {
		t.Fatalf("expected user+assistant turns stored, got %d", len(turns))
	}
	if turns[0].Role != model.RoleUser || turns[1].Role != model.RoleAssistant {
		t.Errorf("unexpected turn roles: %v, %v", turns[0].Role, turns[1].Role)
	}
	if turns[1].Content != "AI advice" {
		t.Errorf("assistant turn content = %q", turns[1].Content)
	}
}

func TestReplySystemInstructionOnlyOnFirstTurn(t *testing.T) {
	gen := &mockGenerator{resp: &llmprovider.Response{Text: "AI advice"}}
	env := newTestEnv(gen)

	in := advisory.ChatInput{
		Message:        "how much urea for wheat?",
		Language:       model.LanguageEnglish,
		ConversationID: "c1",
	}
	if _, err := env.uc.Reply(context.Background(), model.Scope{}, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.lastReq.SystemInstruction == "" {
		t.Error("first turn should carry the system instruction")
	}

	in.Message = "and for paddy?"
	if _, err := env.uc.Reply(context.Background(), model.Scope{}, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.lastReq.SystemInstruction != "" {
		t.Error("continuation turns replay history instead of the instruction")
	}
	if len(gen.lastReq.Messages) != 3 {
		t.Errorf("expected 2 replayed turns plus the new message, got %d", len(gen.lastReq.Messages))
	}
}

func TestReplyTransportFailureFallsBackToRules(t *testing.T) {
	gen := &mockGenerator{err: errors.New("connection refused")}
	env := newTestEnv(gen)

	out, err := env.uc.Reply(context.Background(), model.Scope{}, advisory.ChatInput{
		Message:  "what pest is eating my cotton?",
		Language: model.LanguageEnglish,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Reply, "Bollworm") {
		t.Errorf("expected the cotton bollworm response, got %q", out.Reply)
	}
	if gen.calls == 0 {
		t.Error("generative path should be attempted first")
	}
}

func TestReplyImageFailureReturnsInstructionalError(t *testing.T) {
	gen := &mockGenerator{err: errors.New("connection refused")}
	env := newTestEnv(gen)

	for _, lang := range []model.LanguageCode{model.LanguageEnglish, model.LanguageHindi} {
		out, err := env.uc.Reply(context.Background(), model.Scope{}, advisory.ChatInput{
			Message:   "what is this?",
			Language:  lang,
			ImageData: "data:image/jpeg;base64,aGVsbG8=",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Reply, "🔍") {
			t.Errorf("lang %s: expected the fixed instructional error, got %q", lang, out.Reply)
		}
	}
}

func TestReplyNoProviderRunsRuleEngine(t *testing.T) {
	env := newTestEnv(nil)

	cases := []struct {
		name     string
		message  string
		contains string
	}{
		{"greeting", "hello", "farming assistant"},
		{"crop info", "tell me about paddy crop", "Paddy"},
		{"pest info", "bollworm treatment", "Bollworm"},
		{"disease info", "blast in my field", "Blast"},
		{"scheme info", "PM Kisan  details please", "PM-KISAN"},
		{"scheme list", "any subsidy available?", "Government Schemes"},
		{"mandi", "market price today", "Mandi Prices"},
		{"weather", "rain forecast", "Advisory"},
		{"soil", "urea dose", "Soil"},
		{"not found", "apples and oranges", "general tips"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := env.uc.Reply(context.Background(), model.Scope{}, advisory.ChatInput{
				Message:  tc.message,
				Language: model.LanguageEnglish,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out.Reply, tc.contains) {
				t.Errorf("reply %q should contain %q", out.Reply, tc.contains)
			}
		})
	}
}

func TestReplyUnknownLanguageDegrades(t *testing.T) {
	env := newTestEnv(nil)

	out, err := env.uc.Reply(context.Background(), model.Scope{}, advisory.ChatInput{
		Message:  "hello",
		Language: "xx",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Language != model.DefaultLanguage {
		t.Errorf("unknown language should degrade to default, got %q", out.Language)
	}
	if out.Reply != renderGreeting(model.DefaultLanguage) {
		t.Errorf("reply should use the default language, got %q", out.Reply)
	}
}

func TestHistory(t *testing.T) {
	env := newTestEnv(&mockGenerator{resp: &llmprovider.Response{Text: "AI advice"}})

	t.Run("empty id", func(t *testing.T) {
		if _, err := env.uc.History(context.Background(), model.Scope{}, advisory.HistoryInput{}); !errors.Is(err, advisory.ErrEmptyHistoryID) {
			t.Errorf("expected ErrEmptyHistoryID, got %v", err)
		}
	})

	t.Run("unknown id yields empty history", func(t *testing.T) {
		out, err := env.uc.History(context.Background(), model.Scope{}, advisory.HistoryInput{ConversationID: "missing"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Turns) != 0 {
			t.Errorf("expected empty history, got %d turns", len(out.Turns))
		}
	})

	t.Run("returns stored turns", func(t *testing.T) {
		if _, err := env.uc.Reply(context.Background(), model.Scope{}, advisory.ChatInput{
			Message:        "how much urea for wheat?",
			Language:       model.LanguageEnglish,
			ConversationID: "c9",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := env.uc.History(context.Background(), model.Scope{}, advisory.HistoryInput{ConversationID: "c9"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Turns) != 2 {
			t.Errorf("expected 2 turns, got %d", len(out.Turns))
		}
	})
}
