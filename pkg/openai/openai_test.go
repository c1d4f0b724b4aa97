package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing API key")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected model %q, got %q", DefaultModel, cfg.Model)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected URL %q, got %q", DefaultBaseURL, cfg.BaseURL)
		}
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotBody map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
				t.Errorf("unexpected auth header: %s", auth)
			}
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(chatResponse{
				Choices: []chatChoice{
					{Message: chatResponseMessage{Role: "assistant", Content: "Rotate your crops."}},
				},
				Usage: chatUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
			})
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "test-key", BaseURL: server.URL})
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &Request{
			SystemInstruction: &Content{Parts: []Part{{Text: "You are a farming assistant."}}},
			Messages: []Content{
				{Role: "user", Parts: []Part{{Text: "How do I avoid wilt?"}}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "Rotate your crops." {
			t.Errorf("unexpected text: %q", resp.Text())
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}

		messages, _ := gotBody["messages"].([]interface{})
		if len(messages) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(messages))
		}
		first, _ := messages[0].(map[string]interface{})
		if first["role"] != "system" {
			t.Errorf("expected system role first, got %v", first["role"])
		}
	})

	t.Run("image message uses content parts", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]interface{}
			json.NewDecoder(r.Body).Decode(&body)
			messages := body["messages"].([]interface{})
			last := messages[len(messages)-1].(map[string]interface{})
			parts, ok := last["content"].([]interface{})
			if !ok {
				t.Fatalf("expected content array, got %T", last["content"])
			}
			if len(parts) != 2 {
				t.Errorf("expected 2 content parts, got %d", len(parts))
			}
			json.NewEncoder(w).Encode(chatResponse{
				Choices: []chatChoice{
					{Message: chatResponseMessage{Role: "assistant", Content: "Looks like leaf rust."}},
				},
			})
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "test-key", BaseURL: server.URL})
		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{
				{Role: "user", Parts: []Part{
					{Text: "What disease is this?"},
					{ImageURL: "data:image/jpeg;base64,aGVsbG8="},
				}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "Looks like leaf rust." {
			t.Errorf("unexpected text: %q", resp.Text())
		}
	})

	t.Run("API error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid key"}}`))
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "bad-key", BaseURL: server.URL})
		_, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
		})
		if err == nil {
			t.Fatal("expected error for non-200 status")
		}
		if !strings.Contains(err.Error(), "401") {
			t.Errorf("expected status code in error, got: %v", err)
		}
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(chatResponse{})
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "test-key", BaseURL: server.URL})
		_, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
		})
		if err == nil {
			t.Fatal("expected error for empty choices")
		}
	})
}
