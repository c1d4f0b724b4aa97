package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newOpenAIImpl creates a new OpenAI implementation
func newOpenAIImpl(cfg Config) *openaiImpl {
	return &openaiImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request to the OpenAI API
func (o *openaiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("openai: request must contain at least one message")
	}

	chatReq := o.transformRequest(req)

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return o.transformResponse(&chatResp)
}

// Model returns the model being used
func (o *openaiImpl) Model() string {
	return o.model
}

// transformRequest converts a request to the chat completions wire format
func (o *openaiImpl) transformRequest(req *Request) *chatRequest {
	chatReq := &chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0, len(req.Messages)+1),
	}

	if req.SystemInstruction != nil {
		systemMsg := transformMessage(req.SystemInstruction)
		systemMsg.Role = "system"
		chatReq.Messages = append(chatReq.Messages, systemMsg)
	}

	for i := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, transformMessage(&req.Messages[i]))
	}

	return chatReq
}

// transformMessage flattens a message into the wire format. Text-only
// messages use a plain string content, messages carrying images use the
// typed content-part array the vision API expects.
func transformMessage(msg *Content) chatMessage {
	chatMsg := chatMessage{Role: msg.Role}

	hasImage := false
	for _, part := range msg.Parts {
		if part.ImageURL != "" {
			hasImage = true
			break
		}
	}

	if !hasImage {
		var text string
		for _, part := range msg.Parts {
			if part.Text == "" {
				continue
			}
			if text != "" {
				text += "\n"
			}
			text += part.Text
		}
		chatMsg.Content = text
		return chatMsg
	}

	parts := make([]chatContentPart, 0, len(msg.Parts))
	for _, part := range msg.Parts {
		if part.Text != "" {
			parts = append(parts, chatContentPart{Type: "text", Text: part.Text})
		}
		if part.ImageURL != "" {
			parts = append(parts, chatContentPart{
				Type:     "image_url",
				ImageURL: &chatImageURL{URL: part.ImageURL},
			})
		}
	}
	chatMsg.Content = parts
	return chatMsg
}

func (o *openaiImpl) transformResponse(resp *chatResponse) (*Response, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices in response")
	}

	choice := resp.Choices[0]
	message := Content{
		Role: choice.Message.Role,
	}
	if choice.Message.Content != "" {
		message.Parts = append(message.Parts, Part{Text: choice.Message.Content})
	}

	return &Response{
		Content: message,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
