package llmprovider

import (
	"context"
	"strings"

	"krishisaathi/pkg/gemini"
	"krishisaathi/pkg/openai"
)

// GeminiAdapter adapts the Gemini client to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini provider adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) Name() string {
	return "gemini"
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// GenerateContent converts the normalized request to the Gemini format
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != "" {
		geminiReq.SystemInstruction = &gemini.Message{
			Parts: []gemini.Part{{Text: req.SystemInstruction}},
		}
	}

	for _, msg := range req.Messages {
		role := msg.Role
		if role == "assistant" {
			role = "model"
		}

		parts := make([]gemini.Part, 0, 2)
		if msg.Text != "" {
			parts = append(parts, gemini.Part{Text: msg.Text})
		}
		if msg.ImageData != "" {
			mimeType, data, ok := parseDataURI(msg.ImageData)
			if ok {
				parts = append(parts, gemini.Part{
					InlineData: &gemini.Blob{MIMEType: mimeType, Data: data},
				})
			}
		}
		geminiReq.Messages = append(geminiReq.Messages, gemini.Message{Role: role, Parts: parts})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: a.Name(),
		ModelName:    a.Model(),
	}, nil
}

// OpenAIAdapter adapts the OpenAI client to the Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI provider adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

func (a *OpenAIAdapter) Name() string {
	return "openai"
}

func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// GenerateContent converts the normalized request to the chat completions format
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openaiReq := &openai.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != "" {
		openaiReq.SystemInstruction = &openai.Content{
			Parts: []openai.Part{{Text: req.SystemInstruction}},
		}
	}

	for _, msg := range req.Messages {
		parts := make([]openai.Part, 0, 2)
		if msg.Text != "" {
			parts = append(parts, openai.Part{Text: msg.Text})
		}
		if msg.ImageData != "" {
			parts = append(parts, openai.Part{ImageURL: msg.ImageData})
		}
		openaiReq.Messages = append(openaiReq.Messages, openai.Content{Role: msg.Role, Parts: parts})
	}

	resp, err := a.client.GenerateContent(ctx, openaiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Text:         resp.Text(),
		ProviderName: a.Name(),
		ModelName:    a.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// parseDataURI splits a "data:<mime>;base64,<data>" URI into its parts.
func parseDataURI(uri string) (mimeType, data string, ok bool) {
	if !strings.HasPrefix(uri, "data:") {
		return "", "", false
	}
	rest := strings.TrimPrefix(uri, "data:")
	meta, encoded, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}
	mimeType = strings.TrimSuffix(meta, ";base64")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return mimeType, encoded, true
}
