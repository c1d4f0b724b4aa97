package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type geminiImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

func (g *geminiImpl) Model() string {
	return g.model
}

// GenerateContent sends a generation request and returns the model response.
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("gemini: request must contain at least one message")
	}

	wireReq := g.transformRequest(req)

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.apiURL, g.model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini: API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var wireResp geminiResponse
	if err := json.Unmarshal(respBody, &wireResp); err != nil {
		return nil, fmt.Errorf("gemini: failed to unmarshal response: %w", err)
	}

	return g.transformResponse(&wireResp)
}

func (g *geminiImpl) transformRequest(req *Request) *geminiRequest {
	wireReq := &geminiRequest{
		Contents: make([]geminiContent, 0, len(req.Messages)),
	}

	if req.SystemInstruction != nil {
		wireReq.SystemInstruction = &geminiContent{
			Parts: transformParts(req.SystemInstruction.Parts),
		}
	}

	for _, msg := range req.Messages {
		wireReq.Contents = append(wireReq.Contents, geminiContent{
			Role:  msg.Role,
			Parts: transformParts(msg.Parts),
		})
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		wireReq.GenerationConfig = &geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	return wireReq
}

func transformParts(parts []Part) []geminiPart {
	out := make([]geminiPart, 0, len(parts))
	for _, p := range parts {
		wp := geminiPart{Text: p.Text}
		if p.InlineData != nil {
			wp.InlineData = &geminiBlobData{
				MIMEType: p.InlineData.MIMEType,
				Data:     p.InlineData.Data,
			}
		}
		out = append(out, wp)
	}
	return out
}

func (g *geminiImpl) transformResponse(wireResp *geminiResponse) (*Response, error) {
	if len(wireResp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: no candidates in response")
	}

	candidate := wireResp.Candidates[0]
	resp := &Response{
		Content: Message{
			Role: candidate.Content.Role,
		},
	}
	for _, wp := range candidate.Content.Parts {
		resp.Content.Parts = append(resp.Content.Parts, Part{Text: wp.Text})
	}
	return resp, nil
}
