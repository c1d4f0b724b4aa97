package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"krishisaathi/internal/advisory"
	"krishisaathi/internal/model"
	"krishisaathi/pkg/llmprovider"
)

const (
	generateTemperature = 0.7
	maxTokensText       = 800
	maxTokensVision     = 1000
)

// systemPromptFormat parameterizes the assistant instruction by language
// display name, farmer name, and location.
const systemPromptFormat = `You are KRISHISAATHI, an expert AI agricultural assistant for Indian farmers.

YOUR CAPABILITIES:
1. **Crop Advisory**: Expert knowledge on paddy, wheat, cotton, sugarcane, maize, soybean, groundnut, chickpea, and all major Indian crops
2. **Pest & Disease Management**: Identify pests/diseases, suggest organic and chemical treatments
3. **Government Schemes**: PM-KISAN, Fasal Bima Yojana, KCC, Soil Health Card, eNAM
4. **Market Information**: Mandi prices, selling strategies, MSP information
5. **Weather Advisory**: Farming tips based on weather conditions
6. **Soil & Fertilizer**: Soil health, fertilizer recommendations, organic farming

IMPORTANT RULES:
1. ALWAYS respond in %s language using the appropriate script
2. Be practical and actionable - farmers need immediate solutions
3. Use bullet points, emojis, and formatting for clarity
4. Mention specific dosages, timings, and methods
5. If unsure, recommend contacting local Krishi Vigyan Kendra
6. Be encouraging and supportive of the farmer
7. For government schemes, mention eligibility and how to apply
8. Include both organic and chemical solutions when relevant

CONTEXT:
- Farmer's name: %s
- Location: %s
- Current season: Consider Indian agricultural seasons (Kharif: June-Oct, Rabi: Oct-Mar, Zaid: Mar-June)

Remember: You are the farmer's trusted companion. Respond with empathy and expertise.`

const visionQuestionFormat = "The farmer has shared this image of their crop and asks: '%s'. Analyze the image and provide detailed diagnosis and treatment recommendations in %s."

// generate runs the generative path for one turn. On success the full
// exchange is appended to the conversation store before returning, so
// follow-up turns replay a history consistent with what the provider saw.
//
// The system instruction is only synthesized for the first turn of a
// conversation; continuation turns replay stored history for context
// instead of re-sending the instruction.
func (uc *implUseCase) generate(ctx context.Context, conversationID, message string,
	lang model.LanguageCode, imageData string, farmerName, location string) (string, error) {
	if uc.llm == nil {
		return "", advisory.ErrNotConfigured
	}

	history := uc.store.Get(conversationID)

	req := &llmprovider.Request{
		Temperature: generateTemperature,
		MaxTokens:   maxTokensText,
	}

	if len(history) == 0 {
		req.SystemInstruction = buildSystemPrompt(lang, farmerName, location)
	} else {
		for _, turn := range history {
			req.Messages = append(req.Messages, llmprovider.Message{
				Role:      string(turn.Role),
				Text:      turn.Content,
				ImageData: turn.ImageData,
			})
		}
	}

	userText := message
	if imageData != "" {
		imageData = normalizeImageURI(imageData)
		question := message
		if question == "" {
			question = "What is wrong with my crop?"
		}
		userText = fmt.Sprintf(visionQuestionFormat, question, lang.PromptName())
		req.MaxTokens = maxTokensVision
	}
	req.Messages = append(req.Messages, llmprovider.Message{
		Role:      string(model.RoleUser),
		Text:      userText,
		ImageData: imageData,
	})

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", mapProviderError(err)
	}

	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		return "", advisory.ErrEmptyResponse
	}

	uc.store.Append(conversationID,
		model.Turn{Role: model.RoleUser, Content: message, ImageData: imageData},
		model.Turn{Role: model.RoleAssistant, Content: reply},
	)
	return reply, nil
}

func buildSystemPrompt(lang model.LanguageCode, farmerName, location string) string {
	if farmerName == "" {
		farmerName = "Kisan"
	}
	if location == "" {
		location = "India"
	}
	return fmt.Sprintf(systemPromptFormat, lang.PromptName(), farmerName, location)
}

// mapProviderError translates manager failures onto the advisory taxonomy.
// Empty-output failures are treated the same as transport failures.
func mapProviderError(err error) error {
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return advisory.ErrNotConfigured
	case errors.Is(err, llmprovider.ErrEmptyResponse):
		return advisory.ErrEmptyResponse
	default:
		return fmt.Errorf("%w: %v", advisory.ErrTransport, err)
	}
}

// normalizeImageURI ensures image payloads carry a data URI prefix.
func normalizeImageURI(imageData string) string {
	if strings.Contains(imageData, ",") {
		return imageData
	}
	return "data:image/jpeg;base64," + imageData
}
