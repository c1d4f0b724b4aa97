package http

import (
	"krishisaathi/internal/advisory"
	"krishisaathi/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message        string `json:"message"         binding:"max=4000"`
	Language       string `json:"language"        binding:"max=8"`
	ImageBase64    string `json:"image_base64"    binding:"omitempty"`
	ConversationID string `json:"conversation_id" binding:"omitempty,max=64"`
	FarmerID       string `json:"farmer_id"       binding:"omitempty,max=64"`
}

func (r chatReq) validate() error { return nil }

// toInput builds the use-case input. An explicit language field wins over
// the header-resolved fallback.
func (r chatReq) toInput(fallback model.LanguageCode) advisory.ChatInput {
	lang := fallback
	if r.Language != "" {
		lang = model.ParseLanguage(r.Language)
	}
	return advisory.ChatInput{
		Message:        r.Message,
		Language:       lang,
		ImageData:      r.ImageBase64,
		ConversationID: r.ConversationID,
		FarmerID:       r.FarmerID,
	}
}

// ---

type historyReq struct {
	ConversationID string
}

func (r historyReq) validate() error { return nil }

func (r historyReq) toInput() advisory.HistoryInput {
	return advisory.HistoryInput{ConversationID: r.ConversationID}
}

// --- Response DTOs ---

type chatResp struct {
	Reply          string `json:"reply"`
	Language       string `json:"language"`
	ConversationID string `json:"conversation_id"`
}

func (h *handler) newChatResp(out advisory.ChatOutput) chatResp {
	return chatResp{
		Reply:          out.Reply,
		Language:       string(out.Language),
		ConversationID: out.ConversationID,
	}
}

type turnResp struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	HasImage bool   `json:"has_image"`
}

type historyResp struct {
	ConversationID string     `json:"conversation_id"`
	Turns          []turnResp `json:"turns"`
	Total          int        `json:"total"`
}

func (h *handler) newHistoryResp(id string, out advisory.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnResp{
			Role:     string(t.Role),
			Content:  t.Content,
			HasImage: t.ImageData != "",
		}
	}
	return historyResp{
		ConversationID: id,
		Turns:          turns,
		Total:          len(turns),
	}
}

type languageResp struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type languagesResp struct {
	Languages []languageResp `json:"languages"`
	Default   string         `json:"default"`
}

func (h *handler) newLanguagesResp() languagesResp {
	langs := make([]languageResp, len(model.SupportedLanguages))
	for i, code := range model.SupportedLanguages {
		langs[i] = languageResp{
			Code: string(code),
			Name: code.PromptName(),
		}
	}
	return languagesResp{
		Languages: langs,
		Default:   string(model.DefaultLanguage),
	}
}
