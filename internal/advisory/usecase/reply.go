package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"krishisaathi/internal/advisory"
	"krishisaathi/internal/farmer"
	"krishisaathi/internal/model"
)

// Reply runs one dialogue turn. Order is fixed: profile slot extraction
// pre-empts everything, then the generative attempt, then the rule-based
// fallback. Every path terminates in a reply string; errors never reach
// the caller for a well-formed turn.
func (uc *implUseCase) Reply(ctx context.Context, sc model.Scope, input advisory.ChatInput) (advisory.ChatOutput, error) {
	lang := input.Language
	if !lang.IsSupported() {
		lang = model.DefaultLanguage
	}

	conversationID := input.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	msg := strings.TrimSpace(input.Message)
	out := advisory.ChatOutput{Language: lang, ConversationID: conversationID}

	farmerRec, haveFarmer := uc.lookupFarmer(ctx, sc, input)

	if haveFarmer && msg != "" {
		if reply, updated := uc.applyProfileUpdate(ctx, farmerRec, msg, lang); updated {
			out.Reply = reply
			return out, nil
		}
	}

	if msg == "" && input.ImageData == "" {
		out.Reply = renderGreeting(lang)
		return out, nil
	}

	var farmerName, location string
	if haveFarmer {
		farmerName = farmerRec.DisplayName()
		location = farmerRec.Location()
	}

	reply, err := uc.generate(ctx, conversationID, msg, lang, input.ImageData, farmerName, location)
	if err == nil {
		out.Reply = reply
		return out, nil
	}
	uc.l.Infof(ctx, "generative path unavailable conversation_id=%s error=%v", conversationID, err)

	// Image turns have no safe deterministic equivalent.
	if input.ImageData != "" {
		out.Reply = uc.i18n.Get(lang, "chatbot", "image_error")
		return out, nil
	}

	out.Reply = uc.ruleReply(msg, lang)
	return out, nil
}

// lookupFarmer loads the farmer record named by the turn, if any. A missing
// record is not an error; the turn just runs without profile context.
func (uc *implUseCase) lookupFarmer(ctx context.Context, sc model.Scope, input advisory.ChatInput) (model.Farmer, bool) {
	farmerID := input.FarmerID
	if farmerID == "" {
		farmerID = sc.FarmerID
	}
	if farmerID == "" || uc.farmers == nil {
		return model.Farmer{}, false
	}

	rec, err := uc.farmers.GetByID(ctx, farmerID)
	if err != nil {
		if !errors.Is(err, farmer.ErrNotFound) {
			uc.l.Warnf(ctx, "farmer lookup failed id=%s error=%v", farmerID, err)
		}
		return model.Farmer{}, false
	}
	return rec, true
}

// applyProfileUpdate extracts location assertions from the message and, on
// any hit, persists them and returns the localized confirmation.
func (uc *implUseCase) applyProfileUpdate(ctx context.Context, rec model.Farmer, msg string, lang model.LanguageCode) (string, bool) {
	update := extractProfile(msg)
	if len(update) == 0 {
		return "", false
	}

	if err := uc.farmers.UpdateLocation(ctx, rec.ID, update); err != nil {
		uc.l.Errorf(ctx, "profile update failed farmer_id=%s error=%v", rec.ID, err)
		return "", false
	}

	parts := make([]string, 0, len(update))
	for _, field := range farmer.FieldOrder {
		if value, ok := update[field]; ok {
			parts = append(parts, uc.i18n.Get(lang, "chatbot", "field_"+field)+"="+value)
		}
	}
	confirmation := fmt.Sprintf(uc.i18n.Get(lang, "chatbot", "profile_updated"), strings.Join(parts, ", "))
	return confirmation, true
}

// ruleReply is the deterministic fallback: classifier, entity resolver,
// synthesizer, in that order, against the knowledge base.
func (uc *implUseCase) ruleReply(msg string, lang model.LanguageCode) string {
	intent := classify(msg)

	switch intent {
	case IntentGreeting:
		return renderGreeting(lang)

	case IntentPest:
		if key := uc.resolveEntity(IntentPest, msg); key != "" {
			if pest, ok := uc.kb.Pest(key); ok {
				return renderPest(lang, pest)
			}
		}
		// No pest named. A named crop still pins the answer to its
		// primary pest; otherwise give generic pest guidance.
		if cropKey := uc.kb.FindCropKey(msg); cropKey != "" {
			if crop, ok := uc.kb.Crop(cropKey); ok && len(crop.CommonPests) > 0 {
				if pest, ok := uc.kb.Pest(crop.CommonPests[0]); ok {
					return renderPest(lang, pest)
				}
			}
		}
		return templatesFor(lang).pestTips

	case IntentDisease:
		if key := uc.resolveEntity(IntentDisease, msg); key != "" {
			if disease, ok := uc.kb.Disease(key); ok {
				return renderDisease(lang, disease)
			}
		}
		return renderSymptomAnalysis(lang, uc.kb.MatchSymptom(msg).Response)

	case IntentCrop:
		if key := uc.resolveEntity(IntentCrop, msg); key != "" {
			if crop, ok := uc.kb.Crop(key); ok {
				return renderCrop(lang, crop)
			}
		}

	case IntentScheme:
		if key := uc.resolveEntity(IntentScheme, msg); key != "" {
			if scheme, ok := uc.kb.Scheme(key); ok {
				return renderScheme(lang, scheme)
			}
		}
		return templatesFor(lang).schemeList

	case IntentMandi:
		return templatesFor(lang).mandiPrices

	case IntentWeather:
		return templatesFor(lang).weatherTips

	case IntentSoil:
		return templatesFor(lang).soilAdvice
	}

	return renderNotFound(lang)
}
