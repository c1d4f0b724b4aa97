package usecase

import (
	"fmt"
	"strings"
	"unicode"

	"krishisaathi/internal/knowledge"
	"krishisaathi/internal/model"
)

// Projection caps bound the size of rendered responses. List-valued fields
// never enumerate beyond these counts.
const (
	maxTreatmentBullets = 3
	maxSymptomItems     = 4
	maxTreatmentItems   = 4
	maxAffectedItems    = 4
)

func renderGreeting(lang model.LanguageCode) string {
	return templatesFor(lang).greeting
}

func renderCrop(lang model.LanguageCode, crop knowledge.Crop) string {
	return fmt.Sprintf(templatesFor(lang).cropInfo,
		titleKey(crop.Key),
		joinComma(crop.Seasons, 0),
		crop.WaterNeed,
		joinComma(crop.SoilTypes, 0),
		crop.YieldPotential,
		joinComma(crop.CommonPests, maxAffectedItems),
		joinComma(crop.CommonDiseases, maxAffectedItems),
	)
}

func renderPest(lang model.LanguageCode, pest knowledge.Pest) string {
	return fmt.Sprintf(templatesFor(lang).pestInfo,
		titleKey(pest.Key),
		pest.NameLocal,
		joinComma(pest.Affects, 0),
		pest.Identification,
		bulletList(pest.OrganicTreatment, maxTreatmentBullets),
		bulletList(pest.ChemicalTreatment, maxTreatmentBullets),
		bulletList(pest.Prevention, maxTreatmentBullets),
	)
}

func renderDisease(lang model.LanguageCode, disease knowledge.Disease) string {
	return fmt.Sprintf(templatesFor(lang).diseaseInfo,
		titleKey(disease.Key),
		disease.NameLocal,
		joinComma(disease.Affects, 0),
		joinComma(disease.Symptoms, maxSymptomItems),
		bulletList(disease.Treatment, maxTreatmentItems),
		bulletList(disease.Prevention, maxTreatmentBullets),
	)
}

func renderScheme(lang model.LanguageCode, scheme knowledge.Scheme) string {
	return fmt.Sprintf(templatesFor(lang).schemeInfo,
		scheme.Name,
		scheme.NameLocal,
		scheme.Benefit,
		scheme.Eligibility,
		scheme.HowToApply,
		joinComma(scheme.Documents, 0),
	)
}

func renderSymptomAnalysis(lang model.LanguageCode, analysis string) string {
	return fmt.Sprintf(templatesFor(lang).imageAnalysis, analysis)
}

func renderNotFound(lang model.LanguageCode) string {
	set := templatesFor(lang)
	return fmt.Sprintf(set.notFound, strings.Join(set.generalTips, "\n"))
}

// joinComma joins up to max items with commas; max 0 means no cap.
func joinComma(items []string, max int) string {
	if max > 0 && len(items) > max {
		items = items[:max]
	}
	return strings.Join(items, ", ")
}

// bulletList renders up to max items as bullet lines.
func bulletList(items []string, max int) string {
	if max > 0 && len(items) > max {
		items = items[:max]
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}

// titleKey renders a table key for display: underscores become spaces and
// each word is title-cased ("stem_borer" to "Stem Borer").
func titleKey(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	r := []rune(w)
	if len(r) == 0 {
		return w
	}
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}
