package model

// LanguageCode identifies one of the supported interface languages
// (15 major Indian languages + English). ISO 639 codes.
type LanguageCode string

const (
	LanguageHindi     LanguageCode = "hi"
	LanguageBengali   LanguageCode = "bn"
	LanguageTelugu    LanguageCode = "te"
	LanguageMarathi   LanguageCode = "mr"
	LanguageTamil     LanguageCode = "ta"
	LanguageGujarati  LanguageCode = "gu"
	LanguageKannada   LanguageCode = "kn"
	LanguageOdia      LanguageCode = "or"
	LanguageMalayalam LanguageCode = "ml"
	LanguagePunjabi   LanguageCode = "pa"
	LanguageAssamese  LanguageCode = "as"
	LanguageMaithili  LanguageCode = "mai"
	LanguageSantali   LanguageCode = "sat"
	LanguageKashmiri  LanguageCode = "ks"
	LanguageEnglish   LanguageCode = "en"
)

// DefaultLanguage is the fallback for unknown or missing codes.
const DefaultLanguage = LanguageHindi

// SupportedLanguages lists all codes in declaration order.
var SupportedLanguages = []LanguageCode{
	LanguageHindi, LanguageBengali, LanguageTelugu, LanguageMarathi,
	LanguageTamil, LanguageGujarati, LanguageKannada, LanguageOdia,
	LanguageMalayalam, LanguagePunjabi, LanguageAssamese, LanguageMaithili,
	LanguageSantali, LanguageKashmiri, LanguageEnglish,
}

// languageNames maps each code to its display name for LLM prompts
// (English name plus native script).
var languageNames = map[LanguageCode]string{
	LanguageHindi:     "Hindi (हिंदी)",
	LanguageBengali:   "Bengali (বাংলা)",
	LanguageTelugu:    "Telugu (తెలుగు)",
	LanguageMarathi:   "Marathi (मराठी)",
	LanguageTamil:     "Tamil (தமிழ்)",
	LanguageGujarati:  "Gujarati (ગુજરાતી)",
	LanguageKannada:   "Kannada (ಕನ್ನಡ)",
	LanguageOdia:      "Odia (ଓଡ଼ିଆ)",
	LanguageMalayalam: "Malayalam (മലയാളം)",
	LanguagePunjabi:   "Punjabi (ਪੰਜਾਬੀ)",
	LanguageAssamese:  "Assamese (অসমীয়া)",
	LanguageMaithili:  "Maithili (मैथिली)",
	LanguageSantali:   "Santali (ᱥᱟᱱᱛᱟᱲᱤ)",
	LanguageKashmiri:  "Kashmiri (कॉशुर)",
	LanguageEnglish:   "English",
}

// IsSupported reports whether code is one of the supported languages.
func (c LanguageCode) IsSupported() bool {
	_, ok := languageNames[c]
	return ok
}

// PromptName returns the language name used inside LLM system prompts.
func (c LanguageCode) PromptName() string {
	if name, ok := languageNames[c]; ok {
		return name
	}
	return languageNames[DefaultLanguage]
}

// ParseLanguage normalizes a raw code. Unknown or empty codes degrade to
// DefaultLanguage, never to an error.
func ParseLanguage(raw string) LanguageCode {
	code := LanguageCode(raw)
	if code.IsSupported() {
		return code
	}
	return DefaultLanguage
}
