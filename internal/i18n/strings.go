package i18n

import "krishisaathi/internal/model"

// systemStrings holds the fixed strings the engine emits outside the
// response-template tables. Keys are "module.key". Languages without an
// entry fall back to English in Get.
var systemStrings = map[model.LanguageCode]map[string]string{
	model.LanguageEnglish: {
		"common.farmer":           "Farmer",
		"chatbot.profile_updated": "✅ Updated: %s. Please refresh to see changes.",
		"chatbot.field_state":     "State",
		"chatbot.field_district":  "District",
		"chatbot.field_village":   "Village",
		"chatbot.image_error":     "🔍 Image analysis requires the AI service. Please configure an API key or describe the problem in text.",
	},
	model.LanguageHindi: {
		"common.farmer":           "किसान",
		"chatbot.profile_updated": "✅ अपडेट किया गया: %s। पेज रिफ्रेश करें।",
		"chatbot.field_state":     "राज्य",
		"chatbot.field_district":  "ज़िला",
		"chatbot.field_village":   "गांव",
		"chatbot.image_error":     "🔍 छवि विश्लेषण के लिए AI सेवा आवश्यक है। कृपया API key सेट करें या समस्या का विवरण टाइप करें।",
	},
}
