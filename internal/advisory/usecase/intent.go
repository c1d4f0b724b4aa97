package usecase

import "strings"

// Intent is the coarse category of what the user is asking about.
type Intent string

const (
	IntentPest     Intent = "pest"
	IntentDisease  Intent = "disease"
	IntentCrop     Intent = "crop"
	IntentScheme   Intent = "scheme"
	IntentWeather  Intent = "weather"
	IntentMandi    Intent = "mandi"
	IntentSoil     Intent = "soil"
	IntentGreeting Intent = "greeting"
	IntentGeneral  Intent = "general"
)

// intentTriggers maps each intent to its trigger substrings across the
// supported languages (native script and transliterated). Order matters:
// intents are tested in declaration order and the first hit wins. Pest and
// disease outrank crop so a problem report that names a crop still gets a
// problem-focused answer.
var intentTriggers = []struct {
	intent   Intent
	triggers []string
}{
	{IntentPest, []string{
		"pest", "कीट", "insect", "कीड़ा", "borer", "छेदक", "caterpillar",
		"सुंडी", "bollworm", "whitefly", "aphid", "माहू", "armyworm",
	}},
	{IntentDisease, []string{
		"disease", "रोग", "blight", "झुलसा", "rust", "गेरुआ", "wilt", "उकठा",
		"mildew", "फफूंद", "blast", "yellow", "पीला", "rot", "सड़न",
	}},
	{IntentCrop, []string{
		"crop", "फसल", "paddy", "धान", "wheat", "गेहूं", "cotton", "कपास",
		"maize", "मक्का", "soybean", "सोयाबीन", "sugarcane", "गन्ना",
		"groundnut", "मूंगफली", "chickpea", "चना",
	}},
	{IntentScheme, []string{
		"scheme", "योजना", "pm kisan", "पीएम किसान", "fasal bima", "बीमा",
		"kcc", "credit card", "subsidy", "सब्सिडी", "loan", "ऋण",
	}},
	{IntentWeather, []string{
		"weather", "मौसम", "rain", "बारिश", "temperature", "तापमान",
		"forecast", "hot", "cold", "ठंड", "humidity",
	}},
	{IntentMandi, []string{
		"mandi", "मंडी", "price", "भाव", "rate", "दर", "sell", "बेचना",
		"market", "बाजार",
	}},
	{IntentSoil, []string{
		"soil", "मिट्टी", "fertilizer", "उर्वरक", "खाद", "nutrient", "पोषक",
		"nitrogen", "urea", "यूरिया", "dap",
	}},
	{IntentGreeting, []string{
		"hello", "hi", "namaste", "नमस्ते", "help", "मदद", "hii", "hey",
	}},
}

// classify maps a message to an intent by case-insensitive substring
// containment. A pure function of the trigger tables; no match yields
// IntentGeneral. Empty input is the caller's concern, not classified here.
func classify(message string) Intent {
	msg := strings.ToLower(message)
	for _, entry := range intentTriggers {
		for _, trigger := range entry.triggers {
			if strings.Contains(msg, trigger) {
				return entry.intent
			}
		}
	}
	return IntentGeneral
}
