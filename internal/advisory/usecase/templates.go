package usecase

import "krishisaathi/internal/model"

// templateSet holds the pre-authored response texts for one language.
// Format strings use positional %s verbs; the renderers in render.go fix
// the slot order per kind.
type templateSet struct {
	greeting string

	// cropInfo slots: crop, season, water, soil, yield, pests, diseases
	cropInfo string
	// pestInfo slots: pest, local name, affects, identification, organic,
	// chemical, prevention
	pestInfo string
	// diseaseInfo slots: disease, local name, affects, symptoms, treatment,
	// prevention
	diseaseInfo string
	// schemeInfo slots: name, local name, benefit, eligibility, how to
	// apply, documents
	schemeInfo string

	// notFound slot: general tips block
	notFound string
	// imageAnalysis slot: symptom diagnosis text
	imageAnalysis string

	mandiPrices string
	schemeList  string
	pestTips    string
	weatherTips string
	soilAdvice  string

	generalTips []string
}

// responseTemplates is keyed by language. Languages without their own set
// fall back to English via templatesFor, never to an error.
var responseTemplates = map[model.LanguageCode]templateSet{
	model.LanguageEnglish: {
		greeting: "Hello! I'm your intelligent farming assistant. Ask me about crops, pests, diseases, weather, mandi prices, or government schemes. How can I help you today?",

		cropInfo:    "Here's information about %s:\n\n🌱 **Season**: %s\n💧 **Water Need**: %s\n🌍 **Soil Type**: %s\n📊 **Yield Potential**: %s\n\n**Common Pests**: %s\n**Common Diseases**: %s",
		pestInfo:    "**%s** (%s)\n\n**Affects**: %s\n**Identification**: %s\n\n**🌿 Organic Treatment**:\n%s\n\n**💊 Chemical Treatment**:\n%s\n\n**🛡️ Prevention**:\n%s",
		diseaseInfo: "**%s** (%s)\n\n**Affects**: %s\n**Symptoms**: %s\n\n**Treatment**:\n%s\n\n**Prevention**:\n%s",
		schemeInfo:  "**%s** (%s)\n\n💰 **Benefit**: %s\n👤 **Eligibility**: %s\n📝 **How to Apply**: %s\n📄 **Documents Needed**: %s",

		notFound:      "I don't have specific information about that, but here are some general tips:\n\n%s",
		imageAnalysis: "%s\n\n📞 **Need more help?** Contact your local Krishi Vigyan Kendra or agriculture officer.",

		mandiPrices: "🌾 **Current Mandi Prices** (indicative):\n\nWheat: ₹2,200-2,400/quintal\nPaddy: ₹2,100-2,300/quintal\nCotton: ₹6,000-6,500/quintal\nSoybean: ₹4,200-4,600/quintal\nSugarcane: ₹340-380/quintal\n\n💡 Check eNAM (enam.gov.in) for real-time prices in your area.",
		schemeList:  "**Major Government Schemes**:\n\n1. 🌾 **PM-KISAN**: ₹6000/year\n2. 🛡️ **Fasal Bima Yojana**: Crop insurance at low premium\n3. 💳 **Kisan Credit Card**: Loan at 4% interest\n4. 🧪 **Soil Health Card**: Free soil testing\n5. 📱 **eNAM**: Online trading\n\nAsk about any specific scheme for details.",
		pestTips:    "For pest management:\n\n🌿 **Organic methods**:\n• Neem oil 5ml/liter spray\n• Release Trichogramma cards\n• Pheromone traps 5/hectare\n\n💡 **Chemical control**: Only when pest crosses Economic Threshold Level.\n\n📞 Tell me your crop name for specific pest management advice.",
		weatherTips: "**Weather-based Advisory**:\n\n☀️ **Hot weather**:\n• Irrigate in morning/evening\n• Apply mulch to conserve moisture\n\n🌧️ **Rain expected**:\n• Avoid pesticide spray\n• Ensure drainage\n\n❄️ **Cold wave**:\n• Light irrigation in evening (frost protection)\n• Cover sensitive crops\n\n📱 Check Meghdoot or Kisan Suvidha app for accurate forecast.",
		soilAdvice:  "**Soil & Fertilizer Advice**:\n\n🧪 **Get soil tested** - It's FREE!\n\n**General recommendations**:\n• Nitrogen (N): from Urea\n• Phosphorus (P): from DAP\n• Potash (K): from MOP\n\n💡 **Organic options**:\n• Vermicompost 2-5 tonnes/hectare\n• Jeevamrit/Ghanjeevamrit\n• Green manuring\n\n⚠️ **Caution**: Don't apply fertilizers without soil test.",

		generalTips: []string{
			"🌱 Scout your fields regularly for early pest detection",
			"💧 Irrigate based on crop needs, not on fixed schedule",
			"🧪 Get soil tested every season for balanced fertilization",
			"📱 Use eNAM app for better market prices",
			"📞 Contact local Krishi Vigyan Kendra for expert advice",
		},
	},
	model.LanguageHindi: {
		greeting: "नमस्ते! मैं आपका कृषि सहायक हूं। फसलों, कीटों, रोगों, मौसम, मंडी भाव या सरकारी योजनाओं के बारे में पूछें। आज मैं आपकी क्या मदद कर सकता हूं?",

		cropInfo:    "**%s** की जानकारी:\n\n🌱 **सीज़न**: %s\n💧 **पानी की आवश्यकता**: %s\n🌍 **मिट्टी का प्रकार**: %s\n📊 **उपज क्षमता**: %s\n\n**प्रमुख कीट**: %s\n**प्रमुख रोग**: %s",
		pestInfo:    "**%s** (%s)\n\n**प्रभावित फसलें**: %s\n**पहचान**: %s\n\n**🌿 जैविक उपचार**:\n%s\n\n**💊 रासायनिक उपचार**:\n%s\n\n**🛡️ रोकथाम**:\n%s",
		diseaseInfo: "**%s** (%s)\n\n**प्रभावित फसलें**: %s\n**लक्षण**: %s\n\n**उपचार**:\n%s\n\n**रोकथाम**:\n%s",
		schemeInfo:  "**%s** (%s)\n\n💰 **लाभ**: %s\n👤 **पात्रता**: %s\n📝 **आवेदन कैसे करें**: %s\n📄 **आवश्यक दस्तावेज़**: %s",

		notFound:      "इसके बारे में विशेष जानकारी नहीं है, लेकिन कुछ सामान्य सुझाव:\n\n%s",
		imageAnalysis: "%s\n\n📞 **अधिक मदद चाहिए?** अपने स्थानीय कृषि विज्ञान केंद्र या कृषि अधिकारी से संपर्क करें।",

		mandiPrices: "🌾 **वर्तमान मंडी भाव** (अनुमानित):\n\nगेहूं: ₹2,200-2,400/क्विंटल\nधान: ₹2,100-2,300/क्विंटल\nकपास: ₹6,000-6,500/क्विंटल\nसोयाबीन: ₹4,200-4,600/क्विंटल\nगन्ना: ₹340-380/क्विंटल\n\n💡 अपने क्षेत्र की ताज़ा कीमतों के लिए eNAM (enam.gov.in) देखें।",
		schemeList:  "**प्रमुख सरकारी योजनाएं**:\n\n1. 🌾 **PM-KISAN**: ₹6000/वर्ष\n2. 🛡️ **फसल बीमा योजना**: कम प्रीमियम पर बीमा\n3. 💳 **किसान क्रेडिट कार्ड**: 4% ब्याज पर ऋण\n4. 🧪 **मृदा स्वास्थ्य कार्ड**: मुफ्त मिट्टी जांच\n5. 📱 **eNAM**: ऑनलाइन मंडी\n\nकिसी योजना के बारे में विस्तार से जानने के लिए उसका नाम बताएं।",
		pestTips:    "कीट प्रबंधन के लिए:\n\n🌿 **जैविक विधियां**:\n• नीम तेल 5ml/लीटर छिड़काव\n• ट्राइकोग्रामा कार्ड लगाएं\n• फेरोमोन ट्रैप 5/हेक्टेयर\n\n💡 **रासायनिक नियंत्रण**: केवल आर्थिक क्षति स्तर (ETL) पार होने पर करें।\n\n📞 अपनी फसल का नाम बताएं तो विस्तृत जानकारी दे सकता हूं।",
		weatherTips: "**मौसम आधारित सलाह**:\n\n☀️ **गर्मी में**:\n• सुबह/शाम सिंचाई करें\n• पलवार (मल्चिंग) करें\n\n🌧️ **बारिश की संभावना हो तो**:\n• कीटनाशक छिड़काव न करें\n• जल निकासी सुनिश्चित करें\n\n❄️ **ठंड में**:\n• शाम को हल्की सिंचाई (पाला से बचाव)\n• पौधों को ढकें\n\n📱 **सटीक मौसम** के लिए Meghdoot या Kisan Suvidha ऐप देखें।",
		soilAdvice:  "**मृदा एवं उर्वरक सलाह**:\n\n🧪 **मिट्टी जांच** करवाएं - मुफ्त है!\n\n**सामान्य सिफारिश**:\n• नाइट्रोजन (N): यूरिया से\n• फास्फोरस (P): DAP से\n• पोटाश (K): MOP से\n\n💡 **जैविक विकल्प**:\n• वर्मीकम्पोस्ट 2-5 टन/हेक्टेयर\n• जीवामृत/घनजीवामृत\n• हरी खाद\n\n⚠️ **सावधानी**: बिना मिट्टी जांच के उर्वरक न डालें।",

		generalTips: []string{
			"🌱 कीट-रोगों की जल्दी पहचान के लिए नियमित खेत निरीक्षण करें",
			"💧 सिंचाई फसल की जरूरत के अनुसार करें",
			"🧪 हर सीज़न मिट्टी जांच करवाएं",
			"📱 बेहतर बाजार भाव के लिए eNAM ऐप का उपयोग करें",
			"📞 विशेषज्ञ सलाह के लिए कृषि विज्ञान केंद्र से संपर्क करें",
		},
	},
}

// templatesFor selects the template set for a language, falling back to
// English when the language has no set of its own.
func templatesFor(lang model.LanguageCode) templateSet {
	if set, ok := responseTemplates[lang]; ok {
		return set
	}
	return responseTemplates[model.LanguageEnglish]
}
