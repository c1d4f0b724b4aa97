package knowledge

const symptomHealthy = "healthy_crop"

var cropTable = []Crop{
	{
		Key:            "paddy",
		NameLocal:      "धान",
		Seasons:        []string{"kharif"},
		WaterNeed:      "high",
		SoilTypes:      []string{"clay", "loamy"},
		CommonPests:    []string{"stem_borer", "brown_planthopper", "leaf_folder", "gall_midge"},
		CommonDiseases: []string{"blast", "bacterial_leaf_blight", "sheath_blight", "tungro"},
		YieldPotential: "4-6 tonnes/hectare",
	},
	{
		Key:            "wheat",
		NameLocal:      "गेहूं",
		Seasons:        []string{"rabi"},
		WaterNeed:      "medium",
		SoilTypes:      []string{"loamy", "clay loam"},
		CommonPests:    []string{"aphid", "termite", "pink_borer", "army_worm"},
		CommonDiseases: []string{"rust", "loose_smut", "karnal_bunt", "powdery_mildew"},
		YieldPotential: "4-5 tonnes/hectare",
	},
	{
		Key:            "cotton",
		NameLocal:      "कपास",
		Seasons:        []string{"kharif"},
		WaterNeed:      "medium",
		SoilTypes:      []string{"black cotton soil", "loamy"},
		CommonPests:    []string{"bollworm", "whitefly", "aphid", "jassid", "pink_bollworm"},
		CommonDiseases: []string{"bacterial_blight", "grey_mildew", "leaf_spot", "root_rot"},
		YieldPotential: "15-20 quintals/hectare",
	},
	{
		Key:            "sugarcane",
		NameLocal:      "गन्ना",
		Seasons:        []string{"year_round"},
		WaterNeed:      "very high",
		SoilTypes:      []string{"loamy", "clay loam"},
		CommonPests:    []string{"top_borer", "stem_borer", "pyrilla", "white_grub"},
		CommonDiseases: []string{"red_rot", "smut", "wilt", "ratoon_stunting"},
		YieldPotential: "80-100 tonnes/hectare",
	},
	{
		Key:            "maize",
		NameLocal:      "मक्का",
		Seasons:        []string{"kharif", "rabi", "zaid"},
		WaterNeed:      "medium",
		SoilTypes:      []string{"loamy", "sandy loam"},
		CommonPests:    []string{"stem_borer", "fall_armyworm", "aphid", "shoot_fly"},
		CommonDiseases: []string{"turcicum_leaf_blight", "downy_mildew", "stalk_rot", "rust"},
		YieldPotential: "5-8 tonnes/hectare",
	},
	{
		Key:            "soybean",
		NameLocal:      "सोयाबीन",
		Seasons:        []string{"kharif"},
		WaterNeed:      "medium",
		SoilTypes:      []string{"loamy", "clay loam"},
		CommonPests:    []string{"stem_fly", "girdle_beetle", "leaf_miner", "pod_borer"},
		CommonDiseases: []string{"yellow_mosaic", "bacterial_pustule", "anthracnose", "charcoal_rot"},
		YieldPotential: "2-3 tonnes/hectare",
	},
	{
		Key:            "groundnut",
		NameLocal:      "मूंगफली",
		Seasons:        []string{"kharif", "rabi"},
		WaterNeed:      "medium",
		SoilTypes:      []string{"sandy loam", "loamy"},
		CommonPests:    []string{"white_grub", "aphid", "thrips", "leaf_miner"},
		CommonDiseases: []string{"tikka_disease", "collar_rot", "stem_rot", "rust"},
		YieldPotential: "2-3 tonnes/hectare",
	},
	{
		Key:            "chickpea",
		NameLocal:      "चना",
		Seasons:        []string{"rabi"},
		WaterNeed:      "low",
		SoilTypes:      []string{"loamy", "clay loam"},
		CommonPests:    []string{"pod_borer", "cutworm", "aphid"},
		CommonDiseases: []string{"wilt", "ascochyta_blight", "collar_rot", "stunt"},
		YieldPotential: "1.5-2.5 tonnes/hectare",
	},
}

var pestTable = []Pest{
	{
		Key:            "stem_borer",
		NameLocal:      "तना छेदक",
		Affects:        []string{"paddy", "maize", "sugarcane"},
		Identification: "Larvae bore into stems, cause dead hearts in vegetative stage and white ears at flowering",
		OrganicTreatment: []string{
			"Release Trichogramma wasps (50,000/ha) at weekly intervals",
			"Install pheromone traps (5/ha)",
			"Apply neem oil 5ml/liter spray",
			"Collect and destroy egg masses",
		},
		ChemicalTreatment: []string{
			"Carbofuran 3G granules 25 kg/ha in leaf whorls",
			"Chlorantraniliprole 18.5 SC @ 0.3ml/liter spray",
			"Fipronil 5 SC @ 2ml/liter spray",
		},
		Prevention: []string{
			"Use resistant varieties",
			"Maintain proper water management",
			"Remove and destroy stubbles after harvest",
			"Avoid late planting",
		},
	},
	{
		Key:            "bollworm",
		NameLocal:      "बॉलवर्म / सुंडी",
		Affects:        []string{"cotton", "chickpea", "tomato"},
		Identification: "Green/brown caterpillar with lateral stripes, bores into cotton bolls and chickpea pods",
		OrganicTreatment: []string{
			"HaNPV (Helicoverpa Nuclear Polyhedrosis Virus) 250 LE/ha",
			"Bacillus thuringiensis (Bt) 1kg/ha spray",
			"Neem seed kernel extract 5% spray",
			"Bird perches 20/ha",
		},
		ChemicalTreatment: []string{
			"Emamectin benzoate 5 SG @ 0.4g/liter",
			"Spinosad 45 SC @ 0.3ml/liter",
			"Profenophos 50 EC @ 2ml/liter",
		},
		Prevention: []string{
			"Early sowing",
			"Trap crops like marigold",
			"Pheromone traps 5/ha",
			"Regular monitoring",
		},
	},
	{
		Key:            "whitefly",
		NameLocal:      "सफेद मक्खी",
		Affects:        []string{"cotton", "vegetables", "pulses"},
		Identification: "Tiny white flying insects on leaf undersides, cause yellowing and transmit viral diseases",
		OrganicTreatment: []string{
			"Yellow sticky traps 25/ha",
			"Neem oil 2ml/liter + soap solution spray",
			"Verticillium lecanii 2ml/liter spray",
			"Spray in evening hours",
		},
		ChemicalTreatment: []string{
			"Diafenthiuron 50 WP @ 1g/liter",
			"Spiromesifen 240 SC @ 0.8ml/liter",
			"Pyriproxyfen 10 EC @ 1ml/liter",
		},
		Prevention: []string{
			"Remove weed hosts",
			"Avoid excess nitrogen",
			"Maintain field hygiene",
			"Use resistant varieties",
		},
	},
	{
		Key:            "aphid",
		NameLocal:      "माहू / चेपा",
		Affects:        []string{"wheat", "mustard", "vegetables", "cotton"},
		Identification: "Small soft-bodied insects in clusters on young shoots and leaf undersides",
		OrganicTreatment: []string{
			"Lady beetle release (natural enemy)",
			"Neem oil 5ml/liter spray",
			"Soap water spray (5g/liter)",
			"Remove heavily infested parts",
		},
		ChemicalTreatment: []string{
			"Imidacloprid 17.8 SL @ 0.3ml/liter",
			"Thiamethoxam 25 WG @ 0.3g/liter",
			"Dimethoate 30 EC @ 2ml/liter",
		},
		Prevention: []string{
			"Timely sowing",
			"Avoid excess nitrogen",
			"Reflective mulches",
			"Crop rotation",
		},
	},
	{
		Key:            "fall_armyworm",
		NameLocal:      "फॉल आर्मीवर्म / सैनिक कीट",
		Affects:        []string{"maize", "sorghum", "millets"},
		Identification: "Brown/green caterpillar with inverted Y on head, feeds in whorls, leaves ragged appearance",
		OrganicTreatment: []string{
			"Sand + lime (9:1) application in whorls",
			"Metarhizium anisopliae spray",
			"Bacillus thuringiensis spray",
			"Release Telenomus parasitoid",
		},
		ChemicalTreatment: []string{
			"Spinetoram 11.7 SC @ 0.5ml/liter",
			"Chlorantraniliprole 18.5 SC @ 0.4ml/liter",
			"Emamectin benzoate 5 SG @ 0.4g/liter",
		},
		Prevention: []string{
			"Early detection crucial",
			"Pheromone traps for monitoring",
			"Intercropping with pulses",
			"Avoid monocropping",
		},
	},
	{
		Key:            "brown_planthopper",
		NameLocal:      "भूरा फुदका",
		Affects:        []string{"paddy"},
		Identification: "Small brown insects at base of rice tillers, cause hopper burn in circular patches",
		OrganicTreatment: []string{
			"Drain water from field for 3-4 days",
			"Beauveria bassiana spray",
			"Avoid broad-spectrum insecticides",
			"Encourage natural enemies (spiders, dragonflies)",
		},
		ChemicalTreatment: []string{
			"Pymetrozine 50 WG @ 0.6g/liter",
			"Buprofezin 25 SC @ 1.6ml/liter",
			"Dinotefuran 20 SG @ 0.4g/liter",
		},
		Prevention: []string{
			"Resistant varieties (very effective)",
			"Avoid excess nitrogen",
			"Do not spray in early stages",
			"Maintain 20-25 hills gap for ventilation",
		},
	},
}

var diseaseTable = []Disease{
	{
		Key:            "blast",
		NameLocal:      "झुलसा रोग / ब्लास्ट",
		Affects:        []string{"paddy"},
		Symptoms:       []string{"diamond_shaped_lesions", "node_blast", "neck_blast", "panicle_blast"},
		Identification: "Diamond/spindle-shaped spots with grey center and brown margin on leaves",
		Treatment: []string{
			"Tricyclazole 75 WP @ 0.6g/liter spray",
			"Isoprothiolane 40 EC @ 1.5ml/liter",
			"Carbendazim 50 WP @ 1g/liter",
		},
		Prevention: []string{
			"Resistant varieties (most effective)",
			"Balanced fertilization",
			"Proper water management",
			"Avoid late planting",
		},
	},
	{
		Key:            "rust",
		NameLocal:      "रतुआ / गेरुआ",
		Affects:        []string{"wheat", "pulses"},
		Symptoms:       []string{"orange_pustules_on_leaves", "yellow_stripes", "black_pustules_on_stems"},
		Identification: "Small orange-brown pustules on leaves that release rusty spores when touched",
		Treatment: []string{
			"Propiconazole 25 EC @ 1ml/liter",
			"Tebuconazole 25.9 EC @ 1ml/liter",
			"Mancozeb 75 WP @ 2.5g/liter (preventive)",
		},
		Prevention: []string{
			"Grow resistant varieties",
			"Early sowing",
			"Remove volunteer wheat plants",
			"Balanced fertilization",
		},
	},
	{
		Key:            "bacterial_leaf_blight",
		NameLocal:      "जीवाणु पत्ती झुलसा",
		Affects:        []string{"paddy"},
		Symptoms:       []string{"water_soaked_lesions", "yellow_to_white_lesions", "milky_ooze"},
		Identification: "Yellow to white lesions starting from leaf tips, bacterial ooze in morning",
		Treatment: []string{
			"Streptocycline 0.025% + Copper oxychloride 0.3% spray",
			"Drain water and stop nitrogen application",
			"Remove infected leaves",
		},
		Prevention: []string{
			"Resistant varieties",
			"Avoid excess nitrogen",
			"Balanced potassium application",
			"Avoid walking in wet fields",
		},
	},
	{
		Key:            "wilt",
		NameLocal:      "उकठा / विल्ट",
		Affects:        []string{"chickpea", "pigeonpea", "cotton"},
		Symptoms:       []string{"yellowing", "wilting", "brown_vascular_tissue", "sudden_death"},
		Identification: "Plants wilt and dry despite moisture, brown discoloration in vascular tissue when stem cut",
		Treatment: []string{
			"Carbendazim 50 WP seed treatment @ 2g/kg",
			"Trichoderma viride seed treatment",
			"Soil drenching with fungicide",
		},
		Prevention: []string{
			"Resistant varieties (most important)",
			"Crop rotation (3-4 years)",
			"Deep summer ploughing",
			"Avoid waterlogging",
		},
	},
	{
		Key:            "yellow_mosaic",
		NameLocal:      "पीला मोज़ेक",
		Affects:        []string{"soybean", "mungbean", "urdbean"},
		Symptoms:       []string{"yellow_patches_on_leaves", "mosaic_pattern", "stunted_growth", "reduced_pods"},
		Identification: "Irregular yellow and green patches on leaves giving mosaic appearance, transmitted by whitefly",
		Treatment: []string{
			"Control whitefly vector",
			"Imidacloprid seed treatment",
			"Remove and destroy infected plants",
		},
		Prevention: []string{
			"Resistant/tolerant varieties (best control)",
			"Early sowing to escape whitefly peak",
			"Border crop of maize/sorghum",
			"Yellow sticky traps",
		},
	},
	{
		Key:            "powdery_mildew",
		NameLocal:      "चूर्णी फफूंद / पाउडरी मिल्ड्यू",
		Affects:        []string{"wheat", "vegetables", "grapes"},
		Symptoms:       []string{"white_powdery_growth", "yellowing", "leaf_distortion"},
		Identification: "White powdery coating on leaves, stems, and pods",
		Treatment: []string{
			"Sulphur 80 WP @ 2.5g/liter",
			"Karathane 48 EC @ 1ml/liter",
			"Hexaconazole 5 EC @ 1ml/liter",
		},
		Prevention: []string{
			"Resistant varieties",
			"Proper spacing for air circulation",
			"Avoid overhead irrigation",
		},
	},
}

var schemeTable = []Scheme{
	{
		Key:         "pm_kisan",
		Name:        "PM-KISAN Samman Nidhi",
		NameLocal:   "पीएम किसान सम्मान निधि",
		Benefit:     "₹6000 per year in 3 installments of ₹2000 each",
		Eligibility: "All landholding farmer families",
		HowToApply:  "Register at pmkisan.gov.in or through CSC center",
		Documents:   []string{"Aadhaar", "Bank Account", "Land Records (Khatauni)"},
	},
	{
		Key:         "pm_fasal_bima",
		Name:        "PM Fasal Bima Yojana",
		NameLocal:   "पीएम फसल बीमा योजना",
		Benefit:     "Crop insurance with minimal premium (1.5-2% for Rabi/Kharif)",
		Eligibility: "All farmers including sharecroppers and tenant farmers",
		HowToApply:  "Apply through bank, CSC, or insurance company before sowing deadline",
		Documents:   []string{"Aadhaar", "Bank Account", "Land Records", "Sowing Certificate"},
	},
	{
		Key:         "kcc",
		Name:        "Kisan Credit Card",
		NameLocal:   "किसान क्रेडिट कार्ड",
		Benefit:     "Short-term credit up to ₹3 lakh at 4% interest (with subsidy)",
		Eligibility: "All farmers, including tenant farmers",
		HowToApply:  "Apply at any bank branch with land documents",
		Documents:   []string{"Aadhaar", "Land Records", "Identity Proof", "Passport Photo"},
	},
	{
		Key:         "soil_health_card",
		Name:        "Soil Health Card Scheme",
		NameLocal:   "मृदा स्वास्थ्य कार्ड",
		Benefit:     "Free soil testing and fertilizer recommendations",
		Eligibility: "All farmers",
		HowToApply:  "Apply through agriculture department or Krishi Vigyan Kendra",
		Documents:   []string{"Land Details", "Contact Information"},
	},
	{
		Key:         "e_nam",
		Name:        "e-NAM",
		NameLocal:   "ई-नाम",
		Benefit:     "Better prices through transparent online trading",
		Eligibility: "All farmers with produce to sell",
		HowToApply:  "Register at enam.gov.in or through registered mandi",
		Documents:   []string{"Aadhaar", "Bank Account", "Mobile Number"},
	},
}

var weatherTable = []WeatherAdvice{
	{
		Condition: "rain_expected",
		General: []string{
			"Postpone irrigation if rain expected within 24 hours",
			"Complete any pending pesticide sprays today",
			"Ensure field drainage is clear",
			"Harvest mature crops if possible",
		},
	},
	{
		Condition: "hot_weather",
		General: []string{
			"Irrigate during evening or early morning",
			"Apply mulch to conserve moisture",
			"Postpone transplanting to evening hours",
			"Provide shade to nurseries",
		},
	},
	{
		Condition: "cold_wave",
		General: []string{
			"Light irrigation in evening for frost protection",
			"Cover sensitive crops with straw/plastic",
			"Avoid irrigation during cold night",
			"Smoke/burning around field for frost protection",
		},
	},
}

var symptomTable = []SymptomPattern{
	{
		Key:      "yellow_leaves",
		Triggers: []string{"yellow", "पीला", "yellowing"},
		Response: "I notice yellowing in the leaves. This could be due to:\n1. **Nitrogen deficiency** - Apply urea at 20kg/acre\n2. **Iron deficiency** - Spray ferrous sulphate 0.5%\n3. **Viral infection** - Check for vector insects\n4. **Overwatering** - Ensure proper drainage",
	},
	{
		Key:      "brown_spots",
		Triggers: []string{"brown", "भूरा", "spot", "धब्बा"},
		Response: "The brown spots suggest a possible fungal or bacterial infection:\n1. **Fungal disease** - Spray Mancozeb 2.5g/liter\n2. **Bacterial blight** - Apply Streptocycline 1g/10 liters\n3. Remove and destroy heavily infected leaves",
	},
	{
		Key:      "wilting",
		Triggers: []string{"wilt", "मुर्झा", "wilting", "सूख"},
		Response: "Wilting can have several causes:\n1. **Check soil moisture** - If dry, irrigate immediately\n2. **Cut stem to check** - If brown inside, it's vascular wilt\n3. **Check roots** - If black/rotted, it's root disease\n4. **Apply Carbendazim** drench as treatment",
	},
	{
		Key:      "holes_in_leaves",
		Triggers: []string{"hole", "छेद", "eaten", "कटा"},
		Response: "The holes indicate insect feeding damage:\n1. **Caterpillars** - Spray Spinosad or Bt\n2. **Beetles** - Apply Chlorantraniliprole\n3. **Natural control** - Release Trichogramma cards\n4. Install light traps to monitor pests",
	},
	{
		Key:      "white_powder",
		Triggers: []string{"white", "सफेद", "powder", "चूर्ण"},
		Response: "This appears to be **Powdery Mildew** fungal infection:\n1. **Spray Sulphur** 80 WP at 2.5g/liter\n2. **Alternative** - Hexaconazole 1ml/liter\n3. **Organic option** - Milk spray (1:9 with water)\n4. Improve air circulation between plants",
	},
	{
		Key:      symptomHealthy,
		Triggers: nil,
		Response: "Your crop looks healthy! 🌱 Here are tips to maintain it:\n1. Continue balanced fertilization\n2. Scout regularly for early pest detection\n3. Maintain proper irrigation scheduling\n4. Check weather forecasts for any alerts",
	},
}
