package knowledge

// Crop is one cultivated crop with its agronomy profile. NameLocal is the
// native-script (Hindi) name used as a lookup synonym.
type Crop struct {
	Key            string
	NameLocal      string
	Seasons        []string
	WaterNeed      string
	SoilTypes      []string
	CommonPests    []string
	CommonDiseases []string
	YieldPotential string
}

// Pest is one pest entry with identification and treatment guidance.
type Pest struct {
	Key               string
	NameLocal         string
	Affects           []string
	Identification    string
	OrganicTreatment  []string
	ChemicalTreatment []string
	Prevention        []string
}

// Disease is one crop disease entry.
type Disease struct {
	Key            string
	NameLocal      string
	Affects        []string
	Symptoms       []string
	Identification string
	Treatment      []string
	Prevention     []string
}

// Scheme is one government support scheme.
type Scheme struct {
	Key         string
	Name        string
	NameLocal   string
	Benefit     string
	Eligibility string
	HowToApply  string
	Documents   []string
}

// WeatherAdvice holds condition-keyed field guidance used for weather
// advisories and alerts.
type WeatherAdvice struct {
	Condition string
	General   []string
}

// SymptomPattern maps visible symptom keywords to a pre-authored diagnosis.
// Patterns are evaluated in declaration order; the first trigger hit wins.
type SymptomPattern struct {
	Key      string
	Triggers []string
	Response string
}
