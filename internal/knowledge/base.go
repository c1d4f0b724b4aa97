package knowledge

import "strings"

// Base is the static agricultural reference data. Loaded once at process
// start and never mutated, so it is safe for concurrent reads without
// locking. Partition slices preserve declaration order: entity lookups
// return the first match in that order, deterministically.
type Base struct {
	Crops    []Crop
	Pests    []Pest
	Diseases []Disease
	Schemes  []Scheme
	Weather  []WeatherAdvice
	Symptoms []SymptomPattern
}

// Load returns the built-in knowledge base.
func Load() *Base {
	return &Base{
		Crops:    cropTable,
		Pests:    pestTable,
		Diseases: diseaseTable,
		Schemes:  schemeTable,
		Weather:  weatherTable,
		Symptoms: symptomTable,
	}
}

// Crop returns the crop entry for key.
func (b *Base) Crop(key string) (Crop, bool) {
	for _, c := range b.Crops {
		if c.Key == key {
			return c, true
		}
	}
	return Crop{}, false
}

// Pest returns the pest entry for key.
func (b *Base) Pest(key string) (Pest, bool) {
	for _, p := range b.Pests {
		if p.Key == key {
			return p, true
		}
	}
	return Pest{}, false
}

// Disease returns the disease entry for key.
func (b *Base) Disease(key string) (Disease, bool) {
	for _, d := range b.Diseases {
		if d.Key == key {
			return d, true
		}
	}
	return Disease{}, false
}

// Scheme returns the scheme entry for key.
func (b *Base) Scheme(key string) (Scheme, bool) {
	for _, s := range b.Schemes {
		if s.Key == key {
			return s, true
		}
	}
	return Scheme{}, false
}

// WeatherFor returns advisory text for a weather condition key
// (rain_expected, hot_weather, cold_wave).
func (b *Base) WeatherFor(condition string) (WeatherAdvice, bool) {
	for _, w := range b.Weather {
		if w.Condition == condition {
			return w, true
		}
	}
	return WeatherAdvice{}, false
}

// FindCropKey scans message for a crop reference (key or native name).
func (b *Base) FindCropKey(message string) string {
	msg := strings.ToLower(message)
	for _, c := range b.Crops {
		if containsKey(msg, c.Key) || containsLocal(message, c.NameLocal) {
			return c.Key
		}
	}
	return ""
}

// FindPestKey scans message for a pest reference.
func (b *Base) FindPestKey(message string) string {
	msg := strings.ToLower(message)
	for _, p := range b.Pests {
		if containsKey(msg, p.Key) || containsLocal(message, p.NameLocal) {
			return p.Key
		}
	}
	return ""
}

// FindDiseaseKey scans message for a disease reference.
func (b *Base) FindDiseaseKey(message string) string {
	msg := strings.ToLower(message)
	for _, d := range b.Diseases {
		if containsKey(msg, d.Key) || containsLocal(message, d.NameLocal) {
			return d.Key
		}
	}
	return ""
}

// FindSchemeKey scans message for a scheme reference. Schemes match on the
// key, the official English name, and the native name.
func (b *Base) FindSchemeKey(message string) string {
	msg := strings.ToLower(message)
	for _, s := range b.Schemes {
		if containsKey(msg, s.Key) ||
			strings.Contains(msg, strings.ToLower(s.Name)) ||
			containsLocal(message, s.NameLocal) {
			return s.Key
		}
	}
	return ""
}

// MatchSymptom returns the first symptom pattern triggered by the message
// text, falling back to the healthy-crop pattern.
func (b *Base) MatchSymptom(message string) SymptomPattern {
	msg := strings.ToLower(message)
	var fallback SymptomPattern
	for _, sp := range b.Symptoms {
		if sp.Key == symptomHealthy {
			fallback = sp
			continue
		}
		for _, trigger := range sp.Triggers {
			if strings.Contains(msg, trigger) {
				return sp
			}
		}
	}
	return fallback
}

// containsKey matches a table key against lowercased message text,
// with key underscores treated as spaces.
func containsKey(msgLower, key string) bool {
	return strings.Contains(msgLower, strings.ReplaceAll(key, "_", " "))
}

// containsLocal matches a native-script synonym. Indic scripts have no
// case distinction, so the raw message is searched as-is.
func containsLocal(message, local string) bool {
	return local != "" && strings.Contains(message, local)
}
