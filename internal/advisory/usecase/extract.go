package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"krishisaathi/internal/farmer"
)

// Slot extraction scans free text for location assertions. Each field has
// an ordered pattern list; the first pattern whose capture survives the
// trim/title-case, length, and stop-word filters wins. Per-language cues
// live side by side in the pattern tables so adding a language means
// adding patterns, not code.
var slotPatterns = []struct {
	field    string
	patterns []*regexp.Regexp
}{
	{farmer.FieldState, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:state is|from|my state|i am from|मेरा राज्य|राज्य है)\s*[:\s]*([a-zA-Z\x{0900}-\x{097F}]+)`),
		regexp.MustCompile(`(?i)([a-zA-Z]+)\s+state`),
	}},
	{farmer.FieldDistrict, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:district is|district|my district|जिला|ज़िला)\s*[:\s]*([a-zA-Z\x{0900}-\x{097F}]+)`),
	}},
	{farmer.FieldVillage, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:village is|my village|गांव|गाँव)\s*[:\s]*([a-zA-Z\x{0900}-\x{097F}]+)`),
	}},
}

// slotStopWords are cue-phrase fragments the capture group can swallow;
// they are never valid place names.
var slotStopWords = map[string]bool{
	"is":  true,
	"my":  true,
	"the": true,
	"in":  true,
}

// extractProfile returns the location fields asserted in the message.
// Best-effort: a non-match omits the field, malformed input never errors.
func extractProfile(message string) farmer.ProfileUpdate {
	update := farmer.ProfileUpdate{}
	for _, slot := range slotPatterns {
		for _, pattern := range slot.patterns {
			m := pattern.FindStringSubmatch(message)
			if m == nil {
				continue
			}
			value := titleKey(strings.TrimSpace(m[1]))
			if utf8.RuneCountInString(value) <= 2 || slotStopWords[strings.ToLower(value)] {
				continue
			}
			update[slot.field] = value
			break
		}
	}
	return update
}
