package model

import "strings"

// Farmer is the profile record consumed by the advisory engine. Durable
// storage of farmers is owned by the profile repository, not by the engine.
type Farmer struct {
	ID       string
	Name     string
	Mobile   string
	Language LanguageCode
	State    string
	District string
	Village  string
}

// Location renders "village, district, state" skipping empty parts.
// Empty when no location field is set.
func (f Farmer) Location() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{f.Village, f.District, f.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// DisplayName returns the trimmed farmer name, or empty when unset.
func (f Farmer) DisplayName() string {
	return strings.TrimSpace(f.Name)
}
