package middleware

import (
	"testing"

	"krishisaathi/internal/model"
)

func TestResolveAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   model.LanguageCode
	}{
		{"hi", model.LanguageHindi},
		{"ta-IN,ta;q=0.9,en;q=0.5", model.LanguageTamil},
		{"en-US,en;q=0.8", model.LanguageEnglish},
		{"fr-FR,fr;q=0.9", model.DefaultLanguage},
		{"", model.DefaultLanguage},
		{"  PA ", model.LanguagePunjabi},
		{"de;q=0.9, bn;q=0.8", model.LanguageBengali},
	}
	for _, tt := range tests {
		if got := resolveAcceptLanguage(tt.header); got != tt.want {
			t.Errorf("resolveAcceptLanguage(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
