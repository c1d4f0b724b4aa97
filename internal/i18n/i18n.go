// Package i18n exposes the translation lookup used for fixed system
// strings. Full locale catalogs are served by an external loader; the
// static implementation here carries only the strings the dialogue
// engine itself needs.
package i18n

import "krishisaathi/internal/model"

// Translator resolves a translated string by (language, module, key).
// Missing translations fall back to English, never to an error.
type Translator interface {
	Get(lang model.LanguageCode, module, key string) string
}

type staticTranslator struct {
	table map[model.LanguageCode]map[string]string
}

// NewStatic returns the built-in translator.
func NewStatic() Translator {
	return &staticTranslator{table: systemStrings}
}

func (t *staticTranslator) Get(lang model.LanguageCode, module, key string) string {
	full := module + "." + key
	if entries, ok := t.table[lang]; ok {
		if s, ok := entries[full]; ok {
			return s
		}
	}
	if entries, ok := t.table[model.LanguageEnglish]; ok {
		return entries[full]
	}
	return ""
}
