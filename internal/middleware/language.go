package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"krishisaathi/internal/model"
)

// languageKey is the gin context key holding the resolved request language.
const languageKey = "request_language"

// Language resolves the caller's language from the Accept-Language header
// and stores it on the request context. An explicit language field in a
// request body still wins; this only provides the header-derived default.
func (m Middleware) Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(languageKey, resolveAcceptLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// RequestLanguage returns the language resolved by the Language middleware,
// or the model default when the middleware did not run.
func RequestLanguage(c *gin.Context) model.LanguageCode {
	if v, ok := c.Get(languageKey); ok {
		if code, ok := v.(model.LanguageCode); ok {
			return code
		}
	}
	return model.DefaultLanguage
}

// resolveAcceptLanguage picks the first supported code from an
// Accept-Language header value, ignoring q-weights and region subtags.
func resolveAcceptLanguage(header string) model.LanguageCode {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(part)
		if i := strings.Index(tag, ";"); i >= 0 {
			tag = tag[:i]
		}
		if i := strings.Index(tag, "-"); i >= 0 {
			tag = tag[:i]
		}
		tag = strings.ToLower(strings.TrimSpace(tag))
		if code := model.LanguageCode(tag); code.IsSupported() {
			return code
		}
	}
	return model.DefaultLanguage
}
