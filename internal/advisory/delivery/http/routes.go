package http

import (
	"github.com/gin-gonic/gin"

	"krishisaathi/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The turn
// endpoints carry the per-client rate limit; reads are unthrottled.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	chat.Use(mw.Language())
	{
		chat.POST("/message", mw.RateLimit(), h.Message)
		chat.POST("/analyze-image", mw.RateLimit(), h.AnalyzeImage)
		chat.GET("/history", h.History)
		chat.GET("/languages", h.Languages)
	}
}
