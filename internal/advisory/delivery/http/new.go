package http

import (
	"github.com/gin-gonic/gin"

	"krishisaathi/internal/advisory"
	"krishisaathi/pkg/log"
)

// Handler is the public interface for the advisory HTTP delivery layer.
type Handler interface {
	Message(c *gin.Context)
	AnalyzeImage(c *gin.Context)
	History(c *gin.Context)
	Languages(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc advisory.UseCase
}

// New creates a new HTTP handler for the advisory domain.
func New(l log.Logger, uc advisory.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
