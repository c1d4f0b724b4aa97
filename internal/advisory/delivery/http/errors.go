package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"krishisaathi/internal/advisory"
	"krishisaathi/pkg/response"
)

// mapError translates use-case errors into HTTP responses. The use case
// already absorbs generative failures into the rule fallback, so only
// validation errors and genuine internal faults reach this point.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, advisory.ErrEmptyHistoryID):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
