package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errImageRequired = errors.New("image_base64 is required")

// processChatReq binds and validates the chat turn request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAnalyzeImageReq is the chat binding plus the image requirement.
func (h *handler) processAnalyzeImageReq(c *gin.Context) (chatReq, error) {
	req, err := h.processChatReq(c)
	if err != nil {
		return req, err
	}
	if req.ImageBase64 == "" {
		return req, errImageRequired
	}
	return req, nil
}

// processHistoryReq reads the conversation id from the query string.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	req := historyReq{ConversationID: c.Query("conversation_id")}
	return req, req.validate()
}
