package http

import (
	"github.com/gin-gonic/gin"

	"krishisaathi/internal/middleware"
	"krishisaathi/internal/model"
	"krishisaathi/pkg/response"
)

// Message godoc
// @Summary     Run one advisory dialogue turn
// @Description Accepts a farmer message (optionally with a crop photo) and returns the assistant reply in the requested language.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Dialogue turn"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/message [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Reply(ctx, h.scope(c, req.FarmerID), req.toInput(middleware.RequestLanguage(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Reply: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// AnalyzeImage godoc
// @Summary     Analyze a crop photo
// @Description Same contract as the message turn, but the image is required; the reply diagnoses the photographed crop.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Dialogue turn with image"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/analyze-image [POST]
func (h *handler) AnalyzeImage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeImageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Reply(ctx, h.scope(c, req.FarmerID), req.toInput(middleware.RequestLanguage(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Reply: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// History godoc
// @Summary     Get conversation history
// @Description Returns the stored turns for a conversation id, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       conversation_id query string true "Conversation ID"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, h.scope(c, ""), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(req.ConversationID, output))
}

// Languages godoc
// @Summary     List supported languages
// @Description Returns the supported interface language codes and the default.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} languagesResp
// @Router      /api/v1/chat/languages [GET]
func (h *handler) Languages(c *gin.Context) {
	response.OK(c, h.newLanguagesResp())
}

func (h *handler) scope(c *gin.Context, farmerID string) model.Scope {
	return model.Scope{
		FarmerID: farmerID,
		ClientIP: c.ClientIP(),
	}
}
