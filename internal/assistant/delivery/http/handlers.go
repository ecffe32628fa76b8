package http

import (
	"github.com/gin-gonic/gin"

	"timelog-assistant/internal/middleware"
	"timelog-assistant/pkg/response"
)

// Chat godoc
// @Summary     Chat with the assistant
// @Description Sends a free-form message to the assistant and returns its reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request / not configured"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Upstream provider failure"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Parse godoc
// @Summary     Parse a free-form time log
// @Description Parses free text into structured entries and returns them with a priced preview.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Time log text"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request / not configured / malformed model output"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Upstream provider failure"
// @Router      /api/v1/assistant/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	entries, err := h.uc.ParseTimelog(ctx, sc, req.Timelog)
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseTimelog: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	rows, err := h.uc.Preview(ctx, sc, entries)
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(entries, rows))
}

// Preview godoc
// @Summary     Preview entries
// @Description Resolves and prices entries for display without persisting anything.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body entriesReq true "Entries"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/assistant/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processEntriesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rows, err := h.uc.Preview(ctx, sc, req.toEntries())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreviewResp(rows))
}

// Submit godoc
// @Summary     Submit entries
// @Description Persists entries as timesheet records in one all-or-nothing batch.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body entriesReq true "Entries"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Persistence failure"
// @Router      /api/v1/assistant/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processEntriesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Submit(ctx, sc, req.toEntries())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubmitResp(output))
}
