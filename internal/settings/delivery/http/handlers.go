package http

import (
	"github.com/gin-gonic/gin"

	"timelog-assistant/pkg/response"
)

// Get godoc
// @Summary     Get assistant settings
// @Description Returns the current assistant configuration. The API key is masked.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} settingsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/settings [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Get(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSettingsResp(output))
}

// Update godoc
// @Summary     Update assistant settings
// @Description Updates the assistant configuration. Masked API key values are ignored.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Settings"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/settings [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Update(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
