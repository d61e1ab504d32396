package http

import (
	"github.com/gin-gonic/gin"

	"hotel-assistant/internal/chat"
	"hotel-assistant/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Classifies the message and answers with a navigation action or a generated reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string     false "Chat session id"
// @Param       body         body   messageReq true  "Chat message"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Service Unavailable"
// @Router      /api/v1/chat/message [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res := h.uc.Process(ctx, req.toInput())
	if res.Kind == chat.KindError {
		h.l.Warnf(ctx, "uc.Process: code=%s err=%v", res.Failure.Code, res.Failure.Err)
		if mapped := h.mapError(res.Failure); mapped != nil {
			response.Error(c, mapped, nil)
			return
		}
	}

	response.OK(c, h.newMessageResp(res, req.SessionID))
}

// Classify godoc
// @Summary     Classify a message
// @Description Returns the detected intent and quick replies without generating an answer.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Message to classify"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if v := h.uc.ValidateMessage(req.Message); !v.Valid {
		response.Error(c, h.mapError(&chat.Failure{
			Code:    chat.CodeValidation,
			Message: v.Error,
			Err:     &chat.ValidationError{Message: v.Error},
		}), nil)
		return
	}

	in := h.classifier.Classify(req.Message, req.UserRole, req.Context)
	response.OK(c, classifyResp{
		Intent:       in,
		QuickReplies: h.classifier.QuickReplies(req.Message, req.UserRole, in),
	})
}

// AvailableRoutes godoc
// @Summary     List navigable pages
// @Description Returns every page the given roles may open, public pages included.
// @Tags        Chat
// @Produce     json
// @Param       roleIds query string false "Comma separated role ids (1 manager, 2 receptionist, 3 customer)"
// @Success     200 {object} routesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/routes [GET]
func (h *handler) AvailableRoutes(c *gin.Context) {
	ids, err := h.processRoutesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newRoutesResp(h.resolver.ListAvailableRoutes(ids)))
}
