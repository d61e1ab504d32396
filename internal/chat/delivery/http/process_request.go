package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-assistant/internal/model"
)

// processMessageReq binds the chat message body. Message content is validated by the use case.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRoutesReq parses ?roleIds=1,2 into role ids. An absent list means an anonymous caller.
func (h *handler) processRoutesReq(c *gin.Context) ([]model.RoleID, error) {
	var req routesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, err
	}

	var ids []model.RoleID
	for _, part := range strings.Split(req.RoleIDs, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, errInvalidRoleIDs
		}
		ids = append(ids, model.RoleID(n))
	}
	return ids, nil
}
