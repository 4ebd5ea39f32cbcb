package http

import (
	"github.com/gin-gonic/gin"

	"search-agent-system/pkg/response"
)

// Query handles one free-text query and returns the assistant's answer.
func (h handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Query: invalid payload: %v", err)
		response.Error(c, err)
		return
	}

	answer := h.uc.Respond(ctx, req.Query)

	response.OK(c, queryResp{Answer: answer})
}
