package http

import (
	"github.com/gin-gonic/gin"
)

// processSuggestTasksReq binds and validates the suggest tasks request body.
func (h *handler) processSuggestTasksReq(c *gin.Context) (suggestTasksReq, error) {
	var req suggestTasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processResolveVendorsReq binds and validates the resolve vendors request body.
func (h *handler) processResolveVendorsReq(c *gin.Context) (resolveVendorsReq, error) {
	var req resolveVendorsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
