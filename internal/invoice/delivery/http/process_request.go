package http

import (
	"github.com/gin-gonic/gin"
)

// processPreviewReq binds and validates the preview request body.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateReq binds and validates the create invoice request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processClientContactsReq(c *gin.Context) (clientContactsReq, error) {
	var req clientContactsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
