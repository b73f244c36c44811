package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingSessionID = errors.New("session id is required")

// processCreateReq binds the create session body. An empty body is allowed.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processItemReq binds the session and item URI params.
func (h *handler) processItemReq(c *gin.Context) (itemReq, error) {
	var req itemReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCommitReq binds the commit body + URI param.
func (h *handler) processCommitReq(c *gin.Context) (commitReq, error) {
	var req commitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errMissingSessionID
	}
	return req, nil
}
