package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
)

// Create godoc
// @Summary     Open a packing session
// @Description Builds a checklist from a shared markdown list, from raw text, or by asking the model for a list for the destination.
// @Tags        Packing
// @Accept      json
// @Produce     json
// @Param       body body createReq false "Destination and optional source text"
// @Success     201  {object} sessionResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Generation failed"
// @Failure     503  {object} response.Resp "Model overloaded"
// @Router      /api/v1/packing/sessions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		h.mapError(c, err)
		return
	}

	response.Created(c, h.newSessionResp(output))
}

// Detail godoc
// @Summary     Get a packing session
// @Tags        Packing
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/packing/sessions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Close godoc
// @Summary     Close a packing session
// @Tags        Packing
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/packing/sessions/{id} [DELETE]
func (h *handler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Close(ctx, c.Param("id")); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Export godoc
// @Summary     Export a packing session as markdown
// @Tags        Packing
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} exportResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/packing/sessions/{id}/markdown [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Export(ctx, c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newExportResp(output))
}

// AddItem godoc
// @Summary     Add an item
// @Description Appends a "New item" placeholder and makes it the edit target.
// @Tags        Packing
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/packing/sessions/{id}/items [POST]
func (h *handler) AddItem(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.AddItem(ctx, c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// DeleteItem godoc
// @Summary     Delete an item
// @Tags        Packing
// @Produce     json
// @Param       id      path string true "Session ID"
// @Param       item_id path string true "Item ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/packing/sessions/{id}/items/{item_id} [DELETE]
func (h *handler) DeleteItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DeleteItem(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Toggle godoc
// @Summary     Toggle an item's packed state
// @Tags        Packing
// @Produce     json
// @Param       id      path string true "Session ID"
// @Param       item_id path string true "Item ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/packing/sessions/{id}/items/{item_id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Toggle(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// StartEdit godoc
// @Summary     Start editing an item
// @Description Makes the item the session's single edit target. An unsaved edit on another item is dropped.
// @Tags        Packing
// @Produce     json
// @Param       id      path string true "Session ID"
// @Param       item_id path string true "Item ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/packing/sessions/{id}/items/{item_id}/edit [POST]
func (h *handler) StartEdit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.StartEdit(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// CommitEdit godoc
// @Summary     Commit the current edit
// @Description Writes the text into the edit target and clears it. Does nothing when no item is being edited.
// @Tags        Packing
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Session ID"
// @Param       body body commitReq true "New text"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/packing/sessions/{id}/commit [POST]
func (h *handler) CommitEdit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CommitEdit(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}
