package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
)

// Generate godoc
// @Summary     Generate an itinerary
// @Description Asks the model for a day-wise plan and returns it split into days.
// @Tags        Itinerary
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Trip details"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Generation failed"
// @Failure     503  {object} response.Resp "Model overloaded"
// @Router      /api/v1/itineraries [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// Parse godoc
// @Summary     Segment itinerary text
// @Description Splits existing itinerary text into days without calling the model.
// @Tags        Itinerary
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Itinerary text"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/itineraries/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newParseResp(output))
}
