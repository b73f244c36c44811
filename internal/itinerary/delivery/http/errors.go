package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/itinerary"
	"travel-planner/pkg/response"
)

const (
	msgOverloaded       = "The AI service is overloaded. Please try again in a few minutes."
	msgGenerationFailed = "Error generating content: "
)

// mapError writes the HTTP response for a use-case error.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrInvalidTrip):
		response.Error(c, err, nil)
	case errors.Is(err, itinerary.ErrServiceOverloaded):
		response.ServiceUnavailable(c, msgOverloaded)
	case errors.Is(err, itinerary.ErrGenerationFailed),
		errors.Is(err, itinerary.ErrEmptyResponse):
		response.BadGateway(c, msgGenerationFailed+err.Error())
	default:
		response.InternalError(c, err)
	}
}
