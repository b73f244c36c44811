package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/packing"
	"travel-planner/pkg/response"
)

const (
	msgOverloaded    = "The AI service is overloaded. Please try again in a few minutes."
	msgLoadFailed    = "Failed to load packing list. Please try again."
	msgSessionMissed = "Packing session not found or expired"
)

// mapError writes the HTTP response for a use-case error.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, packing.ErrSessionNotFound):
		response.NotFound(c, errors.New(msgSessionMissed))
	case errors.Is(err, packing.ErrServiceOverloaded):
		response.ServiceUnavailable(c, msgOverloaded)
	case errors.Is(err, packing.ErrGenerationFailed),
		errors.Is(err, packing.ErrEmptyResponse):
		response.BadGateway(c, msgLoadFailed)
	default:
		response.InternalError(c, err)
	}
}
