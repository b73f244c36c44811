package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itineraryHTTP "travel-planner/internal/itinerary/delivery/http"
	itineraryUC "travel-planner/internal/itinerary/usecase"
)

// setupItineraryDomain wires the itinerary use case and registers /api/v1/itineraries.
func (srv HTTPServer) setupItineraryDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := itineraryUC.New(srv.l, srv.llm)
	h := itineraryHTTP.New(srv.l, uc)
	itineraryHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Itinerary domain registered")
	return nil
}
