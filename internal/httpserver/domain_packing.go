package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	packingHTTP "travel-planner/internal/packing/delivery/http"
	packingUC "travel-planner/internal/packing/usecase"
)

// setupPackingDomain wires packing sessions and registers /api/v1/packing/sessions.
func (srv HTTPServer) setupPackingDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := packingUC.New(srv.l, srv.llm, srv.sessions, srv.ids)
	h := packingHTTP.New(srv.l, uc)
	packingHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Packing domain registered")
	return nil
}
