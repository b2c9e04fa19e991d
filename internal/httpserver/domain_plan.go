package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"action-plan-assistant/internal/middleware"
	planHTTP "action-plan-assistant/internal/plan/delivery/http"
)

// setupPlanDomain registers the plan routes. The use case is built by the caller since its
// store and LLM providers are chosen from config.
func (srv HTTPServer) setupPlanDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := planHTTP.New(srv.l, srv.planUC, srv.location)

	// Routes: registers /api/v1/plans
	planHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Plan domain registered")
	return nil
}
