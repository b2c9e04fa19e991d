package http

import (
	"action-plan-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route requires Auth; generation is also rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	plans := rg.Group("/plans", mw.Auth())
	{
		plans.POST("", mw.RateLimit(), h.Generate)
		plans.GET("", h.List)
		plans.GET("/:id", h.Detail)
		plans.DELETE("/:id", h.Delete)
		plans.GET("/:id/progress", h.Progress)
		plans.GET("/:id/checklist", h.ExportChecklist)
		plans.PUT("/:id/checklist", h.SyncChecklist)
		plans.PATCH("/:id/steps/:position", h.SetStepCompletion)
		plans.PUT("/:id/steps/:position/note", h.UpdateStepNote)
	}
}
