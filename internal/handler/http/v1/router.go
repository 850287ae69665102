package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Маршруты для работы с отчетами
	reports := api.Group("/reports")
	{
		reports.POST("", auth, h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/stream", h.streamSnapshots)
		reports.GET("/stats", auth, h.getStats)
		reports.POST("/:id/vote", auth, h.voteReport)
	}

	// Маршруты представления
	api.GET("/snapshot", h.getSnapshot)
	api.PUT("/query", auth, h.setQuery)

	// Маршрут оценки риска
	api.GET("/risk", h.getRisk)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
